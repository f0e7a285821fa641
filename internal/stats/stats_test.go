package stats

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

func posting(from, to *int) models.Posting {
	return models.Posting{Salary: models.NewBounds(from, to)}
}

func TestAggregate(t *testing.T) {
	p := models.IntPtr

	tests := []struct {
		name     string
		postings []models.Posting
		want     models.LanguageStatistic
	}{
		{
			name:     "empty",
			postings: nil,
			want:     models.LanguageStatistic{},
		},
		{
			name: "skips postings without estimate",
			postings: []models.Posting{
				posting(p(100), p(100)),
				posting(p(200), p(200)),
				posting(nil, nil),
			},
			want: models.LanguageStatistic{VacanciesFound: 3, VacanciesProcessed: 2, AverageSalary: 150},
		},
		{
			name: "average truncates",
			postings: []models.Posting{
				posting(p(150), p(150)),
				posting(p(151), p(151)),
			},
			want: models.LanguageStatistic{VacanciesFound: 2, VacanciesProcessed: 2, AverageSalary: 150},
		},
		{
			name: "only unusable postings",
			postings: []models.Posting{
				posting(nil, nil),
				posting(nil, nil),
			},
			want: models.LanguageStatistic{VacanciesFound: 2, VacanciesProcessed: 0, AverageSalary: 0},
		},
		{
			name: "mixed heuristics",
			postings: []models.Posting{
				posting(p(100000), p(200000)), // 150000
				posting(p(100000), nil),       // 120000
				posting(nil, p(200000)),       // 160000
			},
			want: models.LanguageStatistic{VacanciesFound: 3, VacanciesProcessed: 3, AverageSalary: 143333},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.postings))
		})
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	p := models.IntPtr
	postings := []models.Posting{
		posting(p(90000), p(110000)),
		posting(nil, p(50000)),
		posting(nil, nil),
	}

	first := Aggregate(postings)
	second := Aggregate(postings)
	assert.Equal(t, first, second)
}

func TestTable_OrderAndReplace(t *testing.T) {
	var table Table
	table.Set("Go", models.LanguageStatistic{VacanciesFound: 1})
	table.Set("Python", models.LanguageStatistic{VacanciesFound: 2})
	table.Set("Go", models.LanguageStatistic{VacanciesFound: 3})

	assert.Equal(t, []string{"Go", "Python"}, table.Languages())
	assert.Equal(t, 2, table.Len())

	got, ok := table.Get("Go")
	require.True(t, ok)
	assert.Equal(t, 3, got.VacanciesFound)

	_, ok = table.Get("Rust")
	assert.False(t, ok)
}

func TestTable_Nil(t *testing.T) {
	var table *Table
	assert.Equal(t, 0, table.Len())
	assert.Nil(t, table.Languages())
	assert.Nil(t, table.Entries())
	_, ok := table.Get("Go")
	assert.False(t, ok)
}

// fakeFetcher returns canned postings per language.
type fakeFetcher struct {
	mu       sync.Mutex
	postings map[string][]models.Posting
	errs     map[string]error
	calls    []string
}

func (f *fakeFetcher) FetchAll(_ context.Context, language string) ([]models.Posting, error) {
	f.mu.Lock()
	f.calls = append(f.calls, language)
	f.mu.Unlock()
	if err := f.errs[language]; err != nil {
		return nil, err
	}
	return f.postings[language], nil
}

func newFakeFetcher(languages []string) *fakeFetcher {
	f := &fakeFetcher{postings: make(map[string][]models.Posting)}
	for i, lang := range languages {
		salary := (i + 1) * 1000
		f.postings[lang] = []models.Posting{posting(models.IntPtr(salary), models.IntPtr(salary))}
	}
	return f
}

func TestCollect_PreservesOrder(t *testing.T) {
	base := []string{"Python", "C++", "Java", "Go"}
	permutations := [][]string{
		{"Python", "C++", "Java", "Go"},
		{"Go", "Java", "C++", "Python"},
		{"Java", "Python", "Go", "C++"},
	}

	for _, workers := range []int{1, 4} {
		for _, langs := range permutations {
			t.Run(fmt.Sprintf("workers=%d/%v", workers, langs), func(t *testing.T) {
				f := newFakeFetcher(base)
				table, err := Collect(context.Background(), f, langs, CollectOptions{Workers: workers})
				require.NoError(t, err)
				assert.Equal(t, langs, table.Languages())

				for i, lang := range base {
					stat, ok := table.Get(lang)
					require.True(t, ok)
					assert.Equal(t, (i+1)*1000, stat.AverageSalary)
				}
			})
		}
	}
}

func TestCollect_SequentialCallOrder(t *testing.T) {
	langs := []string{"C", "Fortran", "SQL"}
	f := newFakeFetcher(langs)

	var notified []string
	_, err := Collect(context.Background(), f, langs, CollectOptions{
		OnLanguage: func(language string, _ models.LanguageStatistic) {
			notified = append(notified, language)
		},
	})
	require.NoError(t, err)
	assert.Equal(t, langs, f.calls)
	assert.Equal(t, langs, notified)
}

func TestCollect_DuplicateLanguages(t *testing.T) {
	f := newFakeFetcher([]string{"Go", "C"})
	table, err := Collect(context.Background(), f, []string{"Go", "C", "Go"}, CollectOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "C"}, table.Languages())
	assert.Equal(t, []string{"Go", "C"}, f.calls)
}

func TestCollect_EmptyResults(t *testing.T) {
	f := &fakeFetcher{postings: map[string][]models.Posting{}}
	table, err := Collect(context.Background(), f, []string{"Visual Basic"}, CollectOptions{})
	require.NoError(t, err)

	stat, ok := table.Get("Visual Basic")
	require.True(t, ok)
	assert.Equal(t, models.LanguageStatistic{}, stat)
}

func TestCollect_FetchErrorAborts(t *testing.T) {
	boom := errors.New("boom")

	for _, workers := range []int{1, 3} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			f := newFakeFetcher([]string{"Go", "C", "SQL"})
			f.errs = map[string]error{"C": boom}

			table, err := Collect(context.Background(), f, []string{"Go", "C", "SQL"}, CollectOptions{Workers: workers})
			require.ErrorIs(t, err, boom)
			assert.Nil(t, table)
		})
	}
}

func TestCollect_SequentialStopsAfterError(t *testing.T) {
	f := newFakeFetcher([]string{"Go", "C", "SQL"})
	f.errs = map[string]error{"C": errors.New("down")}

	_, err := Collect(context.Background(), f, []string{"Go", "C", "SQL"}, CollectOptions{})
	require.Error(t, err)
	assert.Equal(t, []string{"Go", "C"}, f.calls)
}

func TestCollect_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newFakeFetcher([]string{"Go"})
	_, err := Collect(ctx, f, []string{"Go"}, CollectOptions{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.calls)
}
