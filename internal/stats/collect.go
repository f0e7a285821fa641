package stats

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

// Fetcher retrieves every posting a source holds for a language query.
type Fetcher interface {
	FetchAll(ctx context.Context, language string) ([]models.Posting, error)
}

// CollectOptions tunes Collect.
type CollectOptions struct {
	// Workers is the number of languages fetched at once. Values below 2
	// run the languages one after another.
	Workers int
	// OnLanguage, if set, is called after each language is aggregated.
	// Calls are serialized but arrive in completion order when Workers > 1.
	OnLanguage func(language string, stat models.LanguageStatistic)
}

// Collect fetches and aggregates every language and returns the results
// in the order of languages. Repeated names are collected once, at their
// first position. The first fetch error aborts the collection.
func Collect(ctx context.Context, f Fetcher, languages []string, opts CollectOptions) (*Table, error) {
	langs := uniqueLanguages(languages)
	results := make([]models.LanguageStatistic, len(langs))

	var mu sync.Mutex
	notify := func(language string, stat models.LanguageStatistic) {
		if opts.OnLanguage == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		opts.OnLanguage(language, stat)
	}

	if opts.Workers < 2 {
		for i, lang := range langs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			postings, err := f.FetchAll(ctx, lang)
			if err != nil {
				return nil, err
			}
			results[i] = Aggregate(postings)
			notify(lang, results[i])
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for i, lang := range langs {
			i, lang := i, lang
			g.Go(func() error {
				postings, err := f.FetchAll(gctx, lang)
				if err != nil {
					return err
				}
				// each goroutine owns results[i]
				results[i] = Aggregate(postings)
				notify(lang, results[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	table := NewTable(len(langs))
	for i, lang := range langs {
		table.Set(lang, results[i])
	}
	return table, nil
}

func uniqueLanguages(languages []string) []string {
	seen := make(map[string]struct{}, len(languages))
	out := make([]string, 0, len(languages))
	for _, lang := range languages {
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		out = append(out, lang)
	}
	return out
}
