package stats

import "github.com/fr4nk3nst1ner/devsalary/internal/models"

// Entry is one row of a Table.
type Entry struct {
	Language  string
	Statistic models.LanguageStatistic
}

// Table maps language names to statistics and iterates in insertion order.
// The zero value is ready to use.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable returns an empty table sized for n languages.
func NewTable(n int) *Table {
	return &Table{
		entries: make([]Entry, 0, n),
		index:   make(map[string]int, n),
	}
}

// Set stores the statistic for language. Re-setting an existing language
// replaces its value without moving it.
func (t *Table) Set(language string, stat models.LanguageStatistic) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[language]; ok {
		t.entries[i].Statistic = stat
		return
	}
	t.index[language] = len(t.entries)
	t.entries = append(t.entries, Entry{Language: language, Statistic: stat})
}

// Get returns the statistic for language.
func (t *Table) Get(language string) (models.LanguageStatistic, bool) {
	if t == nil {
		return models.LanguageStatistic{}, false
	}
	i, ok := t.index[language]
	if !ok {
		return models.LanguageStatistic{}, false
	}
	return t.entries[i].Statistic, true
}

// Len returns the number of languages in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Languages returns the language names in table order.
func (t *Table) Languages() []string {
	if t == nil {
		return nil
	}
	langs := make([]string, len(t.entries))
	for i, e := range t.entries {
		langs[i] = e.Language
	}
	return langs
}

// Entries returns a copy of the rows in table order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
