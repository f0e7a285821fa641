// Package scraper holds the job-source adapters. Each source pages
// through its search API and returns postings with normalized salary
// bounds.
package scraper

import (
	"context"
	"strings"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

const maxPageSize = 100

// Source is a job API that can be queried per language.
type Source interface {
	Name() string
	FetchAll(ctx context.Context, language string) ([]models.Posting, error)
}

var (
	_ Source = (*HeadHunter)(nil)
	_ Source = (*SuperJob)(nil)
)

// searchText joins the non-empty parts with single spaces.
func searchText(parts ...string) string {
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			words = append(words, p)
		}
	}
	return strings.Join(words, " ")
}

func clampPageSize(n int) int {
	if n <= 0 || n > maxPageSize {
		return maxPageSize
	}
	return n
}
