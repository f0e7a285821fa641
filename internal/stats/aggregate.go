// Package stats folds predicted salaries into per-language statistics.
package stats

import (
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/salary"
)

// Aggregate computes the statistic for one language's postings.
// Postings without a salary estimate count as found but not processed.
func Aggregate(postings []models.Posting) models.LanguageStatistic {
	var sum, count int
	for _, p := range postings {
		estimate, ok := salary.PredictPosting(p)
		if !ok {
			continue
		}
		sum += estimate
		count++
	}

	return models.LanguageStatistic{
		VacanciesFound:     len(postings),
		VacanciesProcessed: count,
		AverageSalary:      average(sum, count),
	}
}

func average(sum, count int) int {
	if count == 0 {
		return 0
	}
	return sum / count
}
