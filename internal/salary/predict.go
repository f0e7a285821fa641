// Package salary turns a posting's published salary fork into a single
// predicted figure.
package salary

import "github.com/fr4nk3nst1ner/devsalary/internal/models"

// Predict estimates the salary for a posting's bounds.
//
// Both bounds present gives their midpoint, a lone lower bound is
// raised by 20% and a lone upper bound is cut by 20%. Results are
// truncated toward zero. The second return value is false when neither
// bound is present; such postings carry no estimate.
func Predict(b models.Bounds) (int, bool) {
	switch {
	case b.From != nil && b.To != nil:
		return (*b.From + *b.To) / 2, true
	case b.From != nil:
		return *b.From * 6 / 5, true
	case b.To != nil:
		return *b.To * 4 / 5, true
	default:
		return 0, false
	}
}

// PredictPosting is Predict applied to a posting's salary.
func PredictPosting(p models.Posting) (int, bool) {
	return Predict(p.Salary)
}
