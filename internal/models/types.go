package models

// Posting represents a single vacancy returned by a job source
type Posting struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Employer string `json:"employer"`
	URL      string `json:"url"`
	Currency string `json:"currency"`
	Salary   Bounds `json:"salary"`
	Source   string `json:"source"`
}

// Bounds holds the salary fork of a posting. A nil bound was not
// published by the source.
type Bounds struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

// NewBounds is a convenience constructor, mostly for tests.
func NewBounds(from, to *int) Bounds {
	return Bounds{From: from, To: to}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// LanguageStatistic is the aggregated salary data for one language query
type LanguageStatistic struct {
	VacanciesFound     int `json:"vacancies_found"`
	VacanciesProcessed int `json:"vacancies_processed"`
	AverageSalary      int `json:"average_salary"`
}
