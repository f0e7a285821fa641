package config

import "time"

// Default values.
const (
	DefaultConfigFile = "devsalary.yaml"
	DefaultEnvFile    = ".env"

	DefaultHeadHunterURL = "https://api.hh.ru/vacancies"
	DefaultSuperJobURL   = "https://api.superjob.ru/2.0/vacancies/"
	DefaultSearchPhrase  = "Программист"
	DefaultTown          = "Москва"
	DefaultArea          = 1 // Moscow
	DefaultPeriodDays    = 30
	DefaultCurrency      = "RUR"
	DefaultPageSize      = 100
	DefaultTimeout       = 30 * time.Second
)

// DefaultLanguages is the language list queried when none is configured.
var DefaultLanguages = []string{
	"Python",
	"C++",
	"Java",
	"C",
	"C#",
	"JavaScript",
	"Go",
	"SQL",
	"Visual Basic",
	"Fortran",
}

func defaults() map[string]any {
	langs := make([]string, len(DefaultLanguages))
	copy(langs, DefaultLanguages)

	return map[string]any{
		"languages":                langs,
		"workers":                  1,
		"progress":                 false,
		"color":                    true,
		"log.level":                "info",
		"http.timeout":             DefaultTimeout,
		"http.proxy":               "",
		"headhunter.title":         "HeadHunter Moscow",
		"headhunter.base_url":      DefaultHeadHunterURL,
		"headhunter.search_phrase": DefaultSearchPhrase,
		"headhunter.area":          DefaultArea,
		"headhunter.period_days":   DefaultPeriodDays,
		"headhunter.currency":      DefaultCurrency,
		"headhunter.per_page":      DefaultPageSize,
		"superjob.title":           "SuperJob Moscow",
		"superjob.base_url":        DefaultSuperJobURL,
		"superjob.api_key":         "",
		"superjob.search_phrase":   DefaultSearchPhrase,
		"superjob.town":            DefaultTown,
		"superjob.count":           DefaultPageSize,
	}
}
