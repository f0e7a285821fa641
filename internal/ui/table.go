// Package ui renders salary statistics for the terminal.
package ui

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/devsalary/internal/stats"
)

// Column headers of the statistics table.
const (
	HeaderLanguage  = "Язык программирования"
	HeaderFound     = "Вакансий найдено"
	HeaderProcessed = "Вакансий обработано"
	HeaderAverage   = "Средняя зарплата"
)

// RenderTable formats one source's statistics as a titled table, one row
// per language in table order.
func RenderTable(title string, table *stats.Table) (string, error) {
	data := pterm.TableData{
		{HeaderLanguage, HeaderFound, HeaderProcessed, HeaderAverage},
	}
	for _, e := range table.Entries() {
		data = append(data, []string{
			e.Language,
			FormatNumber(e.Statistic.VacanciesFound),
			FormatNumber(e.Statistic.VacanciesProcessed),
			ColorizeSalary(e.Statistic.AverageSalary),
		})
	}

	body, err := pterm.DefaultTable.
		WithHasHeader().
		WithRightAlignment().
		WithData(data).
		Srender()
	if err != nil {
		return "", fmt.Errorf("render %s table: %w", title, err)
	}

	return pterm.DefaultBox.
		WithTitle(title).
		WithTitleTopLeft().
		Sprint(body), nil
}
