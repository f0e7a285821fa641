package ui

import (
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// Salary bands used for colouring averages, in roubles per month.
const (
	highSalary   = 300000
	goodSalary   = 200000
	mediumSalary = 100000
)

// FormatNumber groups thousands with spaces: 150000 -> "150 000".
func FormatNumber(n int) string {
	return humanize.FormatInteger("# ###.", n)
}

// ColorizeSalary applies color formatting to an average salary.
// Colouring is a no-op when pterm colours are disabled.
func ColorizeSalary(salary int) string {
	formatted := FormatNumber(salary)

	switch {
	case salary == 0:
		return pterm.Gray(formatted) // nothing processed
	case salary >= highSalary:
		return pterm.Green(formatted)
	case salary >= goodSalary:
		return pterm.LightGreen(formatted)
	case salary >= mediumSalary:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
