// Package render prints tabular command output and owns the terminal width
// policy used for summary truncation.
package render

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/svanharmelen/jira/pkg/types"
)

// Table collects a header row and data rows for printing. Cells may contain
// newlines; rows may carry fewer cells than there are headers.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable returns a table with the given header row.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends one data row.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// Render returns the formatted table.
func (t *Table) Render() string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(t.headers...).
		Rows(t.rows...).
		Render()
}

// Print writes the table to stdout, framed by blank lines. An empty table
// prints the fallback message instead.
func (t *Table) Print(emptyMsg string) {
	if t.Empty() {
		fmt.Println(emptyMsg)
		return
	}
	fmt.Println()
	fmt.Println(t.Render())
	fmt.Println()
}

// Width returns the width used for summary truncation: 0 when stdout
// is not a terminal (no truncation), 80 for terminals narrower than 188
// columns, and columns-108 otherwise.
func Width() float64 {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	cols, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	if cols < 188 {
		return 80
	}
	return float64(cols - 108)
}

// FormatDate renders a sprint date for display, or "n/a" when unset.
func FormatDate(t *time.Time) string {
	if t == nil {
		return types.NotAvailable
	}
	return t.Format("2006-01-02 15:04")
}
