// Package report renders aggregates as aligned plain text tables for the command line.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"cop_dashboard/models"
	"cop_dashboard/utils"
)

// Table is a pipe delimited table. Columns flagged in Numeric are right aligned.
type Table struct {
	Headers []string
	Numeric []bool
	Rows    [][]string
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = max(runewidth.StringWidth(h), 3)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (t *Table) numeric(i int) bool {
	return i < len(t.Numeric) && t.Numeric[i]
}

func (t *Table) line(cells []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if t.numeric(i) {
			cell = runewidth.FillLeft(cell, w)
		} else {
			cell = runewidth.FillRight(cell, w)
		}
		sb.WriteString(" " + cell + " |")
	}
	return sb.String()
}

// Render writes the header, a separator and every row. Cell widths are measured in terminal
// columns so wide characters stay aligned.
func (t *Table) Render(w io.Writer) error {
	widths := t.widths()

	sep := make([]string, len(widths))
	for i, width := range widths {
		dashes := strings.Repeat("-", width)
		if t.numeric(i) {
			dashes = dashes[:width-1] + ":"
		}
		sep[i] = dashes
	}

	lines := []string{t.line(t.Headers, widths), t.line(sep, widths)}
	for _, row := range t.Rows {
		lines = append(lines, t.line(row, widths))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func count(n int) string {
	return utils.FormatCount(n)
}

func AuthorsTable(authors []models.AuthorCount) *Table {
	t := &Table{Headers: []string{"#", "Author", "Tweets"}, Numeric: []bool{true, false, true}}
	for i, a := range authors {
		t.Rows = append(t.Rows, []string{fmt.Sprint(i + 1), a.Author, count(a.Count)})
	}
	return t
}

func DomainsTable(domains []models.DomainCount) *Table {
	t := &Table{Headers: []string{"#", "Domain", "Links"}, Numeric: []bool{true, false, true}}
	for i, d := range domains {
		t.Rows = append(t.Rows, []string{fmt.Sprint(i + 1), d.Domain, count(d.Count)})
	}
	return t
}

func CategoriesTable(counts []models.CategoryCount) *Table {
	t := &Table{Headers: []string{"Category", "Tweets"}, Numeric: []bool{false, true}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []string{c.Category, count(c.Count)})
	}
	return t
}

func KPIsTable(k models.KPIs) *Table {
	return &Table{
		Headers: []string{"Metric", "Value"},
		Numeric: []bool{false, true},
		Rows: [][]string{
			{"Tweets", count(k.TotalTweets)},
			{"Authors", count(k.UniqueAuthors)},
			{"Categories", count(k.UniqueCategories)},
		},
	}
}

// TermsTable lists term totals with the per COP edition breakdown.
func TermsTable(bars []models.TermBar) *Table {
	t := &Table{Headers: []string{"Term", "Frequency", "By COP"}, Numeric: []bool{false, true, false}}
	for _, b := range bars {
		parts := make([]string, 0, len(b.ByCop))
		for _, cv := range b.ByCop {
			label := utils.CopLabel(cv.Cop)
			if label == "" {
				label = "n/a"
			}
			parts = append(parts, fmt.Sprintf("%s: %s", label, count(cv.Value)))
		}
		t.Rows = append(t.Rows, []string{b.Label, count(b.Total), strings.Join(parts, ", ")})
	}
	return t
}
