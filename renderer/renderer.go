// Package renderer turns budget reports into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/budget"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates is the folder of markdown templates.
var templates, _ = fs.Sub(templatesFS, "templates")

// Summary renders the totals of a ledger.
func Summary(s budget.Summary) string {
	return renderTemplate("summary", "summary.md", s)
}

// IncomeVsExpenses renders the income vs expenses pie chart: every slice with
// its amount, its share of the whole and a proportional bar.
func IncomeVsExpenses(c budget.Chart[budget.Amount]) string {
	return renderTemplate("pie", "pie.md", newPie(c))
}

// ExpenseCategories renders the number of transactions per expense category
// as a horizontal bar chart.
func ExpenseCategories(c budget.Chart[int]) string {
	return renderTemplate("categories", "categories.md", newHistogram(c))
}

var funcs = template.FuncMap{
	"cell": cell,
}

// cell escapes a free text to fit in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}

// renderTemplate renders a single template file with data.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
