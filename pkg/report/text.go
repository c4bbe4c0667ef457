package report

import (
	"embed"
	"fmt"
	"io"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

const summaryTemplate = "summary.tpl"

var (
	templateOnce sync.Once
	templateSet  *pongo2.TemplateSet
	summaryTpl   *pongo2.Template
	templateErr  error
)

func loadTemplate() (*pongo2.Template, error) {
	templateOnce.Do(func() {
		templateSet = pongo2.NewSet("planconfig-report", pongo2.NewFSLoader(templatesFS))
		summaryTpl, templateErr = templateSet.FromFile("templates/" + summaryTemplate)
	})
	return summaryTpl, templateErr
}

func writeText(w io.Writer, s summary) error {
	tpl, err := loadTemplate()
	if err != nil {
		return fmt.Errorf("report: parse template %q: %w", summaryTemplate, err)
	}
	if err := tpl.ExecuteWriter(textContext(s), w); err != nil {
		return fmt.Errorf("report: execute template %q: %w", summaryTemplate, err)
	}
	return nil
}

func textContext(s summary) pongo2.Context {
	rows := make([]map[string]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		rows = append(rows, map[string]string{
			"order":  row.Order,
			"name":   row.Name,
			"type":   row.Type,
			"column": row.Column,
			"table":  row.Table,
			"rules":  row.Rules,
		})
	}
	formulas := make([]map[string]string, 0, len(s.Formulas))
	for _, f := range s.Formulas {
		formulas = append(formulas, map[string]string{"name": f.Name, "formula": f.Formula})
	}

	return pongo2.Context{
		"plan_type":   s.PlanType,
		"fields":      s.Fields,
		"mapped":      s.Mapped,
		"computed":    s.Computed,
		"validations": s.Validations,
		"rows":        rows,
		"formulas":    formulas,
		"diagnostics": s.Diagnostics,
	}
}
