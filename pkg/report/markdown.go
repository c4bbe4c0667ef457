package report

import (
	"io"

	md "github.com/nao1215/markdown"
)

func writeMarkdown(w io.Writer, s summary) error {
	doc := md.NewMarkdown(w)
	doc.H1f("%s plan configuration", s.PlanType).LF()
	doc.PlainTextf("%d fields, %d mapped to DB columns, %d computed, %d validation rules.",
		s.Fields, s.Mapped, s.Computed, s.Validations).LF()

	rows := make([][]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		rows = append(rows, []string{row.Order, md.Code(row.Name), row.Label, row.Type, row.Column, row.Table, row.Rules, row.Computed})
	}
	doc.Table(md.TableSet{
		Header: []string{"Order", "Field", "Label", "Type", "DB Column", "Table", "Rules", "Computed"},
		Rows:   rows,
	}).LF()

	if len(s.Formulas) > 0 {
		doc.H2("Computed fields").LF()
		items := make([]string, 0, len(s.Formulas))
		for _, f := range s.Formulas {
			items = append(items, md.Code(f.Name)+": "+md.Code(f.Formula))
		}
		doc.BulletList(items...).LF()
	}

	doc.H2("Diagnostics").LF()
	if len(s.Diagnostics) == 0 {
		doc.PlainText("No diagnostics.").LF()
	} else {
		doc.BulletList(s.Diagnostics...)
	}
	return doc.Build()
}
