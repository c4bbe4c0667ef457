package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

func writeTable(w io.Writer, s summary) error {
	if _, err := fmt.Fprintf(w, "Plan type: %s (%d fields, %d mapped, %d computed)\n",
		s.PlanType, s.Fields, s.Mapped, s.Computed); err != nil {
		return err
	}

	table := tablewriter.NewTable(w)
	table.Header("Order", "Field", "Label", "Type", "DB Column", "Table", "Rules", "Computed")
	for _, row := range s.Rows {
		if err := table.Append(row.Order, row.Name, row.Label, row.Type, row.Column, row.Table, row.Rules, row.Computed); err != nil {
			return fmt.Errorf("report: append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("report: render table: %w", err)
	}

	for _, diag := range s.Diagnostics {
		if _, err := fmt.Fprintf(w, "! %s\n", diag); err != nil {
			return err
		}
	}
	return nil
}
