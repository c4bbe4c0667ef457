package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-planconfig/pkg/identity"
)

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand(_ Context) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <label>...",
		Short: "Show the field name each label normalises to",
		Long: `Normalize prints each label followed by the field name used to match it
against DB mapping, validation and formula rows.`,
		Example: `  planconfig normalize "Plan Sub-Type" "  Annual   Premium "`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, label := range args {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", label, identity.Normalize(label)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
