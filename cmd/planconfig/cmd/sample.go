package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/sample"
)

// NewSampleCommand creates the sample command.
func NewSampleCommand(app Context) *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the sample plan configuration",
		Long: `Sample prints the bundled sample configuration. With --store the
records are imported into the store snapshot under their plan type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := sample.Config()
			if err != nil {
				return err
			}

			path := storePath
			if path == "" {
				path = app.StorePath()
			}
			if path == "" {
				return model.Encode(cmd.OutOrStdout(), cfg)
			}

			planType := model.PlanTypeMedical
			if len(cfg) > 0 && cfg[0].Type != "" {
				planType = cfg[0].Type
			}
			if err := importIntoStore(path, planType, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sample records for %s into %s\n", len(cfg), planType, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&storePath, "store", "", "import the sample into this store snapshot file")
	return cmd
}
