package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/store"
)

// NewStoreCommand creates the store command and its subcommands.
func NewStoreCommand(app Context) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect and edit a store snapshot file",
		Long: `Store works on the snapshot file written by generate --store and
sample --store. The file path defaults to $PLANCONFIG_STORE.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&path, "store", "", "store snapshot file")

	resolve := func() (string, error) {
		if path != "" {
			return path, nil
		}
		if p := app.StorePath(); p != "" {
			return p, nil
		}
		return "", errors.New("store: --store or PLANCONFIG_STORE is required")
	}

	cmd.AddCommand(newStoreListCommand(resolve))
	cmd.AddCommand(newStoreExportCommand(resolve))
	cmd.AddCommand(newStoreSelectCommand(resolve))
	cmd.AddCommand(newStoreDeleteCommand(resolve))
	cmd.AddCommand(newStoreClearCommand(resolve))
	return cmd
}

type pathFunc func() (string, error)

func withStore(resolve pathFunc, fn func(st *store.Store) (bool, error)) error {
	path, err := resolve()
	if err != nil {
		return err
	}
	st, err := openStore(path)
	if err != nil {
		return err
	}
	dirty, err := fn(st)
	if err != nil || !dirty {
		return err
	}
	return saveStore(path, st)
}

func newStoreListCommand(resolve pathFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plan types and their record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(resolve, func(st *store.Store) (bool, error) {
				table := tablewriter.NewTable(cmd.OutOrStdout())
				table.Header("Plan Type", "Records", "Selected")
				selected := st.Selected()
				for _, pt := range st.PlanTypes() {
					cfg, err := st.Export(pt)
					if err != nil {
						return false, err
					}
					mark := ""
					if pt == selected {
						mark = "*"
					}
					if err := table.Append(string(pt), strconv.Itoa(len(cfg)), mark); err != nil {
						return false, err
					}
				}
				return false, table.Render()
			})
		},
	}
}

func newStoreExportCommand(resolve pathFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "export [plan-type]",
		Short: "Print the records of a plan type (default: selected)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(resolve, func(st *store.Store) (bool, error) {
				planType := st.Selected()
				if len(args) == 1 {
					planType = model.PlanType(args[0])
				}
				cfg, err := st.Export(planType)
				if err != nil {
					return false, err
				}
				return false, model.Encode(cmd.OutOrStdout(), cfg)
			})
		},
	}
}

func newStoreSelectCommand(resolve pathFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "select <plan-type>",
		Short: "Select the active plan type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(resolve, func(st *store.Store) (bool, error) {
				if err := st.Select(model.PlanType(args[0])); err != nil {
					return false, err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Selected %s\n", st.Selected())
				return true, nil
			})
		},
	}
}

func newStoreDeleteCommand(resolve pathFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <plan-type> <id>",
		Short: "Delete one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(resolve, func(st *store.Store) (bool, error) {
				if err := st.Delete(model.PlanType(args[0]), args[1]); err != nil {
					return false, err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[1])
				return true, nil
			})
		},
	}
}

func newStoreClearCommand(resolve pathFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <plan-type>",
		Short: "Remove every record of a plan type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(resolve, func(st *store.Store) (bool, error) {
				if err := st.Clear(model.PlanType(args[0])); err != nil {
					return false, err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", args[0])
				return true, nil
			})
		},
	}
}
