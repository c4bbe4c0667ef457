package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-planconfig"
	"github.com/goliatone/go-planconfig/internal/prompt"
	"github.com/goliatone/go-planconfig/pkg/logging"
	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/orchestrator"
	"github.com/goliatone/go-planconfig/pkg/overlay"
	"github.com/goliatone/go-planconfig/pkg/reconcile"
	"github.com/goliatone/go-planconfig/pkg/report"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

type generateOptions struct {
	design      string
	dbMapping   string
	validations string
	formulas    string

	figmaLink  string
	figmaNode  string
	figmaToken string

	overlay      string
	planType     string
	output       string
	force        bool
	report       bool
	reportFormat string
	interactive  bool
	store        string
	suggestions  int
	orphans      bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(app Context) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate plan field configuration from uploads",
		Long: `Generate reconciles a design extract with the optional DB mapping,
validation and formula uploads and prints the configuration records as JSON.

Sources may be local paths or http(s) URLs. Diagnostics are printed to
stderr; a missing design source is the only hard failure.`,
		Example: `  planconfig generate --design design.json --db-mapping mapping.xlsx --plan-type dental
  planconfig generate --figma-link https://www.figma.com/file/AbC123/plans --figma-node 12:34 -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, app, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.design, "design", "", "design extract (design JSON/YAML or saved Figma nodes response)")
	flags.StringVar(&opts.dbMapping, "db-mapping", "", "DB mapping sheet (CSV or XLSX)")
	flags.StringVar(&opts.validations, "validations", "", "validation sheet (CSV or XLSX)")
	flags.StringVar(&opts.formulas, "formulas", "", "formula document (XML)")
	flags.StringVar(&opts.figmaLink, "figma-link", "", "Figma file link to pull design fields from")
	flags.StringVar(&opts.figmaNode, "figma-node", "", "Figma node id (required with a token)")
	flags.StringVar(&opts.figmaToken, "figma-token", "", "Figma access token (default $PLANCONFIG_FIGMA_TOKEN)")
	flags.StringVar(&opts.overlay, "overlay", "", "overlay file or directory of overlay documents")
	flags.StringVarP(&opts.planType, "plan-type", "p", "", "plan type: MEDICAL, DENTAL, VISION, LIFE, DISABILITY")
	flags.StringVarP(&opts.output, "output", "o", "", "write records to this file instead of stdout")
	flags.BoolVarP(&opts.force, "force", "f", false, "overwrite --output without asking")
	flags.BoolVar(&opts.report, "report", false, "print a summary report")
	flags.StringVar(&opts.reportFormat, "report-format", "text", "report format: text, table, markdown")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for missing values")
	flags.StringVar(&opts.store, "store", "", "import the records into this store snapshot file")
	flags.IntVar(&opts.suggestions, "suggestions", -1, "close-match suggestions per missing mapping (default from config)")
	flags.BoolVar(&opts.orphans, "orphans", false, "report mappings, validations and formulas that match no design field")

	return cmd
}

func runGenerate(cmd *cobra.Command, app Context, opts *generateOptions) error {
	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	stderr := cmd.ErrOrStderr()

	format, err := report.ParseFormat(opts.reportFormat)
	if err != nil {
		return err
	}

	app.SetFigmaToken(opts.figmaToken)
	app.SetEngineFlags(opts.suggestions, opts.orphans)

	planType, err := resolvePlanType(ctx, app, opts)
	if err != nil {
		return err
	}

	req := orchestrator.Request{PlanType: planType}
	for _, slot := range []struct {
		raw    string
		target *sources.Source
	}{
		{opts.design, &req.Design},
		{opts.dbMapping, &req.DBMapping},
		{opts.validations, &req.Validations},
		{opts.formulas, &req.Formulas},
	} {
		src, err := sources.ParseSource(slot.raw)
		if err != nil {
			return err
		}
		*slot.target = src
	}

	figmaClient := app.FigmaClient()
	if opts.figmaLink != "" {
		node := opts.figmaNode
		if node == "" && figmaClient.Token != "" && opts.interactive {
			if node, err = prompt.FigmaNode(ctx, app.Prompter()); err != nil {
				return err
			}
		}
		req.Figma = &orchestrator.FigmaRequest{Link: opts.figmaLink, NodeID: node}
	}

	engine, err := reconcile.New(app.EngineOptions()...)
	if err != nil {
		return err
	}
	orchOpts := []orchestrator.Option{
		orchestrator.WithLoader(planconfig.NewLoader(app.LoaderOptions()...)),
		orchestrator.WithEngine(engine),
		orchestrator.WithFigmaClient(figmaClient),
	}
	if opts.overlay != "" {
		decorator, err := loadOverlay(opts.overlay)
		if err != nil {
			return err
		}
		orchOpts = append(orchOpts, orchestrator.WithDecorators(decorator))
	}

	result, err := planconfig.NewOrchestrator(orchOpts...).Generate(ctx, req)
	if result != nil {
		printDiagnostics(stderr, result.Diagnostics.All(), app.NoColor())
	}
	if err != nil {
		return err
	}

	if err := writeRecords(ctx, cmd, app, opts, result.Records); err != nil {
		return err
	}

	if opts.report {
		w := stderr
		if opts.output != "" {
			w = cmd.OutOrStdout()
		}
		if err := report.Write(w, format, result); err != nil {
			return err
		}
	}

	storePath := opts.store
	if storePath == "" {
		storePath = app.StorePath()
	}
	if storePath != "" {
		if err := importIntoStore(storePath, planType, result.Records); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Imported %d records for %s into %s\n", len(result.Records), planType, storePath)
	}
	return nil
}

func resolvePlanType(ctx context.Context, app Context, opts *generateOptions) (model.PlanType, error) {
	raw := opts.planType
	if raw == "" {
		raw = app.DefaultPlanType()
	}
	if raw == "" && opts.interactive {
		return prompt.PlanType(ctx, app.Prompter(), model.PlanTypes(), model.PlanTypeMedical)
	}
	if raw == "" {
		return model.PlanTypeMedical, nil
	}

	planType, known, err := parsePlanType(raw)
	if err != nil {
		return "", err
	}
	if !known {
		app.Logger().Warn().Str("plan_type", string(planType)).Msg("using custom plan type")
	}
	return planType, nil
}

func loadOverlay(path string) (*overlay.Decorator, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}

	var st *overlay.Store
	if info.IsDir() {
		st, err = overlay.LoadFS(os.DirFS(path))
	} else {
		var data []byte
		if data, err = os.ReadFile(path); err == nil {
			st, err = overlay.Parse(data, path)
		}
	}
	if err != nil {
		return nil, err
	}
	return overlay.NewDecorator(st), nil
}

func writeRecords(ctx context.Context, cmd *cobra.Command, app Context, opts *generateOptions, records model.Config) error {
	if opts.output == "" {
		return model.Encode(cmd.OutOrStdout(), records)
	}

	if fileExists(opts.output) && !opts.force {
		if !opts.interactive {
			return fmt.Errorf("%s already exists, use --force to overwrite", opts.output)
		}
		ok, err := prompt.Overwrite(ctx, app.Prompter(), opts.output)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("aborted: output not written")
		}
	}

	if err := writeConfigFile(opts.output, records); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", len(records), opts.output)
	return nil
}

func importIntoStore(path string, planType model.PlanType, records model.Config) error {
	st, err := openStore(path)
	if err != nil {
		return err
	}
	if err := st.AddPlanType(planType); err != nil {
		return err
	}
	if err := st.Import(planType, records); err != nil {
		return err
	}
	if err := st.Select(planType); err != nil {
		return err
	}
	return saveStore(path, st)
}

