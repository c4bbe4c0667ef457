// Package app holds configuration, logging and lifecycle for the planconfig
// CLI. Commands receive the App through the cmd.Context interface.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-planconfig/cmd/planconfig/cmd"
	"github.com/goliatone/go-planconfig/internal/prompt"
	"github.com/goliatone/go-planconfig/pkg/figma"
	"github.com/goliatone/go-planconfig/pkg/reconcile"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// App is the planconfig application with its dependencies.
type App struct {
	version string
	commit  string

	config   *Config
	logger   *zerolog.Logger
	prompter prompt.Driver
}

var _ cmd.Context = (*App)(nil)

// Option customises an App.
type Option func(*App) error

// WithConfig replaces the loaded configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) error {
		if cfg == nil {
			return fmt.Errorf("app: config cannot be nil")
		}
		a.config = cfg
		logger := NewLogger(cfg)
		a.logger = &logger
		return nil
	}
}

// WithPrompter replaces the terminal prompt driver.
func WithPrompter(d prompt.Driver) Option {
	return func(a *App) error {
		if d == nil {
			return fmt.Errorf("app: prompter cannot be nil")
		}
		a.prompter = d
		return nil
	}
}

// New creates an App with configuration loaded from the environment.
func New(version, commit string, opts ...Option) (*App, error) {
	a := &App{
		version:  version,
		commit:   commit,
		prompter: &prompt.Survey{},
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("app: load config: %w", err)
	}
	a.config = config
	logger := NewLogger(config)
	a.logger = &logger

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Version returns the version string.
func (a *App) Version() string { return a.version }

// Commit returns the build commit.
func (a *App) Commit() string { return a.commit }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Prompter returns the interactive prompt driver.
func (a *App) Prompter() prompt.Driver { return a.prompter }

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool { return a.config.NoColor }

// DefaultPlanType returns the configured plan type, if any.
func (a *App) DefaultPlanType() string { return a.config.PlanType }

// StorePath returns the configured store snapshot path, if any.
func (a *App) StorePath() string { return a.config.StorePath }

// FigmaClient builds a Figma client from the configured token and base URL.
func (a *App) FigmaClient() *figma.Client {
	client := &figma.Client{
		BaseURL: a.config.FigmaBaseURL,
		Token:   a.config.FigmaToken,
	}
	if a.config.HTTPTimeout > 0 {
		client.HTTP = &http.Client{Timeout: a.config.HTTPTimeout}
	}
	return client
}

// SetFigmaToken overrides the configured token, e.g. from --figma-token.
func (a *App) SetFigmaToken(token string) {
	if token != "" {
		a.config.FigmaToken = token
	}
}

// EngineOptions returns the reconciliation options derived from config.
func (a *App) EngineOptions() []reconcile.Option {
	return []reconcile.Option{
		reconcile.WithSuggestions(a.config.Suggestions),
		reconcile.WithOrphanChecks(a.config.OrphanChecks),
	}
}

// SetEngineFlags overrides the suggestion limit and orphan checks.
func (a *App) SetEngineFlags(suggestions int, orphans bool) {
	if suggestions >= 0 {
		a.config.Suggestions = suggestions
	}
	if orphans {
		a.config.OrphanChecks = true
	}
}

// LoaderOptions returns the loader options derived from config. Remote
// sources are always allowed from the CLI.
func (a *App) LoaderOptions() []sources.LoaderOption {
	return []sources.LoaderOption{sources.WithHTTPFallback(a.config.HTTPTimeout)}
}

// Execute runs the CLI with args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.createRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) createRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "planconfig",
		Short:   "Generate insurance plan field configuration",
		Version: a.version,
		Long: `planconfig reconciles a design extract (design JSON/YAML or a Figma
frame) with DB mapping, validation and formula uploads and emits the plan
field configuration records, reporting every gap it finds along the way.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	root.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=error)")
	root.PersistentFlags().Bool("no-color", false, "disable colored output")
	root.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	root.SetVersionTemplate("planconfig {{.Version}}\n")

	root.AddCommand(cmd.NewGenerateCommand(a))
	root.AddCommand(cmd.NewSampleCommand(a))
	root.AddCommand(cmd.NewNormalizeCommand(a))
	root.AddCommand(cmd.NewStoreCommand(a))

	return root
}

func (a *App) setupCommand(c *cobra.Command, _ []string) error {
	noColor, err := c.Flags().GetBool("no-color")
	if err != nil {
		return err
	}
	logLevel, err := c.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	a.config.UpdateFromFlags(a.config.Verbose, a.config.Quiet, noColor, logLevel)

	logger := NewLogger(a.config)
	a.logger = &logger
	return nil
}

// ExitOnError prints err and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
