package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "PLANCONFIG"

// Config holds the CLI configuration loaded from config files, environment
// variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	ConfigFile string

	// Generation defaults
	PlanType     string
	FigmaToken   string
	FigmaBaseURL string
	HTTPTimeout  time.Duration
	Suggestions  int
	OrphanChecks bool
	StorePath    string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration in order of precedence:
//  1. Command-line flags (applied later via UpdateFromFlags)
//  2. PLANCONFIG_* environment variables
//  3. .env and .env.local
//  4. Config file (~/.planconfig.yaml or ./.planconfig.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("suggestions", 3)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile := os.Getenv(envPrefix + "_CONFIG"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".planconfig")
	}

	// A missing config file is not an error.
	_ = v.ReadInConfig()

	return &Config{
		Verbose:      v.GetBool("verbose"),
		Quiet:        v.GetBool("quiet"),
		NoColor:      v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		ConfigFile:   v.ConfigFileUsed(),
		PlanType:     v.GetString("plan_type"),
		FigmaToken:   firstNonEmpty(v.GetString("figma_token"), os.Getenv("FIGMA_TOKEN")),
		FigmaBaseURL: v.GetString("figma_base_url"),
		HTTPTimeout:  v.GetDuration("http_timeout"),
		Suggestions:  v.GetInt("suggestions"),
		OrphanChecks: v.GetBool("orphan_checks"),
		StorePath:    v.GetString("store"),
		LogLevel:     v.GetString("log_level"),
		LogFormat:    v.GetString("log_format"),
		LogOutput:    v.GetString("log_output"),
	}, nil
}

// UpdateFromFlags applies the global flags after cobra has parsed them so
// they take precedence over the config file and environment.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	if noColor {
		c.NoColor = true
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads .env files; .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
