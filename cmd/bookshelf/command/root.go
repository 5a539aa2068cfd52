package command

// root.go defines the root command for the bookshelf CLI and the shared
// wiring (config, logger, session store, API client, services) that every
// subcommand builds on.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bookshelf/internal/account"
	"bookshelf/internal/api"
	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/session"
)

var (
	apiURL   string // global flag for the backend base URL
	logLevel string // global flag for diagnostic log level
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookshelf",
	Short: "bookshelf - book inventory command line client",
	Long: `bookshelf is a client for a book-inventory REST API. Sign in once and
use it to:
- List, filter, search, and page through books
- Create, edit, and delete book records
- Browse interactively with live search

Use "bookshelf [command] --help" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API server base URL (overrides BOOKSHELF_API_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(genresCmd)
	rootCmd.AddCommand(browseCmd)
}

// app bundles the shared dependencies of every subcommand.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	tokens  session.Store
	client  *api.Client
	catalog *catalog.Service
	account *account.Service
}

// newApp loads config, applies flag overrides, and wires the dependency
// chain: session store -> API client -> services.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	tokens := session.NewDefaultStore(cfg.TokenFile)
	client := api.NewClient(cfg.APIURL, tokens, logger)
	client.SetTimeout(cfg.HTTPTimeout)

	return &app{
		cfg:     cfg,
		logger:  logger,
		tokens:  tokens,
		client:  client,
		catalog: catalog.NewService(client, logger),
		account: account.NewService(client, tokens, logger),
	}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	// Diagnostics go to stderr so command output stays pipeable.
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
