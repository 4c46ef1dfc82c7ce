package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbitraryrw/folio/internal/config"
	"github.com/arbitraryrw/folio/internal/logging"
)

var (
	envFileFlag  string
	logLevelFlag string
	noColorFlag  bool

	// cfg is resolved once per invocation by the persistent pre-run.
	cfg      config.Config
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Nik's blog in your terminal",
	Long: `folio is a terminal rendition of a personal blog: a typing banner,
a paginated post index and the articles themselves.

Run without a subcommand to open the interactive UI.

Examples:
  folio                                  # open the blog
  folio tui --post 2020-09-05-r2con2020  # jump straight to a post
  folio banner --duration 10s            # just the typing banner
  folio posts --tag android              # list posts
  folio serve                            # JSON + SSE API for the site`,
	RunE:              runTUI,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(envFileFlag); err != nil {
		return err
	}
	c, err := config.Load()
	if err != nil {
		return err
	}
	if logLevelFlag != "" {
		c.LogLevel = logLevelFlag
	}
	cfg = c

	closeFn, err := logging.Init(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Output:  cmd.ErrOrStderr(),
		NoColor: noColorFlag,
	})
	if err != nil {
		return err
	}
	closeLog = closeFn
	logging.Logger.Debug("config loaded", "phrases", len(cfg.Phrases), "content", cfg.ContentDir)
	return nil
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "folio", Title: "Commands:"})

	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", ".env",
		"dotenv file to seed FOLIO_* settings from")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"log level: debug, info, warn, error (overrides FOLIO_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false,
		"disable colored output")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
