package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arbitraryrw/folio/internal/config"
	"github.com/arbitraryrw/folio/internal/logging"
	"github.com/arbitraryrw/folio/tui"
)

var postFlag string

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Short:   "Launch the interactive terminal UI",
	Long:    "Start folio's full-screen terminal interface: the typing banner, the post index and the articles.",
	GroupID: "folio",
	RunE:    runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	// The UI owns the terminal; keep log lines out of it.
	if cfg.LogFile == "" {
		logging.Discard()
	}

	m, err := tui.NewMainModel(tui.Options{
		Typing:     cfg.Typing(),
		ContentDir: cfg.ContentDir,
		StartSlug:  postFlag,
	})
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse || mouseEnabledFromEnv() {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// mouseEnabledFromEnv is checked at run time as well as at config load so
// the host command can turn the mouse on for its child process.
func mouseEnabledFromEnv() bool {
	return config.BoolEnv("FOLIO_TUI_MOUSE")
}

func init() {
	tuiCmd.Flags().StringVar(&postFlag, "post", "", "open the post with this slug instead of the index")
	rootCmd.AddCommand(tuiCmd)
}
