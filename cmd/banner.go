package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arbitraryrw/folio/internal/typing"
)

var bannerDurationFlag time.Duration

const clearLine = "\r\x1b[K"

var (
	bannerLineStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#38BDF8"))
	bannerCaretStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

var bannerCmd = &cobra.Command{
	Use:     "banner",
	Short:   "Play the typing banner in the terminal",
	Long:    "Run the typing banner on a single terminal line until interrupted or until --duration elapses.",
	GroupID: "folio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if bannerDurationFlag > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, bannerDurationFlag)
			defer cancel()
		}
		return playBanner(ctx, cmd.OutOrStdout(), cfg.Typing())
	},
}

// playBanner writes every frame over the same line until ctx is done.
func playBanner(ctx context.Context, w io.Writer, tc typing.Config) error {
	anim, err := typing.New(tc)
	if err != nil {
		return err
	}

	frames := make(chan typing.Frame, 1)
	r := typing.NewRunner(anim, nil, func(f typing.Frame) { offerFrame(frames, f) })
	r.Start()
	defer r.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			return nil
		case f := <-frames:
			fmt.Fprint(w, clearLine+renderBannerLine(f))
		}
	}
}

// offerFrame replaces any unread frame with f so a slow reader only ever
// sees the latest state. Callers must be the channel's only sender.
func offerFrame(ch chan typing.Frame, f typing.Frame) {
	select {
	case <-ch:
	default:
	}
	ch <- f
}

func renderBannerLine(f typing.Frame) string {
	return bannerLineStyle.Render(f.Text) + bannerCaretStyle.Render("▌")
}

func init() {
	bannerCmd.Flags().DurationVar(&bannerDurationFlag, "duration", 0, "stop after this long (0 runs until interrupted)")
	rootCmd.AddCommand(bannerCmd)
}
