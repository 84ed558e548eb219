package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/reshetovitsme/gallery-feed/internal/di"
	embedService "github.com/reshetovitsme/gallery-feed/internal/modules/embed/service"
	"github.com/reshetovitsme/gallery-feed/internal/modules/gallery/domain"
	galleryRepo "github.com/reshetovitsme/gallery-feed/internal/modules/gallery/repository"
	galleryService "github.com/reshetovitsme/gallery-feed/internal/modules/gallery/service"
	"github.com/reshetovitsme/gallery-feed/internal/shared/config"
	"github.com/reshetovitsme/gallery-feed/internal/transport/tui"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var (
	flagStatus   string
	flagLimit    int
	flagCols     int
	flagView     string
	flagHostOut  string
	flagInterval string
)

var browseCmd = &cobra.Command{
	Use:   "browse <database_id>",
	Short: "Browse a gallery feed in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&flagStatus, "status", "", "only show posts with this status")
	browseCmd.Flags().IntVar(&flagLimit, "limit", 0, "page size (1-100)")
	browseCmd.Flags().IntVar(&flagCols, "cols", domain.DefaultColumns, "grid columns (1-6)")
	browseCmd.Flags().StringVar(&flagView, "view", "grid", "initial view: grid or reels")
	browseCmd.Flags().StringVar(&flagHostOut, "host-out", "", "file receiving embed-resize messages (default stderr)")
	browseCmd.Flags().StringVar(&flagInterval, "interval", "", "override the refresh interval (e.g. 30s, 2m)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	reels, err := parseView(flagView)
	if err != nil {
		return err
	}

	logCloser, err := setupClientLogger()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	injector, err := di.Setup(flagConfig)
	if err != nil {
		return fmt.Errorf("setting up: %w", err)
	}
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	client := do.MustInvoke[*galleryRepo.Client](injector)

	interval := cfg.PollDuration()
	if flagInterval != "" {
		interval, err = parseInterval(flagInterval)
		if err != nil {
			return fmt.Errorf("invalid --interval value: %w", err)
		}
	}

	hostOut, err := openHostOut(flagHostOut)
	if err != nil {
		return err
	}
	defer hostOut.Close()

	broadcaster := embedService.NewBroadcaster(embedService.NewWriterNotifier(hostOut))
	broadcaster.SetLogger(slog.Default())
	defer broadcaster.Detach()

	query := domain.Query{DatabaseID: args[0], Status: flagStatus, Limit: flagLimit}
	poller := galleryService.NewPoller(client, query, interval)
	poller.SetLogger(slog.Default())
	defer poller.Stop()

	return tui.Run(tui.RunOpts{
		Query:    query,
		Layout:   domain.NewLayout(flagCols),
		Reels:    reels,
		Poller:   poller,
		Observer: broadcaster,
	})
}

func parseView(s string) (bool, error) {
	switch s {
	case "grid", "":
		return false, nil
	case "reels":
		return true, nil
	default:
		return false, fmt.Errorf("invalid --view value %q: want grid or reels", s)
	}
}

// parseInterval accepts Go durations or a bare number of seconds.
func parseInterval(s string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(s); err == nil {
		if seconds <= 0 {
			return 0, fmt.Errorf("interval must be positive")
		}
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	return d, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openHostOut(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening host output: %w", err)
	}
	return f, nil
}
