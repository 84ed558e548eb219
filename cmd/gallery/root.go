package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adrg/xdg"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "gallery",
	Short:        "Media gallery feed server and terminal client",
	Long:         "gallery turns a database of posts into a media gallery feed, serves it over HTTP and browses it from the terminal.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(diagCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gallery %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func logLevel() slog.Level {
	if flagVerbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// setupServerLogger logs text to stdout and errors as JSON to stderr.
func setupServerLogger() {
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel()})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
	slog.SetDefault(slog.New(slogmulti.Fanout(textHandler, jsonHandler)))
}

// setupClientLogger keeps the terminal free for the TUI and logs to a file
// under the XDG state directory. The returned closer flushes it.
func setupClientLogger() (io.Closer, error) {
	path, err := xdg.StateFile("gallery-feed/browse.log")
	if err != nil {
		return nil, fmt.Errorf("resolving log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: logLevel()})))
	return f, nil
}
