// Package cmd holds the driveshare command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"driveshare/internal/api"
	"driveshare/internal/config"
	"driveshare/internal/ctxlog"
	"driveshare/internal/session"
	"driveshare/internal/ui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "driveshare",
	Short: "Terminal client for the DriveShare car rental marketplace",
	Long: `Search, book and pay for cars, list your own car and message other
users of a DriveShare marketplace, from the terminal.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultPath()+")")

	f := rootCmd.Flags()
	f.String("api", "", "marketplace base URL")
	f.String("session-file", "", "where the login token is kept")
	f.String("log-file", "", "log file")
	f.String("log-level", "", "log level (debug, info, warn, error)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}

func runRoot(cmd *cobra.Command, args []string) error {
	path := configPath()
	if _, err := config.EnsureFile(path); err != nil {
		return err
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	tokens, err := session.OpenFileStore(cfg.SessionFile)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = ctxlog.WithLogger(ctx, logger)

	client := api.New(tokens, api.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
		Logger:  logger,
	})

	logger.Info("starting", "api", cfg.APIBaseURL, "config", path)
	model := ui.NewModel(ctx, ui.Options{
		API:             client,
		Tokens:          tokens,
		Logger:          logger,
		NotificationTTL: cfg.UISettings.NotificationTTL,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UISettings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			// Interrupted
			return nil
		}
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}

// openLogger opens the log file and builds a text logger at level. The UI
// owns the terminal, so nothing is logged to stderr.
func openLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q", level)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}
