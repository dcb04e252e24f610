package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"hakbang/internal/config"
	"hakbang/internal/logging"
	"hakbang/internal/trace"
	"hakbang/internal/ui"
)

var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "hakbang",
	Short: "HakbangQuest in your terminal",
	Long:  `Hakbang walks through the HakbangQuest welcome, sign-up, sign-in and dashboard screens with animated transitions.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		return run(cmd.Context(), path)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("config", "", "config file (default $HAKBANG_CONFIG or ~/.config/hakbang/config.toml)")
	rootCmd.Flags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.Flags().String("log-file", "", "log file (default $XDG_STATE_HOME/hakbang/hakbang.log)")
	_ = v.BindPFlag("log.level", rootCmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag("log.file", rootCmd.Flags().Lookup("log-file"))
}

func run(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(v, path)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.Open(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Theme.Monochrome {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	tp, err := trace.NewProvider(ctx, cfg.Trace)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("tracer shutdown", "error", err)
		}
	}()
	log.Info("starting", "session", tp.SessionID, "tracing", tp.Enabled())

	model := ui.NewAppModel(ctx, cfg, log)
	model.Tracer = tp.Tracer()
	defer model.Close()

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
