package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"momentum/internal/api"
	"momentum/internal/coach"
	"momentum/internal/config"
	"momentum/internal/intent"
	"momentum/internal/momentum"
	"momentum/internal/router"
	"momentum/internal/store"
	"momentum/internal/trend"
)

var (
	configPath string
	dbPath     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "momentum",
		Short: "Voice-note life tracking: intent parsing and daily momentum scoring",
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides config)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(logCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(digestCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// #region wiring

type app struct {
	cfg      config.Config
	store    *store.Store
	engine   *momentum.Engine
	router   *router.Router
	reporter *trend.Reporter
	coach    *coach.Coach
	logger   *zap.Logger
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DB.Path = dbPath
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	s, err := store.New(cfg.DB.Path)
	if err != nil {
		return nil, err
	}

	engine := momentum.NewEngine(s, s, logger)
	return &app{
		cfg:      cfg,
		store:    s,
		engine:   engine,
		router:   router.New(s, engine, logger),
		reporter: trend.NewReporter(s),
		coach: coach.New(coach.Config{
			Endpoint: cfg.Coach.Endpoint,
			APIKey:   cfg.Coach.APIKey,
			Timeout:  cfg.Coach.Timeout,
		}, logger),
		logger: logger,
	}, nil
}

func (a *app) close() {
	a.store.Close()
	a.logger.Sync()
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	zc.Level = level
	return zc.Build()
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// #endregion

// #region serve

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			srv, err := api.NewServer(a.store, a.engine, a.router, a.reporter, a.coach,
				a.logger, api.Config{Host: a.cfg.Server.Host, Port: a.cfg.Server.Port})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

// #endregion

// #region parse

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Classify an utterance without persisting anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(intent.Parse(strings.Join(args, " ")))
		},
	}
}

// #endregion

// #region log

func logCmd() *cobra.Command {
	var date string
	var yes bool

	cmd := &cobra.Command{
		Use:   "log <text>",
		Short: "Parse an utterance and apply it to the day's logs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if date == "" {
				date = today()
			}
			it := intent.Parse(strings.Join(args, " "))
			res, err := a.router.Dispatch(cmd.Context(), date, it, yes)
			if err != nil {
				return err
			}

			switch res.Decision {
			case router.DecisionApplied:
				fmt.Printf("Applied %s (confidence %.2f)\n", it.Domain, it.Confidence)
				fmt.Printf("Momentum for %s: %d/100\n", date, res.Snapshot.Score)
			case router.DecisionRejected:
				fmt.Printf("Held %s: %s (rerun with --yes to apply)\n", it.Domain, res.Reason)
			case router.DecisionUnrecognized:
				fmt.Println("Could not recognize that utterance.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date to log against (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm intents that require confirmation")
	return cmd
}

// #endregion

// #region score

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [date]",
		Short: "Recompute and print the momentum snapshot for a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			date := today()
			if len(args) == 1 {
				date = args[0]
			}
			snap, err := a.engine.Compute(cmd.Context(), date)
			if err != nil {
				return err
			}
			weakest := momentum.WeakestLink(snap.Breakdown)
			if err := printJSON(snap); err != nil {
				return err
			}
			fmt.Printf("Weakest link: %s\n", weakest)
			return nil
		},
	}
}

// #endregion

// #region history

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recent snapshots and the weekly trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			snaps, err := a.store.ListSnapshots(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, snap := range snaps {
				fmt.Printf("%s  %3d/100\n", snap.Date, snap.Score)
			}

			sum, err := a.reporter.Weekly(cmd.Context())
			if err != nil {
				return err
			}
			if sum.Days > 0 {
				fmt.Printf("\n7-day average: %.1f  streak: %d  weakest: %s\n",
					sum.AverageScore, sum.Streak, sum.WeakestCategory)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 14, "number of snapshots to list")
	return cmd
}

// #endregion

// #region digest

func digestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest [date]",
		Short: "Print the coaching digest for a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			date := today()
			if len(args) == 1 {
				date = args[0]
			}
			snap, found, err := a.store.GetSnapshot(cmd.Context(), date)
			if err != nil {
				return err
			}
			if !found {
				if snap, err = a.engine.Compute(cmd.Context(), date); err != nil {
					return err
				}
			}
			sum, err := a.reporter.Weekly(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(a.coach.Digest(cmd.Context(), snap, sum))
			return nil
		},
	}
}

// #endregion
