package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/flychess/flychess-server/internal/app"
	"github.com/flychess/flychess-server/internal/config"
	"github.com/flychess/flychess-server/internal/log"
)

var version = "dev"

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		staticDir  string
		logLevel   string
		roomTTL    time.Duration
	)

	root := &cobra.Command{
		Use:           "flychess-server",
		Short:         "Room pairing server for the flychess board game",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to config file")
	flags.StringVar(&addr, "addr", config.Default().Addr, "HTTP listen address")
	flags.StringVar(&staticDir, "static-dir", config.Default().StaticDir, "document root for client assets")
	flags.StringVar(&logLevel, "log-level", config.Default().LogLevel, "log level (debug, info, warn, error)")
	flags.DurationVar(&roomTTL, "room-ttl", 0, "evict rooms idle longer than this (0 disables)")

	serve := func(*cobra.Command, []string) error {
		logger := log.New(logLevel)

		cfg, cfgPath, err := config.Load(logger, configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		// Flags win over file and env values.
		if flags.Changed("addr") {
			cfg.Addr = addr
		}
		if flags.Changed("static-dir") {
			cfg.StaticDir = staticDir
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if flags.Changed("room-ttl") {
			cfg.RoomTTL = roomTTL
		}

		logger = log.New(cfg.LogLevel)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application := app.New(cfg, logger)

		logger.Info().
			Str("addr", cfg.Addr).
			Str("static_dir", cfg.StaticDir).
			Str("config", cfgPath).
			Msg("starting flychess server")

		if err := application.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("server exited with error")
			return err
		}

		logger.Info().Msg("server stopped")
		return nil
	}

	// Running the bare binary serves too.
	root.RunE = serve

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the pairing server",
		RunE:  serve,
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}
