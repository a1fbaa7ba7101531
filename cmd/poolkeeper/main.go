package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/javi11/poolkeeper/db"
	"github.com/javi11/poolkeeper/internal/adminpanel"
	"github.com/javi11/poolkeeper/internal/config"
	"github.com/javi11/poolkeeper/internal/failurelog"
	"github.com/javi11/poolkeeper/internal/metrics"
	"github.com/javi11/poolkeeper/internal/serverinfo"
	"github.com/natefinch/lumberjack"
	"github.com/spf13/cobra"

	_ "github.com/mattn/go-sqlite3"
)

var Version = "dev"
var configFile string

var rootCmd = &cobra.Command{
	Use:   "poolkeeper",
	Short: "Keeps warm, bounded pools of connections to upstream servers",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		config, err := config.FromFile(configFile)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load config file", "err", err)
			os.Exit(1)
		}

		log := newLogger(config)
		log.InfoContext(ctx, fmt.Sprintf("Starting poolkeeper %s", Version))

		sqlLite, err := db.NewDB(config.DBPath)
		if err != nil {
			log.ErrorContext(ctx, "Failed to open database", "err", err)
			os.Exit(1)
		}
		defer sqlLite.Close()

		failures := failurelog.New(sqlLite)

		d, err := newDialer(config, log)
		if err != nil {
			log.ErrorContext(ctx, "Failed to init dialer", "err", err)
			os.Exit(1)
		}

		registry, err := newRegistry(config, d, failures, log)
		if err != nil {
			log.ErrorContext(ctx, "Failed to init pool registry", "err", err)
			os.Exit(1)
		}
		defer func() {
			if err := registry.Close(); err != nil {
				log.Warn("Some resources failed to close", "err", err)
			}
		}()

		warm(ctx, registry, config.Targets, config.Pool.InitialSize, log)

		sweeper := time.NewTicker(config.Pool.SweepInterval)
		defer sweeper.Stop()
		go registry.Start(ctx, sweeper)

		purger := time.NewTicker(config.Pool.SweepInterval)
		defer purger.Stop()
		go purgeFailures(ctx, failures, config.FailureRetention, purger, log)

		serverInfo := serverinfo.NewServerInfo(registry, d)
		adminPanel := adminpanel.New(serverInfo, registry, failures, metrics.NewRegistry(registry), log)

		if err := adminPanel.Start(ctx, config.ApiPort); err != nil {
			log.ErrorContext(ctx, "Failed to start API controller", "err", err)
			return
		}

		log.InfoContext(ctx, "Shutting down")
	},
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Acquires and releases one connection per configured target",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		config, err := config.FromFile(configFile)
		if err != nil {
			return err
		}

		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		if config.Debug {
			log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}

		d, err := newDialer(config, log)
		if err != nil {
			return err
		}

		registry, err := newRegistry(config, d, nil, log)
		if err != nil {
			return err
		}
		defer registry.Close()

		return probe(ctx, registry, d.Targets(), cmd.OutOrStdout())
	},
}

func newLogger(config *config.Config) *slog.Logger {
	options := &slog.HandlerOptions{}

	if config.Debug {
		options.Level = slog.LevelDebug
	}

	jsonHandler := slog.NewJSONHandler(
		io.MultiWriter(
			os.Stdout,
			&lumberjack.Logger{
				Filename:   config.LogPath,
				MaxSize:    5,
				MaxAge:     14,
				MaxBackups: 5,
			}), options)

	return slog.New(jsonHandler)
}

func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configFile, "config", "c", "", "path to YAML config file")
	err := rootCmd.MarkPersistentFlagRequired("config")
	if err != nil {
		panic(err)
	}

	rootCmd.AddCommand(probeCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
