package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rjongens/dnswatch/internal/api"
	"github.com/rjongens/dnswatch/internal/api/handlers"
	"github.com/rjongens/dnswatch/internal/config"
	"github.com/rjongens/dnswatch/internal/dnspod"
	"github.com/rjongens/dnswatch/internal/journal"
	"github.com/rjongens/dnswatch/internal/logging"
	"github.com/rjongens/dnswatch/internal/monitor"
	"github.com/rjongens/dnswatch/internal/notify"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to JSON configuration file (or set DNSWATCH_CONFIG)")
		once       = flag.Bool("once", false, "Run a single check cycle and exit")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *jsonLogs {
		cfg.Logging.JSON = true
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:      cfg.Logging.Level,
		JSON:       cfg.Logging.JSON,
		IncludePID: cfg.Logging.IncludePID,
	})
	logger.Info("dnswatch starting",
		"domain", cfg.Domain,
		"names", cfg.Names,
		"interval", cfg.Interval().String(),
	)

	lister, err := dnspod.NewClient("", cfg.Token, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create dnspod client: %v\n", err)
		os.Exit(1)
	}
	notifier, err := notify.NewTelegram("", cfg.Telegram.BotToken, cfg.Telegram.ChatID, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create telegram notifier: %v\n", err)
		os.Exit(1)
	}

	rcfg := monitor.RunnerConfig{
		Logger:   logger,
		Domain:   cfg.Domain,
		Names:    cfg.Names,
		Interval: cfg.Interval(),
		Lister:   lister,
		Notifier: notifier,
	}

	var db *journal.DB
	if cfg.Journal.Path != "" {
		db, err = journal.Open(cfg.Journal.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open journal: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
		rcfg.Journal = db
		logger.Info("journal enabled", "path", cfg.Journal.Path)
	}

	runner := monitor.NewRunner(rcfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *once {
		if err := runner.CheckOnce(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if cfg.API.Enabled {
		h := handlers.New(cfg, db, logger)
		h.SetStatusFunc(runner.Status)
		h.SetBaselineFunc(runner.Baseline)

		srv := api.New(cfg, logger, h)
		api.MountDashboard(srv.Engine(), logger)

		go func() {
			logger.Info("management api listening", "addr", srv.Addr())
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("management api failed", "err", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if err := runner.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "monitor exited with error: %v\n", err)
		os.Exit(1)
	}
}
