// The alert worker periodically evaluates budgets and publishes state
// changes to the notification queue. It is the I/O boundary around the
// pure CheckBudgets function.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/DROP-ML/MoneyBalance/internal/alerts"
	"github.com/DROP-ML/MoneyBalance/internal/analytics"
	"github.com/DROP-ML/MoneyBalance/internal/config"
	"github.com/DROP-ML/MoneyBalance/internal/docstore"
	"github.com/DROP-ML/MoneyBalance/internal/id"
	"github.com/DROP-ML/MoneyBalance/internal/log"
	"github.com/DROP-ML/MoneyBalance/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(log.Config{Level: slog.LevelInfo}).WithComponent(log.ComponentWorker)
	log.SetDefault(logger)

	logger.Info("Starting alert-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err.Error())
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the alert worker")
		os.Exit(1)
	}

	result, err := docstore.Open(docstore.Config{
		Type:          docstore.BackendType(cfg.DataBackend),
		SQLiteDBPath:  cfg.SQLiteDBPath,
		DataDirectory: cfg.DataDirectory,
	}, logger)
	if err != nil {
		logger.Error("Failed to open document store", log.FieldError, err.Error())
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer result.Cleanup()
	}

	client, err := alerts.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err.Error())
		os.Exit(1)
	}
	defer client.Close()

	repos := repository.New(result.Store, id.NewGenerator(), logger)
	if err := repos.Bootstrap.Run(context.Background()); err != nil {
		logger.Error("Bootstrap failed", log.FieldError, err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := &worker{
		repos:    repos,
		client:   client,
		interval: cfg.AlertInterval,
		last:     make(map[string]analytics.BudgetLevel),
		log:      logger,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return worker.run(ctx) })

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		logger.Error("Worker stopped with error", log.FieldError, err.Error())
		os.Exit(1)
	}
	logger.Info("Shutdown complete")
}

type worker struct {
	repos    *repository.Repositories
	client   *alerts.Client
	interval time.Duration
	last     map[string]analytics.BudgetLevel
	log      *log.Logger
}

func (w *worker) run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Evaluate once at startup, then on every tick.
	w.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

// check evaluates every budget and publishes alerts for categories whose
// level changed to warning or exceeded since the last pass. Publish
// failures are logged and retried on the next tick via the level map not
// being updated.
func (w *worker) check(ctx context.Context) {
	settings, ok := w.repos.Settings.Get(ctx)
	if ok && !settings.NotifyBudgetAlerts {
		return
	}

	transactions := w.repos.Transactions.List(ctx)
	categories := w.repos.Categories.List(ctx)

	for _, status := range analytics.CheckBudgets(transactions, categories, time.Now()) {
		if status.Level == analytics.BudgetOK {
			w.last[status.Category] = status.Level
			continue
		}
		if w.last[status.Category] == status.Level {
			continue
		}

		if err := w.client.PublishBudgetAlert(ctx, alerts.NewBudgetAlertMessage(status)); err != nil {
			w.log.ErrorContext(ctx, "Failed to publish budget alert",
				log.FieldCategory, status.Category, log.FieldError, err.Error())
			continue
		}
		w.last[status.Category] = status.Level
	}
}
