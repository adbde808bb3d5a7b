package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/DROP-ML/MoneyBalance/internal/analytics"
	"github.com/DROP-ML/MoneyBalance/internal/config"
	"github.com/DROP-ML/MoneyBalance/internal/dashboard"
	"github.com/DROP-ML/MoneyBalance/internal/docstore"
	"github.com/DROP-ML/MoneyBalance/internal/id"
	"github.com/DROP-ML/MoneyBalance/internal/log"
	"github.com/DROP-ML/MoneyBalance/internal/repository"
)

func main() {
	// Load .env for local development; ignore errors in production.
	_ = godotenv.Load()

	logger := log.New(log.Config{Level: slog.LevelInfo})
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err.Error())
		os.Exit(1)
	}

	ctx := context.Background()

	result, err := docstore.Open(docstore.Config{
		Type:          docstore.BackendType(cfg.DataBackend),
		SQLiteDBPath:  cfg.SQLiteDBPath,
		DataDirectory: cfg.DataDirectory,
	}, logger)
	if err != nil {
		logger.Error("Failed to open document store", log.FieldError, err.Error(),
			log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer result.Cleanup()
	}

	repos := repository.New(result.Store, id.NewGenerator(), logger)
	if err := repos.Bootstrap.Run(ctx); err != nil {
		logger.Error("Bootstrap failed", log.FieldError, err.Error())
		os.Exit(1)
	}

	service := dashboard.NewService(repos, cfg.OverviewTTL, logger)
	overview := service.Overview(ctx, analytics.Period(cfg.Period))

	settings, _ := repos.Settings.Get(ctx)
	printOverview(overview, settings.Currency)
}

func printOverview(o dashboard.Overview, currency string) {
	fmt.Printf("Balance: %s %s\n", o.Balance, currency)
	fmt.Printf("This %s: income %s, expense %s\n", o.Period, o.Totals.Income, o.Totals.Expense)

	if len(o.TopCategories) > 0 {
		fmt.Println("Top categories:")
		for _, share := range o.TopCategories {
			fmt.Printf("  %-16s %10s  %5.1f%%\n", share.Name, share.Amount, share.Percentage)
		}
	}

	fmt.Println("Last 6 months:")
	for _, p := range o.Trend {
		fmt.Printf("  %04d-%02d  income %10s  expense %10s\n", p.Year, int(p.Month), p.Income, p.Expense)
	}

	for _, b := range o.Budgets {
		if b.Level == analytics.BudgetOK {
			continue
		}
		fmt.Printf("Budget %s: %s of %s spent (%s)\n", b.Category, b.Spent, b.Limit, b.Level)
	}
}
