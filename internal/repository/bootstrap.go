package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DROP-ML/MoneyBalance/internal/core"
	"github.com/DROP-ML/MoneyBalance/internal/docstore"
	"github.com/DROP-ML/MoneyBalance/internal/id"
	"github.com/DROP-ML/MoneyBalance/internal/log"
)

// Bootstrap seeds default categories and settings on first run. The
// persisted marker key gates reseeding: once present, Run never seeds
// again, even if every category is later deleted.
type Bootstrap struct {
	store      docstore.Store
	categories *CategoryRepository
	settings   *SettingsRepository
	ids        *id.Generator
	log        *log.Logger
}

func NewBootstrap(store docstore.Store, categories *CategoryRepository, settings *SettingsRepository, ids *id.Generator, logger *log.Logger) *Bootstrap {
	return &Bootstrap{
		store:      store,
		categories: categories,
		settings:   settings,
		ids:        ids,
		log:        logger.WithComponent(log.ComponentBootstrap),
	}
}

// Run performs first-run seeding. Idempotent: safe to call on every start.
func (b *Bootstrap) Run(ctx context.Context) error {
	_, ok, err := b.store.Get(ctx, KeyInitialized)
	if err != nil {
		return fmt.Errorf("read bootstrap marker: %w", err)
	}
	if ok {
		return nil
	}

	defaults := DefaultCategories(b.ids)
	if err := b.categories.ReplaceAll(ctx, defaults); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := b.settings.Save(ctx, core.DefaultSettings()); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	marker, _ := json.Marshal(true)
	if err := b.store.Set(ctx, KeyInitialized, marker); err != nil {
		return fmt.Errorf("write bootstrap marker: %w", err)
	}

	b.log.InfoContext(ctx, "Seeded default categories and settings",
		log.FieldOperation, log.OpSeed, log.FieldCount, len(defaults))
	return nil
}

// DefaultCategories returns the first-run category set: one income
// category and a standard expense taxonomy with default budget limits.
func DefaultCategories(ids *id.Generator) []core.Category {
	limit := func(units int64) core.Money { return core.Money{Cents: units * 100} }
	defaults := []core.Category{
		{Name: "Salary", Kind: core.Income, Color: "#4CAF50", Icon: "wallet"},
		{Name: "Food", Kind: core.Expense, Color: "#FF9800", Icon: "restaurant", BudgetLimit: limit(500)},
		{Name: "Transport", Kind: core.Expense, Color: "#2196F3", Icon: "bus", BudgetLimit: limit(150)},
		{Name: "Shopping", Kind: core.Expense, Color: "#E91E63", Icon: "cart", BudgetLimit: limit(300)},
		{Name: "Bills", Kind: core.Expense, Color: "#9C27B0", Icon: "receipt", BudgetLimit: limit(400)},
		{Name: "Entertainment", Kind: core.Expense, Color: "#00BCD4", Icon: "film", BudgetLimit: limit(100)},
		{Name: "Health", Kind: core.Expense, Color: "#F44336", Icon: "heart", BudgetLimit: limit(200)},
		{Name: "Other", Kind: core.Expense, Color: "#607D8B", Icon: "dots"},
	}
	for i := range defaults {
		defaults[i].ID = ids.Next()
	}
	return defaults
}
