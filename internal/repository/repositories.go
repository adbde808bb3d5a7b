package repository

import (
	"context"
	"fmt"

	"github.com/DROP-ML/MoneyBalance/internal/docstore"
	"github.com/DROP-ML/MoneyBalance/internal/id"
	"github.com/DROP-ML/MoneyBalance/internal/log"
)

// Repositories bundles one repository per entity kind over a shared store
// and id generator.
type Repositories struct {
	Transactions *TransactionRepository
	Categories   *CategoryRepository
	Notes        *NoteRepository
	Budgets      *BudgetRepository
	Settings     *SettingsRepository
	Bootstrap    *Bootstrap

	store docstore.Store
}

// New wires all repositories over the given store.
func New(store docstore.Store, ids *id.Generator, logger *log.Logger) *Repositories {
	categories := NewCategoryRepository(store, ids, logger)
	settings := NewSettingsRepository(store, logger)
	return &Repositories{
		Transactions: NewTransactionRepository(store, ids, logger),
		Categories:   categories,
		Notes:        NewNoteRepository(store, ids, logger),
		Budgets:      NewBudgetRepository(store, ids, logger),
		Settings:     settings,
		Bootstrap:    NewBootstrap(store, categories, settings, ids, logger),
		store:        store,
	}
}

// Reset removes every document the repository layer owns, including the
// bootstrap marker, so the next Bootstrap.Run seeds from scratch. This
// backs the "erase all data" flow.
func (r *Repositories) Reset(ctx context.Context) error {
	if err := r.store.RemoveMany(ctx, AllKeys()); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	return nil
}
