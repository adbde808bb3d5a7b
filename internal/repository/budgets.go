package repository

import (
	"context"
	"time"

	"github.com/DROP-ML/MoneyBalance/internal/core"
	"github.com/DROP-ML/MoneyBalance/internal/docstore"
	"github.com/DROP-ML/MoneyBalance/internal/id"
	"github.com/DROP-ML/MoneyBalance/internal/log"
)

// BudgetRepository manages the budget collection. CategoryID is a weak
// reference: deleting a category leaves its budgets behind.
type BudgetRepository struct {
	collection[core.Budget]
	ids *id.Generator
}

// BudgetDraft is a budget without an id.
type BudgetDraft struct {
	CategoryID string
	Amount     core.Money
	Period     core.BudgetPeriod
	StartDate  time.Time
	Notify     bool
}

// BudgetPatch carries partial updates; nil fields are left untouched.
type BudgetPatch struct {
	CategoryID *string
	Amount     *core.Money
	Period     *core.BudgetPeriod
	StartDate  *time.Time
	Notify     *bool
}

func NewBudgetRepository(store docstore.Store, ids *id.Generator, logger *log.Logger) *BudgetRepository {
	return &BudgetRepository{
		collection: newCollection(store, KeyBudgets,
			func(b core.Budget) string { return b.ID }, logger),
		ids: ids,
	}
}

func (r *BudgetRepository) Create(ctx context.Context, draft BudgetDraft) (core.Budget, error) {
	items, err := r.load(ctx)
	if err != nil {
		return core.Budget{}, err
	}

	b := core.Budget{
		ID:         r.ids.Next(),
		CategoryID: draft.CategoryID,
		Amount:     draft.Amount,
		Period:     draft.Period,
		StartDate:  draft.StartDate,
		Notify:     draft.Notify,
	}

	if err := r.save(ctx, append(items, b)); err != nil {
		return core.Budget{}, err
	}
	r.log.DebugContext(ctx, "Created budget",
		log.FieldOperation, log.OpCreate, log.FieldEntityID, b.ID)
	return b, nil
}

func (r *BudgetRepository) Update(ctx context.Context, entityID string, patch BudgetPatch) error {
	items, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != entityID {
			continue
		}
		if patch.CategoryID != nil {
			items[i].CategoryID = *patch.CategoryID
		}
		if patch.Amount != nil {
			items[i].Amount = *patch.Amount
		}
		if patch.Period != nil {
			items[i].Period = *patch.Period
		}
		if patch.StartDate != nil {
			items[i].StartDate = *patch.StartDate
		}
		if patch.Notify != nil {
			items[i].Notify = *patch.Notify
		}
		return r.save(ctx, items)
	}

	r.log.DebugContext(ctx, "Update target not found, skipping",
		log.FieldOperation, log.OpUpdate, log.FieldEntityID, entityID)
	return nil
}
