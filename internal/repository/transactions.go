package repository

import (
	"context"
	"time"

	"github.com/DROP-ML/MoneyBalance/internal/core"
	"github.com/DROP-ML/MoneyBalance/internal/docstore"
	"github.com/DROP-ML/MoneyBalance/internal/id"
	"github.com/DROP-ML/MoneyBalance/internal/log"
)

// TransactionRepository manages the transaction collection. The repository
// does not validate drafts beyond shape: amount > 0 is the caller's
// contract, not enforced here.
type TransactionRepository struct {
	collection[core.Transaction]
	ids *id.Generator
	now func() time.Time
}

// TransactionDraft is a transaction without id or timestamps.
type TransactionDraft struct {
	Kind        core.TransactionKind
	Amount      core.Money
	Category    string
	Description string
	Notes       string
	Tags        []string
	Date        time.Time
}

// TransactionPatch carries partial updates; nil fields are left untouched.
type TransactionPatch struct {
	Kind        *core.TransactionKind
	Amount      *core.Money
	Category    *string
	Description *string
	Notes       *string
	Tags        *[]string
	Date        *time.Time
}

func NewTransactionRepository(store docstore.Store, ids *id.Generator, logger *log.Logger) *TransactionRepository {
	return &TransactionRepository{
		collection: newCollection(store, KeyTransactions,
			func(t core.Transaction) string { return t.ID }, logger),
		ids: ids,
		now: time.Now,
	}
}

// Create appends a new transaction with a fresh id and timestamps and
// persists the whole collection. Returns the created transaction.
func (r *TransactionRepository) Create(ctx context.Context, draft TransactionDraft) (core.Transaction, error) {
	items, err := r.load(ctx)
	if err != nil {
		return core.Transaction{}, err
	}

	now := r.now()
	t := core.Transaction{
		ID:          r.ids.Next(),
		Kind:        draft.Kind,
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: draft.Description,
		Notes:       draft.Notes,
		Tags:        draft.Tags,
		Date:        draft.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.save(ctx, append(items, t)); err != nil {
		return core.Transaction{}, err
	}
	r.log.DebugContext(ctx, "Created transaction",
		log.FieldOperation, log.OpCreate, log.FieldEntityID, t.ID)
	return t, nil
}

// Update merges non-nil patch fields into the transaction with the given
// id and refreshes UpdatedAt. An unknown id is a silent no-op: the
// collection is left untouched and no error is returned. CreatedAt is
// never rewritten.
func (r *TransactionRepository) Update(ctx context.Context, entityID string, patch TransactionPatch) error {
	items, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != entityID {
			continue
		}
		if patch.Kind != nil {
			items[i].Kind = *patch.Kind
		}
		if patch.Amount != nil {
			items[i].Amount = *patch.Amount
		}
		if patch.Category != nil {
			items[i].Category = *patch.Category
		}
		if patch.Description != nil {
			items[i].Description = *patch.Description
		}
		if patch.Notes != nil {
			items[i].Notes = *patch.Notes
		}
		if patch.Tags != nil {
			items[i].Tags = *patch.Tags
		}
		if patch.Date != nil {
			items[i].Date = *patch.Date
		}
		items[i].UpdatedAt = r.now()
		return r.save(ctx, items)
	}

	r.log.DebugContext(ctx, "Update target not found, skipping",
		log.FieldOperation, log.OpUpdate, log.FieldEntityID, entityID)
	return nil
}
