package repository

import (
	"context"

	"github.com/DROP-ML/MoneyBalance/internal/core"
	"github.com/DROP-ML/MoneyBalance/internal/docstore"
	"github.com/DROP-ML/MoneyBalance/internal/id"
	"github.com/DROP-ML/MoneyBalance/internal/log"
)

// CategoryRepository manages the category collection. Name uniqueness is
// not enforced: two categories may share a name, with ambiguous effects on
// the name-based transaction join. Inherited behavior, kept as is.
type CategoryRepository struct {
	collection[core.Category]
	ids *id.Generator
}

// CategoryDraft is a category without an id.
type CategoryDraft struct {
	Name        string
	Kind        core.TransactionKind
	Color       string
	Icon        string
	BudgetLimit core.Money
}

// CategoryPatch carries partial updates; nil fields are left untouched.
type CategoryPatch struct {
	Name        *string
	Kind        *core.TransactionKind
	Color       *string
	Icon        *string
	BudgetLimit *core.Money
}

func NewCategoryRepository(store docstore.Store, ids *id.Generator, logger *log.Logger) *CategoryRepository {
	return &CategoryRepository{
		collection: newCollection(store, KeyCategories,
			func(c core.Category) string { return c.ID }, logger),
		ids: ids,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, draft CategoryDraft) (core.Category, error) {
	items, err := r.load(ctx)
	if err != nil {
		return core.Category{}, err
	}

	c := core.Category{
		ID:          r.ids.Next(),
		Name:        draft.Name,
		Kind:        draft.Kind,
		Color:       draft.Color,
		Icon:        draft.Icon,
		BudgetLimit: draft.BudgetLimit,
	}

	if err := r.save(ctx, append(items, c)); err != nil {
		return core.Category{}, err
	}
	r.log.DebugContext(ctx, "Created category",
		log.FieldOperation, log.OpCreate, log.FieldEntityID, c.ID)
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, entityID string, patch CategoryPatch) error {
	items, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != entityID {
			continue
		}
		if patch.Name != nil {
			items[i].Name = *patch.Name
		}
		if patch.Kind != nil {
			items[i].Kind = *patch.Kind
		}
		if patch.Color != nil {
			items[i].Color = *patch.Color
		}
		if patch.Icon != nil {
			items[i].Icon = *patch.Icon
		}
		if patch.BudgetLimit != nil {
			items[i].BudgetLimit = *patch.BudgetLimit
		}
		return r.save(ctx, items)
	}

	r.log.DebugContext(ctx, "Update target not found, skipping",
		log.FieldOperation, log.OpUpdate, log.FieldEntityID, entityID)
	return nil
}
