package repository

import (
	"context"
	"time"

	"github.com/DROP-ML/MoneyBalance/internal/core"
	"github.com/DROP-ML/MoneyBalance/internal/docstore"
	"github.com/DROP-ML/MoneyBalance/internal/id"
	"github.com/DROP-ML/MoneyBalance/internal/log"
)

// NoteRepository manages the note collection. A note's TransactionID is a
// weak reference: deleting the transaction leaves the note (and its
// dangling reference) in place.
type NoteRepository struct {
	collection[core.Note]
	ids *id.Generator
	now func() time.Time
}

// NoteDraft is a note without id or timestamps.
type NoteDraft struct {
	Title         string
	Content       string
	Tags          []string
	Attachments   []string
	TransactionID string
}

// NotePatch carries partial updates; nil fields are left untouched.
type NotePatch struct {
	Title         *string
	Content       *string
	Tags          *[]string
	Attachments   *[]string
	TransactionID *string
}

func NewNoteRepository(store docstore.Store, ids *id.Generator, logger *log.Logger) *NoteRepository {
	return &NoteRepository{
		collection: newCollection(store, KeyNotes,
			func(n core.Note) string { return n.ID }, logger),
		ids: ids,
		now: time.Now,
	}
}

func (r *NoteRepository) Create(ctx context.Context, draft NoteDraft) (core.Note, error) {
	items, err := r.load(ctx)
	if err != nil {
		return core.Note{}, err
	}

	now := r.now()
	n := core.Note{
		ID:            r.ids.Next(),
		Title:         draft.Title,
		Content:       draft.Content,
		Tags:          draft.Tags,
		Attachments:   draft.Attachments,
		TransactionID: draft.TransactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := r.save(ctx, append(items, n)); err != nil {
		return core.Note{}, err
	}
	r.log.DebugContext(ctx, "Created note",
		log.FieldOperation, log.OpCreate, log.FieldEntityID, n.ID)
	return n, nil
}

func (r *NoteRepository) Update(ctx context.Context, entityID string, patch NotePatch) error {
	items, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != entityID {
			continue
		}
		if patch.Title != nil {
			items[i].Title = *patch.Title
		}
		if patch.Content != nil {
			items[i].Content = *patch.Content
		}
		if patch.Tags != nil {
			items[i].Tags = *patch.Tags
		}
		if patch.Attachments != nil {
			items[i].Attachments = *patch.Attachments
		}
		if patch.TransactionID != nil {
			items[i].TransactionID = *patch.TransactionID
		}
		items[i].UpdatedAt = r.now()
		return r.save(ctx, items)
	}

	r.log.DebugContext(ctx, "Update target not found, skipping",
		log.FieldOperation, log.OpUpdate, log.FieldEntityID, entityID)
	return nil
}
