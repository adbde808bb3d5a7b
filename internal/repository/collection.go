// Package repository layers typed create/read/update/delete semantics over
// the document store. Every mutation is one read-modify-write cycle over
// the full collection: load, transform in memory, persist. There is no
// compare-and-swap: two concurrent mutations of the same kind resolve as
// last write wins, which is accepted single-user behavior.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DROP-ML/MoneyBalance/internal/docstore"
	"github.com/DROP-ML/MoneyBalance/internal/log"
)

// collection holds the store plumbing shared by every typed repository:
// JSON codec, degraded reads, whole-collection writes, delete by id.
type collection[T any] struct {
	store docstore.Store
	key   string
	idOf  func(T) string
	log   *log.Logger
}

func newCollection[T any](store docstore.Store, key string, idOf func(T) string, logger *log.Logger) collection[T] {
	return collection[T]{
		store: store,
		key:   key,
		idOf:  idOf,
		log:   logger.WithComponent(log.ComponentRepository).With(log.FieldKey, key),
	}
}

// load reads and decodes the full collection. An absent document is an
// empty collection; medium failures and corrupt payloads are errors for
// the caller to interpret.
func (c collection[T]) load(ctx context.Context) ([]T, error) {
	value, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if !ok {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	return items, nil
}

// save encodes and persists the full collection in one write.
func (c collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	value, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, value); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// List returns the current collection. Reads never fail: medium failures
// and corrupt documents degrade to an empty result so callers can always
// render something, with the failure logged for observability.
func (c collection[T]) List(ctx context.Context) []T {
	items, err := c.load(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "Degrading unreadable collection to empty",
			log.FieldOperation, log.OpList, log.FieldError, err.Error())
		return nil
	}
	return items
}

// Delete removes any entity with a matching id and persists the
// remainder. A missing id is not an error; the collection is persisted
// either way, so deleting twice leaves the same state as deleting once.
func (c collection[T]) Delete(ctx context.Context, entityID string) error {
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]T, 0, len(items))
	for _, item := range items {
		if c.idOf(item) == entityID {
			continue
		}
		remaining = append(remaining, item)
	}
	if err := c.save(ctx, remaining); err != nil {
		return err
	}
	c.log.DebugContext(ctx, "Deleted entity",
		log.FieldOperation, log.OpDelete, log.FieldEntityID, entityID)
	return nil
}

// ReplaceAll persists the given collection verbatim, bypassing merge
// logic. Bulk category edits use this.
func (c collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	if err := c.save(ctx, items); err != nil {
		return err
	}
	c.log.DebugContext(ctx, "Replaced collection",
		log.FieldOperation, log.OpReplace, log.FieldCount, len(items))
	return nil
}
