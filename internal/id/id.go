// Package id produces opaque unique identifiers for stored entities.
package id

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator combines a millisecond time component with a random component
// so that ids are unique within a process and sort roughly by creation
// time. Consumers treat ids as opaque and never parse them.
type Generator struct {
	now func() time.Time
}

// NewGenerator returns a Generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock returns a Generator with an injected clock, for
// tests. The random component still guarantees uniqueness under a frozen
// clock.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns a fresh identifier, e.g. "1756345200000-9f86d081c3a4".
func (g *Generator) Next() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s", g.now().UnixMilli(), random)
}
