package id

import (
	"strings"
	"testing"
	"time"
)

func TestNextUnique(t *testing.T) {
	g := NewGenerator()
	const n = 10000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		next := g.Next()
		if _, dup := seen[next]; dup {
			t.Fatalf("duplicate id after %d calls: %s", i, next)
		}
		seen[next] = struct{}{}
	}
}

func TestNextUniqueUnderFrozenClock(t *testing.T) {
	frozen := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	g := NewGeneratorWithClock(func() time.Time { return frozen })

	a, b := g.Next(), g.Next()
	if a == b {
		t.Fatalf("expected distinct ids under a frozen clock, got %s twice", a)
	}
	if !strings.HasPrefix(a, "1749988800000-") {
		t.Fatalf("expected millisecond prefix, got %s", a)
	}
}
