package cache

import (
	"testing"
	"time"
)

func TestTTLGetPut(t *testing.T) {
	c := NewTTL[int](time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	c.Put("month", 42)
	got, ok := c.Get("month")
	if !ok || got != 42 {
		t.Fatalf("expected hit with 42, got %d ok=%v", got, ok)
	}

	c.Put("month", 7)
	if got, _ := c.Get("month"); got != 7 {
		t.Fatalf("expected overwrite to 7, got %d", got)
	}
}

func TestTTLExpiry(t *testing.T) {
	c := NewTTL[string](10 * time.Millisecond)
	c.Put("k", "v")

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected entry to expire")
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired entry to be dropped on read, len=%d", c.Len())
	}
}

func TestTTLInvalidate(t *testing.T) {
	c := NewTTL[string](time.Minute)
	c.Put("a", "1")
	c.Put("b", "2")

	c.Invalidate()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after invalidate, len=%d", c.Len())
	}
}
