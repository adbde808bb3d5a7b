package repository

import (
	"context"
	"testing"

	"github.com/DROP-ML/MoneyBalance/internal/core"
)

func TestBootstrapSeedsOnFirstRun(t *testing.T) {
	repos, store := testRepos(t)
	ctx := context.Background()

	if err := repos.Bootstrap.Run(ctx); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	categories := repos.Categories.List(ctx)
	if len(categories) == 0 {
		t.Fatalf("expected seeded categories")
	}

	var incomes, expenses int
	for _, c := range categories {
		if c.ID == "" {
			t.Fatalf("seeded category without id: %+v", c)
		}
		switch c.Kind {
		case core.Income:
			incomes++
		case core.Expense:
			expenses++
		}
	}
	if incomes < 1 || expenses < 2 {
		t.Fatalf("expected at least one income and several expense categories, got %d/%d", incomes, expenses)
	}

	settings, ok := repos.Settings.Get(ctx)
	if !ok {
		t.Fatalf("expected seeded settings")
	}
	if settings.Currency == "" || settings.DateFormat == "" {
		t.Fatalf("incomplete default settings: %+v", settings)
	}

	if _, ok, _ := store.Get(ctx, KeyInitialized); !ok {
		t.Fatalf("expected bootstrap marker")
	}
}

func TestBootstrapNeverReseeds(t *testing.T) {
	repos, _ := testRepos(t)
	ctx := context.Background()

	if err := repos.Bootstrap.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// Empty the category set entirely; the marker must still gate reseeding.
	if err := repos.Categories.ReplaceAll(ctx, nil); err != nil {
		t.Fatalf("clear categories: %v", err)
	}

	if err := repos.Bootstrap.Run(ctx); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if got := repos.Categories.List(ctx); len(got) != 0 {
		t.Fatalf("bootstrap reseeded after marker was written: %d categories", len(got))
	}
}

func TestResetAllowsReseeding(t *testing.T) {
	repos, store := testRepos(t)
	ctx := context.Background()

	if err := repos.Bootstrap.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := repos.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, ok, _ := store.Get(ctx, KeyInitialized); ok {
		t.Fatalf("expected marker removed by reset")
	}
	if got := repos.Transactions.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty store after reset")
	}

	if err := repos.Bootstrap.Run(ctx); err != nil {
		t.Fatalf("run after reset: %v", err)
	}
	if got := repos.Categories.List(ctx); len(got) == 0 {
		t.Fatalf("expected categories reseeded after reset")
	}
}
