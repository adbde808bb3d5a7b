package core

import (
	"errors"
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	good := Transaction{
		Kind:        Expense,
		Amount:      Money{Cents: 1250},
		Category:    "Food",
		Description: "groceries",
		Date:        date,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		tx   Transaction
		want error
	}{
		{"bad kind", Transaction{Kind: "transfer", Amount: Money{Cents: 1}, Category: "c", Description: "d", Date: date}, ErrInvalidKind},
		{"zero amount", Transaction{Kind: Expense, Amount: Money{}, Category: "c", Description: "d", Date: date}, ErrInvalidAmount},
		{"empty description", Transaction{Kind: Expense, Amount: Money{Cents: 1}, Category: "c", Description: "  ", Date: date}, ErrEmptyDescription},
		{"empty category", Transaction{Kind: Expense, Amount: Money{Cents: 1}, Category: "", Description: "d", Date: date}, ErrEmptyCategory},
	}
	for _, tc := range cases {
		err := tc.tx.Validate()
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	noDate := good
	noDate.Date = time.Time{}
	if err := noDate.Validate(); err == nil {
		t.Fatalf("expected error for zero date")
	}
}

func TestCategoryValidate(t *testing.T) {
	good := Category{Name: "Food", Kind: Expense, Color: "#FF9800"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	if err := (Category{Name: "", Kind: Expense}).Validate(); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName")
	}
	if err := (Category{Name: "x", Kind: "other"}).Validate(); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind")
	}
	if err := (Category{Name: "x", Kind: Income, BudgetLimit: Money{Cents: -1}}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount")
	}
}

func TestBudgetValidate(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	good := Budget{CategoryID: "cat-1", Amount: Money{Cents: 10000}, Period: Monthly, StartDate: start}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	if err := (Budget{Amount: Money{Cents: 1}, Period: "daily", StartDate: start}).Validate(); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod")
	}
	if err := (Budget{Amount: Money{}, Period: Weekly, StartDate: start}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount")
	}
}

func TestLookupCategory(t *testing.T) {
	categories := []Category{
		{ID: "1", Name: "Food", Color: "#AAA"},
		{ID: "2", Name: "Food", Color: "#BBB"}, // duplicate name allowed
		{ID: "3", Name: "Transport", Color: "#CCC"},
	}

	got, ok := LookupCategory(categories, "Food")
	if !ok || got.ID != "1" {
		t.Fatalf("expected first name match, got %+v ok=%v", got, ok)
	}

	if _, ok := LookupCategory(categories, "Renamed"); ok {
		t.Fatalf("expected miss for unknown name")
	}
}
