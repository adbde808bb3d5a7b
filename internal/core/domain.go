package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

const (
	Weekly  BudgetPeriod = "weekly"
	Monthly BudgetPeriod = "monthly"
)

type (
	TransactionKind string

	BudgetPeriod string

	// Transaction is a single income or expense record. Category is a
	// category name, not an id: transactions and categories are joined by
	// string equality (see LookupCategory).
	Transaction struct {
		ID          string          `json:"id"`
		Kind        TransactionKind `json:"kind"`
		Amount      Money           `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Notes       string          `json:"notes"`
		Tags        []string        `json:"tags,omitempty"`
		Date        time.Time       `json:"date"`
		CreatedAt   time.Time       `json:"created_at"`
		UpdatedAt   time.Time       `json:"updated_at"`
	}

	// Category groups transactions by name. Name uniqueness is not
	// enforced; renaming a category orphans its historical transactions.
	Category struct {
		ID          string          `json:"id"`
		Name        string          `json:"name"`
		Kind        TransactionKind `json:"kind"`
		Color       string          `json:"color"`
		Icon        string          `json:"icon"`
		BudgetLimit Money           `json:"budget_limit"` // 0 = no budget
	}

	// Note is free-form text optionally attached to a transaction.
	// TransactionID is a weak reference: it may point at a transaction
	// that no longer exists.
	Note struct {
		ID            string    `json:"id"`
		Title         string    `json:"title"`
		Content       string    `json:"content"`
		Tags          []string  `json:"tags,omitempty"`
		Attachments   []string  `json:"attachments,omitempty"`
		TransactionID string    `json:"transaction_id,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
		UpdatedAt     time.Time `json:"updated_at"`
	}

	// Budget caps spending for a category over a period. CategoryID is a
	// weak reference into the category collection.
	Budget struct {
		ID         string       `json:"id"`
		CategoryID string       `json:"category_id"`
		Amount     Money        `json:"amount"`
		Period     BudgetPeriod `json:"period"`
		StartDate  time.Time    `json:"start_date"`
		Notify     bool         `json:"notify"`
	}

	// AppSettings is the singleton preferences record. Exactly one
	// instance exists per store; it has no id.
	AppSettings struct {
		Currency            string `json:"currency"`
		DateFormat          string `json:"date_format"`
		Theme               string `json:"theme"`
		NotifyBudgetAlerts  bool   `json:"notify_budget_alerts"`
		NotifyDailyReminder bool   `json:"notify_daily_reminder"`
		NotifyWeeklyReport  bool   `json:"notify_weekly_report"`
	}
)

var (
	ErrInvalidKind      = errors.New("invalid transaction kind")
	ErrInvalidPeriod    = errors.New("invalid budget period")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptyName        = errors.New("empty name")
)

func (k TransactionKind) Valid() bool {
	return k == Income || k == Expense
}

func (p BudgetPeriod) Valid() bool {
	return p == Weekly || p == Monthly
}

// Validate checks caller-side invariants. The repository layer accepts any
// transaction; validation is the form layer's responsibility.
func (t Transaction) Validate() error {
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if t.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !c.Kind.Valid() {
		return ErrInvalidKind
	}
	if c.BudgetLimit.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (b Budget) Validate() error {
	if !b.Period.Valid() {
		return ErrInvalidPeriod
	}
	if b.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	if b.StartDate.IsZero() {
		return errors.New("start date cannot be zero")
	}
	return nil
}

// LookupCategory resolves a transaction's category name against the
// category collection. The first name match wins; ok reports whether any
// category matched. Renames silently orphan historical transactions;
// callers fall back to a default color on miss.
func LookupCategory(categories []Category, name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// DefaultSettings returns the AppSettings record seeded on first run.
func DefaultSettings() AppSettings {
	return AppSettings{
		Currency:            "USD",
		DateFormat:          "2006-01-02",
		Theme:               "system",
		NotifyBudgetAlerts:  true,
		NotifyDailyReminder: false,
		NotifyWeeklyReport:  true,
	}
}
