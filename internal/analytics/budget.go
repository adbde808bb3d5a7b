package analytics

import (
	"time"

	"github.com/DROP-ML/MoneyBalance/internal/core"
)

const (
	BudgetOK       BudgetLevel = "ok"
	BudgetWarning  BudgetLevel = "warning"
	BudgetExceeded BudgetLevel = "exceeded"
)

// Thresholds as fractions of the budget limit.
const (
	warningRatio  = 0.8
	exceededRatio = 1.0
)

type (
	BudgetLevel string

	// BudgetStatus reports current-month spending against one category's
	// budget limit.
	BudgetStatus struct {
		Category string
		Spent    core.Money
		Limit    core.Money
		Ratio    float64
		Level    BudgetLevel
	}
)

// CheckBudgets evaluates every category with a budget limit against its
// current-calendar-month expense total, matched by category name. Statuses
// come back in category collection order; categories without a limit are
// skipped. No I/O happens here; the notification collaborator decides
// what to do with warnings.
func CheckBudgets(transactions []core.Transaction, categories []core.Category, now time.Time) []BudgetStatus {
	var statuses []BudgetStatus
	for _, c := range categories {
		if c.BudgetLimit.Cents <= 0 {
			continue
		}

		var spent core.Money
		for _, t := range transactions {
			if t.Kind != core.Expense || t.Category != c.Name {
				continue
			}
			if t.Date.Year() != now.Year() || t.Date.Month() != now.Month() {
				continue
			}
			spent = spent.Add(t.Amount)
		}

		ratio := float64(spent.Cents) / float64(c.BudgetLimit.Cents)
		level := BudgetOK
		switch {
		case ratio >= exceededRatio:
			level = BudgetExceeded
		case ratio >= warningRatio:
			level = BudgetWarning
		}

		statuses = append(statuses, BudgetStatus{
			Category: c.Name,
			Spent:    spent,
			Limit:    c.BudgetLimit,
			Ratio:    ratio,
			Level:    level,
		})
	}
	return statuses
}
