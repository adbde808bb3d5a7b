// Package analytics computes derived views over already-loaded transaction
// and category snapshots. Every function is pure and deterministic given
// (transactions, categories, now, period); none of them touch storage.
package analytics

import (
	"sort"
	"time"

	"github.com/DROP-ML/MoneyBalance/internal/core"
)

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// DefaultColor is used for breakdown slices whose category name no longer
// matches any category.
const DefaultColor = "#9E9E9E"

// TrendMonths is the fixed length of the monthly trend series.
const TrendMonths = 6

// TopCategoryCount caps the "top categories" view.
const TopCategoryCount = 5

type (
	// Period selects the aggregation window for totals and breakdowns.
	Period string

	// Totals holds income and expense sums for a period window.
	Totals struct {
		Income  core.Money
		Expense core.Money
	}

	// CategoryShare is one slice of the expense breakdown.
	CategoryShare struct {
		Name       string
		Amount     core.Money
		Percentage float64
		Color      string
	}

	// TrendPoint is one month's income/expense pair in the trend series.
	TrendPoint struct {
		Year    int
		Month   time.Month
		Income  core.Money
		Expense core.Money
	}
)

func (p Period) Valid() bool {
	return p == PeriodWeek || p == PeriodMonth || p == PeriodYear
}

// Window returns the period's date window ending at now. Both bounds are
// inclusive: week is the trailing 7 days, month starts at the first day of
// the current calendar month, year at January 1.
func (p Period) Window(now time.Time) (start, end time.Time) {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), now
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now
	default: // month
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	}
}

func inWindow(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// Balance returns all-history income minus expense. The result is
// independent of transaction order and may be negative.
func Balance(transactions []core.Transaction) core.Money {
	var balance core.Money
	for _, t := range transactions {
		switch t.Kind {
		case core.Income:
			balance = balance.Add(t.Amount)
		case core.Expense:
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}

// PeriodTotals sums income and expense for transactions whose date falls
// inside the period window ending at now.
func PeriodTotals(transactions []core.Transaction, period Period, now time.Time) Totals {
	start, end := period.Window(now)
	var totals Totals
	for _, t := range transactions {
		if !inWindow(t.Date, start, end) {
			continue
		}
		switch t.Kind {
		case core.Income:
			totals.Income = totals.Income.Add(t.Amount)
		case core.Expense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}
	return totals
}

// CategoryBreakdown groups the period's expense transactions by category
// name, in first-encountered order, then sorts by amount descending.
// The sort is stable so equal amounts keep their encounter order, which
// makes repeated calls reproducible. Percentages are shares of the period
// expense total, 0 when the total is 0. Colors are joined by category name
// with DefaultColor on a miss.
func CategoryBreakdown(transactions []core.Transaction, categories []core.Category, period Period, now time.Time) []CategoryShare {
	start, end := period.Window(now)

	var (
		shares []CategoryShare
		index  = make(map[string]int)
		total  int64
	)
	for _, t := range transactions {
		if t.Kind != core.Expense || !inWindow(t.Date, start, end) {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(shares)
			index[t.Category] = i
			shares = append(shares, CategoryShare{Name: t.Category})
		}
		shares[i].Amount = shares[i].Amount.Add(t.Amount)
		total += t.Amount.Cents
	}

	for i := range shares {
		if total > 0 {
			shares[i].Percentage = float64(shares[i].Amount.Cents) / float64(total) * 100
		}
		if c, ok := core.LookupCategory(categories, shares[i].Name); ok {
			shares[i].Color = c.Color
		} else {
			shares[i].Color = DefaultColor
		}
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.Cents > shares[j].Amount.Cents
	})
	return shares
}

// TopCategories returns the first TopCategoryCount entries of the sorted
// breakdown.
func TopCategories(transactions []core.Transaction, categories []core.Category, period Period, now time.Time) []CategoryShare {
	shares := CategoryBreakdown(transactions, categories, period, now)
	if len(shares) > TopCategoryCount {
		shares = shares[:TopCategoryCount]
	}
	return shares
}

// MonthlyTrend returns exactly TrendMonths points, oldest first, ending at
// the month containing now. Months are matched on strict calendar
// boundaries over the full history; months without transactions yield zero
// sums rather than omitted points.
func MonthlyTrend(transactions []core.Transaction, now time.Time) []TrendPoint {
	// Anchor on day 1 so AddDate month arithmetic never normalizes across
	// a month boundary.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	points := make([]TrendPoint, TrendMonths)
	for i := 0; i < TrendMonths; i++ {
		m := anchor.AddDate(0, i-TrendMonths+1, 0)
		points[i] = TrendPoint{Year: m.Year(), Month: m.Month()}
	}

	for _, t := range transactions {
		for i := range points {
			if t.Date.Year() != points[i].Year || t.Date.Month() != points[i].Month {
				continue
			}
			switch t.Kind {
			case core.Income:
				points[i].Income = points[i].Income.Add(t.Amount)
			case core.Expense:
				points[i].Expense = points[i].Expense.Add(t.Amount)
			}
			break
		}
	}
	return points
}
