// Package dashboard composes repositories and analytics into one overview
// snapshot per period selector.
package dashboard

import (
	"context"
	"time"

	"github.com/DROP-ML/MoneyBalance/internal/analytics"
	"github.com/DROP-ML/MoneyBalance/internal/cache"
	"github.com/DROP-ML/MoneyBalance/internal/core"
	"github.com/DROP-ML/MoneyBalance/internal/log"
	"github.com/DROP-ML/MoneyBalance/internal/repository"
)

// Overview is everything the reporting surface renders for one period.
type Overview struct {
	Period        analytics.Period
	Balance       core.Money
	Totals        analytics.Totals
	Breakdown     []analytics.CategoryShare
	TopCategories []analytics.CategoryShare
	Trend         []analytics.TrendPoint
	Budgets       []analytics.BudgetStatus
}

// Service loads transaction and category snapshots once per overview and
// runs every aggregate over them. Overviews are cached per period;
// mutating callers invalidate the cache.
type Service struct {
	repos *repository.Repositories
	cache *cache.TTL[Overview]
	now   func() time.Time
	log   *log.Logger
}

func NewService(repos *repository.Repositories, ttl time.Duration, logger *log.Logger) *Service {
	return &Service{
		repos: repos,
		cache: cache.NewTTL[Overview](ttl),
		now:   time.Now,
		log:   logger.WithComponent(log.ComponentDashboard),
	}
}

// Overview returns the aggregate view for the given period, from cache
// when fresh.
func (s *Service) Overview(ctx context.Context, period analytics.Period) Overview {
	key := string(period)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	transactions := s.repos.Transactions.List(ctx)
	categories := s.repos.Categories.List(ctx)
	now := s.now()

	overview := Overview{
		Period:        period,
		Balance:       analytics.Balance(transactions),
		Totals:        analytics.PeriodTotals(transactions, period, now),
		Breakdown:     analytics.CategoryBreakdown(transactions, categories, period, now),
		TopCategories: analytics.TopCategories(transactions, categories, period, now),
		Trend:         analytics.MonthlyTrend(transactions, now),
		Budgets:       analytics.CheckBudgets(transactions, categories, now),
	}

	s.cache.Put(key, overview)
	s.log.DebugContext(ctx, "Computed overview",
		log.FieldPeriod, key, log.FieldCount, len(transactions))
	return overview
}

// Invalidate drops cached overviews. Call after any repository mutation.
func (s *Service) Invalidate() {
	s.cache.Invalidate()
}
