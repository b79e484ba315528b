package services

import (
	"fmt"
	"time"

	"lab_dashboard/internal/repository"
	"lab_dashboard/internal/tracking"
)

// Monitor alert levels for the live view.
const (
	MonitorCritical = "critical"
	MonitorWarning  = "warning"
	MonitorOK       = "ok"
)

// MonitorRow is one active order in the live-monitoring view, leveled
// against the monitor's own (tighter) day thresholds.
type MonitorRow struct {
	Order tracking.AnnotatedOrder `json:"order"`
	Level string                  `json:"level"`
}

// SummaryCache caches computed dashboard summaries per scope.
type SummaryCache interface {
	GetSummary(key string) (*tracking.Summary, error)
	SetSummary(key string, summary *tracking.Summary, ttl time.Duration) error
	InvalidateSummaries() error
}

type DashboardService interface {
	GetOrders(scope Scope, overdueThresholdDays float64) ([]tracking.AnnotatedOrder, error)
	GetSummary(scope Scope, overdueThresholdDays float64) (*tracking.Summary, error)
	GetMonthlyRevenue(scope Scope) ([]tracking.MonthlyBucket, error)
	GetMonitor(scope Scope, criticalDays, warningDays float64) ([]MonitorRow, error)
}

type dashboardService struct {
	orderRepo  repository.ServiceOrderRepository
	legacyRepo repository.LegacyOrderRepository
	cache      SummaryCache
	cacheTTL   time.Duration
	now        func() time.Time
}

func NewDashboardService(
	orderRepo repository.ServiceOrderRepository,
	legacyRepo repository.LegacyOrderRepository,
	cache SummaryCache,
	cacheTTL time.Duration,
) DashboardService {
	return &dashboardService{
		orderRepo:  orderRepo,
		legacyRepo: legacyRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		now:        time.Now,
	}
}

// unifiedRows fetches both schema collections, maps them onto the unified
// shape, reconciles, and applies the scope filter. Both collections are
// fully materialized before reconciliation runs.
func (s *dashboardService) unifiedRows(scope Scope) ([]tracking.UnifiedOrder, error) {
	currentOrders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service orders: %w", err)
	}
	legacyOrders, err := s.legacyRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch legacy orders: %w", err)
	}

	current := make([]tracking.UnifiedOrder, 0, len(currentOrders))
	for _, o := range currentOrders {
		current = append(current, MapServiceOrder(o))
	}
	legacy := make([]tracking.UnifiedOrder, 0, len(legacyOrders))
	for _, o := range legacyOrders {
		legacy = append(legacy, MapLegacyOrder(o))
	}

	merged := tracking.Reconcile(current, legacy)

	scoped := make([]tracking.UnifiedOrder, 0, len(merged))
	for i := range merged {
		if scope.Allows(&merged[i]) {
			scoped = append(scoped, merged[i])
		}
	}
	return scoped, nil
}

func (s *dashboardService) GetOrders(scope Scope, overdueThresholdDays float64) ([]tracking.AnnotatedOrder, error) {
	rows, err := s.unifiedRows(scope)
	if err != nil {
		return nil, err
	}

	now := s.now()
	annotated := make([]tracking.AnnotatedOrder, 0, len(rows))
	for _, row := range rows {
		annotated = append(annotated, tracking.Annotate(row, now, overdueThresholdDays))
	}
	return annotated, nil
}

func (s *dashboardService) GetSummary(scope Scope, overdueThresholdDays float64) (*tracking.Summary, error) {
	key := fmt.Sprintf("%s:%.0f", scope.CacheKey(), overdueThresholdDays)
	if cached, err := s.cache.GetSummary(key); err == nil && cached != nil {
		return cached, nil
	}

	rows, err := s.GetOrders(scope, overdueThresholdDays)
	if err != nil {
		return nil, err
	}

	summary := tracking.Summarize(rows, s.now())
	if err := s.cache.SetSummary(key, &summary, s.cacheTTL); err != nil {
		// Cache failures never block the dashboard.
		return &summary, nil
	}
	return &summary, nil
}

func (s *dashboardService) GetMonthlyRevenue(scope Scope) ([]tracking.MonthlyBucket, error) {
	rows, err := s.unifiedRows(scope)
	if err != nil {
		return nil, err
	}
	return tracking.MonthlyRevenue(rows), nil
}

func (s *dashboardService) GetMonitor(scope Scope, criticalDays, warningDays float64) ([]MonitorRow, error) {
	rows, err := s.GetOrders(scope, criticalDays)
	if err != nil {
		return nil, err
	}

	monitor := make([]MonitorRow, 0, len(rows))
	for _, row := range rows {
		if tracking.IsSet(row.BillingDate) {
			continue // closed orders leave the monitor
		}
		level := MonitorOK
		switch {
		case row.Aging.IsOverdue(criticalDays):
			level = MonitorCritical
		case row.Aging.IsOverdue(warningDays):
			level = MonitorWarning
		}
		monitor = append(monitor, MonitorRow{Order: row, Level: level})
	}
	return monitor, nil
}
