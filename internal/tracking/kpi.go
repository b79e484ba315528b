package tracking

import (
	"math"
	"sort"
	"time"
)

// StageCount is one bar of the pending-by-stage breakdown, in catalog order.
type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// MonthlyBucket aggregates billed orders by calendar month, ascending.
type MonthlyBucket struct {
	Month  string  `json:"month"`
	Orders int     `json:"orders"`
	Amount float64 `json:"amount"`
}

// Summary is the dashboard KPI reduction over one unified collection.
// Recomputed from the current rows on every request, never persisted.
type Summary struct {
	TotalOrders       int             `json:"total_orders"`
	ActiveOrders      int             `json:"active_orders"`
	ClosedOrders      int             `json:"closed_orders"`
	ReadyToInvoice    int             `json:"ready_to_invoice"`
	CompletedToday    int             `json:"completed_today"`
	OverdueOrders     int             `json:"overdue_orders"`
	PendingByStage    []StageCount    `json:"pending_by_stage"`
	OnTimeRate        float64         `json:"on_time_rate"`
	AvgTurnaroundDays float64         `json:"avg_turnaround_days"`
	Revenue           []MonthlyBucket `json:"revenue"`
}

// Percentage computes n/d as a percentage rounded to one decimal. A zero
// denominator yields 0, never NaN.
func Percentage(n, d int) float64 {
	if d <= 0 {
		return 0
	}
	return round1(float64(n) / float64(d) * 100)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// Summarize reduces an annotated collection into the dashboard KPIs.
func Summarize(rows []AnnotatedOrder, now time.Time) Summary {
	s := Summary{}
	s.TotalOrders = len(rows)

	pending := make(map[string]int)
	today := now.Format("2006-01-02")
	onTime := 0
	turnaroundSum := 0
	turnaroundCount := 0

	for i := range rows {
		row := &rows[i]
		billed := IsSet(row.BillingDate)
		if billed {
			s.ClosedOrders++
		} else {
			s.ActiveOrders++
			pending[row.CurrentStage]++
		}
		if IsSet(row.ResultDeliveryDate) && !billed {
			s.ReadyToInvoice++
		}
		// Calendar-day comparison, deliberately ignoring time of day.
		if billed && row.BillingDate.Format("2006-01-02") == today {
			s.CompletedToday++
		}
		if row.Overdue {
			s.OverdueOrders++
		}
		if billed {
			if !anyStageOverdue(row.Stages) {
				onTime++
			}
			if d := DaysBetween(createdAtOrNil(row.UnifiedOrder), row.BillingDate); d != nil {
				turnaroundSum += *d
				turnaroundCount++
			}
		}
	}

	for _, def := range Catalog() {
		s.PendingByStage = append(s.PendingByStage, StageCount{Stage: def.Name, Count: pending[def.Name]})
	}
	s.OnTimeRate = Percentage(onTime, s.ClosedOrders)
	if turnaroundCount > 0 {
		s.AvgTurnaroundDays = round1(float64(turnaroundSum) / float64(turnaroundCount))
	}

	unified := make([]UnifiedOrder, len(rows))
	for i := range rows {
		unified[i] = rows[i].UnifiedOrder
	}
	s.Revenue = MonthlyRevenue(unified)
	return s
}

func anyStageOverdue(stages []StageStatus) bool {
	for _, st := range stages {
		if st.Transition.Overdue {
			return true
		}
	}
	return false
}

// MonthlyRevenue buckets billed orders by the year-month of the billing
// date, chronologically ascending for chart consumption.
func MonthlyRevenue(rows []UnifiedOrder) []MonthlyBucket {
	byMonth := make(map[string]*MonthlyBucket)
	for i := range rows {
		row := &rows[i]
		if !IsSet(row.BillingDate) {
			continue
		}
		month := row.BillingDate.Format("2006-01")
		b, ok := byMonth[month]
		if !ok {
			b = &MonthlyBucket{Month: month}
			byMonth[month] = b
		}
		b.Orders++
		b.Amount += row.InvoiceAmount
	}

	buckets := make([]MonthlyBucket, 0, len(byMonth))
	for _, b := range byMonth {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}
