package tracking

import (
	"log"
	"time"
)

// Milestone is one candidate (label, date) pair for the current-stage scan.
// Callers supply milestones in most-final-first order: billing first,
// intake last.
type Milestone struct {
	Label string
	Date  *time.Time
}

// Aging is the derived age of an order: elapsed days since its most
// advanced set milestone, or since creation when none is set. Recomputed on
// every read; never persisted.
type Aging struct {
	Stage     string    `json:"stage"`
	Days      float64   `json:"days"`
	Reference time.Time `json:"reference"`
}

// IsOverdue compares the aging against a per-view threshold. The threshold
// is a caller parameter: the aggregate dashboard and the live monitor use
// different budgets.
func (a Aging) IsOverdue(thresholdDays float64) bool {
	return a.Days > thresholdDays
}

// CurrentStage returns the label of the first set milestone in
// most-final-first order, falling back to the received label. Milestones may
// be set in any temporal order by the write path; this is a best-effort
// interpretation, not a state-machine walk.
func CurrentStage(milestones []Milestone) string {
	for _, m := range milestones {
		if IsSet(m.Date) {
			return m.Label
		}
	}
	return StageReceived
}

// ComputeAging derives the order's aging at now. The reference point is the
// first set milestone in most-final-first order, or createdAt when no
// milestone is set. Fractional days are retained. An order with neither a
// creation timestamp nor any milestone ages zero.
func ComputeAging(milestones []Milestone, createdAt *time.Time, now time.Time) Aging {
	aging := Aging{Stage: StageReceived}
	for _, m := range milestones {
		if IsSet(m.Date) {
			aging.Stage = m.Label
			aging.Reference = *m.Date
			break
		}
	}
	if aging.Reference.IsZero() {
		if !IsSet(createdAt) {
			log.Printf("tracking: order has no creation timestamp and no milestones, aging defaults to 0")
			return aging
		}
		aging.Reference = *createdAt
	}
	aging.Days = float64(now.UnixMilli()-aging.Reference.UnixMilli()) / msPerDay
	return aging
}
