package tracking

import (
	"fmt"
	"strings"
	"time"
)

// Status is the SLA compliance state of a stage relative to its target.
type Status string

const (
	StatusOnTime   Status = "on_time"
	StatusDueToday Status = "due_today"
	StatusOverdue  Status = "overdue"
	StatusUnknown  Status = "unknown"
)

// StatusResult pairs a compliance state with its display label
// (e.g. "-2d", "D0", "+3d").
type StatusResult struct {
	Status Status `json:"status"`
	Label  string `json:"label"`
}

// ClassifyTarget classifies a target date against now. Days are counted from
// target to now, so a negative count means the target is still in the
// future.
func ClassifyTarget(target *time.Time, now time.Time) StatusResult {
	d := DaysBetween(target, &now)
	if d == nil {
		return StatusResult{Status: StatusUnknown, Label: DatePlaceholder}
	}
	switch {
	case *d < 0:
		return StatusResult{Status: StatusOnTime, Label: fmt.Sprintf("%dd", *d)}
	case *d == 0:
		return StatusResult{Status: StatusDueToday, Label: "D0"}
	default:
		return StatusResult{Status: StatusOverdue, Label: fmt.Sprintf("+%dd", *d)}
	}
}

// StatusFromTag wraps an upstream-precomputed SLA tag so downstream display
// code handles stored and derived statuses uniformly.
func StatusFromTag(tag string) StatusResult {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	switch normalized {
	case "on_time", "on-time", "ok":
		return StatusResult{Status: StatusOnTime, Label: tag}
	case "due_today", "due-today", "due":
		return StatusResult{Status: StatusDueToday, Label: "D0"}
	case "overdue", "late":
		return StatusResult{Status: StatusOverdue, Label: tag}
	default:
		return StatusResult{Status: StatusUnknown, Label: tag}
	}
}

// Transition is the evaluated SLA of one stage transition. Days is nil when
// either endpoint is missing, in which case a breach cannot be determined
// and Overdue stays false.
type Transition struct {
	Days    *int `json:"days"`
	Overdue bool `json:"overdue"`
}

// ClassifyTransition measures the previous→current milestone transition
// against its day budget. Exactly meeting the budget is not a breach.
func ClassifyTransition(prev, curr *time.Time, maxDays *int) Transition {
	d := DaysBetween(prev, curr)
	t := Transition{Days: d}
	if d != nil && maxDays != nil && *d > *maxDays {
		t.Overdue = true
	}
	return t
}
