package tracking

import (
	"fmt"
	"time"
)

// StageStatus is the derived view of one stage on one order.
type StageStatus struct {
	Stage       string       `json:"stage"`
	Date        *time.Time   `json:"date"`
	DateDisplay string       `json:"date_display"`
	Transition  Transition   `json:"transition"`
	SLA         StatusResult `json:"sla"`
}

// AnnotatedOrder is a unified row plus everything derived from it for one
// render cycle: current stage, aging, and per-stage SLA statuses.
type AnnotatedOrder struct {
	UnifiedOrder
	CurrentStage string        `json:"current_stage"`
	Aging        Aging         `json:"aging"`
	Overdue      bool          `json:"overdue"`
	Stages       []StageStatus `json:"stages"`
}

// Annotate derives the display view of one order at now. For a completed
// stage the SLA comes from the upstream tag when the store carries one,
// otherwise from the measured transition; for a pending stage whose
// predecessor is set, the SLA is classified against the budgeted target
// date.
func Annotate(o UnifiedOrder, now time.Time, thresholdDays float64) AnnotatedOrder {
	milestones := o.Milestones()
	aging := ComputeAging(milestones, createdAtOrNil(o), now)

	catalog := Catalog()
	stages := make([]StageStatus, 0, len(catalog))
	for i, def := range catalog {
		date := o.StageDate(def.DateField)
		var prev *time.Time
		if i == 0 {
			prev = createdAtOrNil(o)
		} else {
			prev = o.StageDate(catalog[i-1].DateField)
		}
		transition := ClassifyTransition(prev, date, def.MaxDays)

		status := StageStatus{
			Stage:       def.Name,
			Date:        date,
			DateDisplay: FormatDate(date),
			Transition:  transition,
			SLA:         stageSLA(&o, def, prev, date, transition, now),
		}
		stages = append(stages, status)
	}

	return AnnotatedOrder{
		UnifiedOrder: o,
		CurrentStage: CurrentStage(milestones),
		Aging:        aging,
		Overdue:      aging.IsOverdue(thresholdDays),
		Stages:       stages,
	}
}

func stageSLA(o *UnifiedOrder, def StageDefinition, prev, date *time.Time, transition Transition, now time.Time) StatusResult {
	if def.SLAField != "" && IsSetString(o.SLATag(def.SLAField)) {
		return StatusFromTag(o.SLATag(def.SLAField))
	}
	if IsSet(date) {
		if transition.Days == nil {
			return StatusResult{Status: StatusUnknown, Label: DatePlaceholder}
		}
		if transition.Overdue {
			return StatusResult{Status: StatusOverdue, Label: fmt.Sprintf("+%dd", *transition.Days-*def.MaxDays)}
		}
		return StatusResult{Status: StatusOnTime, Label: fmt.Sprintf("%dd", *transition.Days)}
	}
	// Stage still pending: classify the budgeted target date against now.
	if IsSet(prev) && def.MaxDays != nil {
		target := prev.AddDate(0, 0, *def.MaxDays)
		return ClassifyTarget(&target, now)
	}
	return StatusResult{Status: StatusUnknown, Label: DatePlaceholder}
}

func createdAtOrNil(o UnifiedOrder) *time.Time {
	if o.CreatedAt.IsZero() {
		return nil
	}
	t := o.CreatedAt
	return &t
}
