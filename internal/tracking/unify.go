package tracking

import (
	"sort"
	"time"
)

// Source schema tags for a unified row.
const (
	SourceCurrent = "current"
	SourceLegacy  = "legacy"
)

// UnifiedOrder is one order in display shape, regardless of which schema
// produced it. Missing fields stay nil/empty; the derivation pipeline
// handles absence everywhere.
type UnifiedOrder struct {
	ID     uint   `json:"id"`
	Code   string `json:"code"`
	Source string `json:"source"`

	ClientName         string `json:"client_name"`
	RepresentativeName string `json:"representative_name"`
	CoordinatorName    string `json:"coordinator_name"`

	IntakeDate               *time.Time `json:"intake_date"`
	PlanningDate             *time.Time `json:"planning_date"`
	VerificationDate         *time.Time `json:"verification_date"`
	VerificationResolvedDate *time.Time `json:"verification_resolved_date"`
	ReleaseDate              *time.Time `json:"release_date"`
	ResultDeliveryDate       *time.Time `json:"result_delivery_date"`
	ResultReceiptDate        *time.Time `json:"result_receipt_date"`
	BillingDate              *time.Time `json:"billing_date"`

	VerificationSLA string `json:"verification_sla"`
	ReleaseSLA      string `json:"release_sla"`

	SampleCount         int `json:"sample_count"`
	VerifiedSampleCount int `json:"verified_sample_count"`

	InvoiceNumber string  `json:"invoice_number"`
	InvoiceAmount float64 `json:"invoice_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StageDate resolves a logical stage field name to its value.
func (o *UnifiedOrder) StageDate(field string) *time.Time {
	switch field {
	case FieldIntake:
		return o.IntakeDate
	case FieldPlanning:
		return o.PlanningDate
	case FieldVerification:
		return o.VerificationDate
	case FieldRelease:
		return o.ReleaseDate
	case FieldResultDelivery:
		return o.ResultDeliveryDate
	case FieldResultReceipt:
		return o.ResultReceiptDate
	case FieldBilling:
		return o.BillingDate
	}
	return nil
}

// SLATag resolves a logical SLA tag field name to its stored value.
func (o *UnifiedOrder) SLATag(field string) string {
	switch field {
	case TagVerificationSLA:
		return o.VerificationSLA
	case TagReleaseSLA:
		return o.ReleaseSLA
	}
	return ""
}

// Milestones returns the order's stage dates in most-final-first order for
// the current-stage scan.
func (o *UnifiedOrder) Milestones() []Milestone {
	return []Milestone{
		{Label: StageBilled, Date: o.BillingDate},
		{Label: StageResultDelivered, Date: o.ResultDeliveryDate},
		{Label: StageReleased, Date: o.ReleaseDate},
		{Label: StageVerified, Date: o.VerificationDate},
		{Label: StagePlanned, Date: o.PlanningDate},
		{Label: StageReceived, Date: o.IntakeDate},
	}
}

// Reconcile merges the two schema collections into one. All current rows
// are kept; a legacy row survives only when its code is absent or not
// already covered by a current row. The result is sorted by creation time
// descending, rows without a timestamp last. Total and failure-free.
func Reconcile(current, legacy []UnifiedOrder) []UnifiedOrder {
	currentCodes := make(map[string]struct{}, len(current))
	for _, o := range current {
		if IsSetString(o.Code) {
			currentCodes[o.Code] = struct{}{}
		}
	}

	merged := make([]UnifiedOrder, 0, len(current)+len(legacy))
	merged = append(merged, current...)
	for _, o := range legacy {
		if !IsSetString(o.Code) {
			merged = append(merged, o)
			continue
		}
		if _, dup := currentCodes[o.Code]; !dup {
			merged = append(merged, o)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged
}
