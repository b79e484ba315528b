package services

import (
	"lab_dashboard/internal/models"
	"lab_dashboard/internal/tracking"
)

// MapServiceOrder maps a current-schema row (split client/order) onto the
// unified shape. Pure field relabeling, no derivation.
func MapServiceOrder(o models.ServiceOrder) tracking.UnifiedOrder {
	return tracking.UnifiedOrder{
		ID:     o.ID,
		Code:   o.OrderCode,
		Source: tracking.SourceCurrent,

		ClientName:         o.Client.Name,
		RepresentativeName: o.Client.RepresentativeName,
		CoordinatorName:    o.Client.CoordinatorName,

		IntakeDate:               o.IntakeDate,
		PlanningDate:             o.PlanningDate,
		VerificationDate:         o.VerificationDate,
		VerificationResolvedDate: o.VerificationResolvedDate,
		ReleaseDate:              o.ReleaseDate,
		ResultDeliveryDate:       o.ResultDeliveryDate,
		ResultReceiptDate:        o.ResultReceiptDate,
		BillingDate:              o.BillingDate,

		VerificationSLA: o.VerificationSLA,
		ReleaseSLA:      o.ReleaseSLA,

		SampleCount:         o.SampleCount,
		VerifiedSampleCount: o.VerifiedSampleCount,

		InvoiceNumber: o.InvoiceNumber,
		InvoiceAmount: o.InvoiceAmount,

		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// MapLegacyOrder maps a legacy flat row onto the unified shape. Legacy date
// columns are text and may hold ISO dates, D/M/Y strings, or spreadsheet
// serials; unparseable values degrade to unset.
func MapLegacyOrder(o models.LegacyOrder) tracking.UnifiedOrder {
	u := tracking.UnifiedOrder{
		ID:     o.ID,
		Code:   o.OrderCode,
		Source: tracking.SourceLegacy,

		ClientName:         o.ClientName,
		RepresentativeName: o.RepresentativeName,
		CoordinatorName:    o.CoordinatorName,

		IntakeDate:         tracking.ParseDate(o.IntakeDate),
		PlanningDate:       tracking.ParseDate(o.PlanningDate),
		VerificationDate:   tracking.ParseDate(o.VerificationDate),
		ReleaseDate:        tracking.ParseDate(o.ReleaseDate),
		ResultDeliveryDate: tracking.ParseDate(o.ResultDeliveryDate),
		ResultReceiptDate:  tracking.ParseDate(o.ResultReceiptDate),
		BillingDate:        tracking.ParseDate(o.BillingDate),

		SampleCount:   o.SampleCount,
		InvoiceNumber: o.InvoiceNumber,
		InvoiceAmount: o.InvoiceAmount,
	}
	if o.CreatedAt != nil {
		u.CreatedAt = *o.CreatedAt
	}
	return u
}
