package models

import "time"

// LegacyOrder is the old flat order table, kept read-only for history. Date
// columns are text: depending on when the row was imported they hold ISO
// dates, D/M/Y strings, or raw spreadsheet serials, so parsing happens at
// the mapping layer.
type LegacyOrder struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	OrderCode string `json:"order_code"`

	ClientName         string `json:"client_name"`
	RepresentativeName string `json:"representative_name"`
	CoordinatorName    string `json:"coordinator_name"`

	IntakeDate         string `json:"intake_date"`
	PlanningDate       string `json:"planning_date"`
	VerificationDate   string `json:"verification_date"`
	ReleaseDate        string `json:"release_date"`
	ResultDeliveryDate string `json:"result_delivery_date"`
	ResultReceiptDate  string `json:"result_receipt_date"`
	BillingDate        string `json:"billing_date"`

	SampleCount   int     `json:"sample_count"`
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceAmount float64 `json:"invoice_amount"`

	CreatedAt *time.Time `json:"created_at"`
}

func (LegacyOrder) TableName() string {
	return "legacy_orders"
}
