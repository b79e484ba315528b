package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is the normalized client record of the current schema.
type Client struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Name               string         `json:"name" gorm:"not null"`
	RepresentativeName string         `json:"representative_name"`
	CoordinatorName    string         `json:"coordinator_name"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// ServiceOrder is one order in the current (split client/order) schema.
// Stage dates are nullable: unset means the stage has not been reached.
type ServiceOrder struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	OrderCode string `json:"order_code" gorm:"unique;not null"`
	ClientID  uint   `json:"client_id" gorm:"not null"`
	Client    Client `json:"client"`

	IntakeDate               *time.Time `json:"intake_date"`
	PlanningDate             *time.Time `json:"planning_date"`
	VerificationDate         *time.Time `json:"verification_date"`
	VerificationResolvedDate *time.Time `json:"verification_resolved_date"`
	ReleaseDate              *time.Time `json:"release_date"`
	ResultDeliveryDate       *time.Time `json:"result_delivery_date"`
	ResultReceiptDate        *time.Time `json:"result_receipt_date"`
	BillingDate              *time.Time `json:"billing_date"`

	// Upstream-precomputed SLA tags; empty when the stage must be derived.
	VerificationSLA string `json:"verification_sla"`
	ReleaseSLA      string `json:"release_sla"`

	SampleCount         int `json:"sample_count"`
	VerifiedSampleCount int `json:"verified_sample_count"`

	InvoiceNumber string  `json:"invoice_number"`
	InvoiceAmount float64 `json:"invoice_amount"`

	CreatedBy uint           `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
