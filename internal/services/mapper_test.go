package services

import (
	"testing"
	"time"

	"lab_dashboard/internal/models"
	"lab_dashboard/internal/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapServiceOrder(t *testing.T) {
	o := models.ServiceOrder{
		ID:              7,
		OrderCode:       "1007",
		Client:          testClient(),
		IntakeDate:      tp(2024, time.January, 10),
		VerificationSLA: "on_time",
		SampleCount:     4,
		InvoiceNumber:   "INV-88",
		InvoiceAmount:   1250,
		CreatedAt:       *tp(2024, time.January, 10),
	}

	got := MapServiceOrder(o)
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "1007", got.Code)
	assert.Equal(t, tracking.SourceCurrent, got.Source)
	assert.Equal(t, "Acme Labs", got.ClientName)
	assert.Equal(t, "Chen", got.CoordinatorName)
	assert.Equal(t, "Rivera", got.RepresentativeName)
	assert.Equal(t, "on_time", got.VerificationSLA)
	assert.Equal(t, 1250.0, got.InvoiceAmount)
	assert.Same(t, o.IntakeDate, got.IntakeDate)
}

func TestMapLegacyOrder(t *testing.T) {
	o := models.LegacyOrder{
		ID:                 3,
		OrderCode:          "42",
		ClientName:         "Vintage Client",
		IntakeDate:         "2023-05-01",
		VerificationDate:   "15/5/2023",
		ResultDeliveryDate: "45292", // spreadsheet serial for 2024-01-01
		BillingDate:        "not a date",
		CreatedAt:          tp(2023, time.May, 1),
	}

	got := MapLegacyOrder(o)
	assert.Equal(t, tracking.SourceLegacy, got.Source)

	require.NotNil(t, got.IntakeDate)
	assert.True(t, got.IntakeDate.Equal(*tp(2023, time.May, 1)))
	require.NotNil(t, got.VerificationDate)
	assert.True(t, got.VerificationDate.Equal(*tp(2023, time.May, 15)))
	require.NotNil(t, got.ResultDeliveryDate)
	assert.True(t, got.ResultDeliveryDate.Equal(*tp(2024, time.January, 1)))

	// Malformed values degrade to unset, never an error.
	assert.Nil(t, got.BillingDate)
	assert.True(t, got.CreatedAt.Equal(*tp(2023, time.May, 1)))
}

func TestMapLegacyOrderWithoutTimestamp(t *testing.T) {
	got := MapLegacyOrder(models.LegacyOrder{OrderCode: "9"})
	assert.True(t, got.CreatedAt.IsZero())
}
