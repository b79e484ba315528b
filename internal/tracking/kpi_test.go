package tracking

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(5, 0))
	assert.Equal(t, 50.0, Percentage(5, 10))
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(3, 3))
}

func TestSummarizeCounts(t *testing.T) {
	now := time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC)

	var rows []AnnotatedOrder
	// 7 billed, of which 2 billed today; 3 still open.
	for i := 0; i < 7; i++ {
		o := UnifiedOrder{
			Code:          fmt.Sprintf("c%d", i),
			IntakeDate:    date(2024, time.January, 10),
			BillingDate:   date(2024, time.February, 1),
			InvoiceAmount: 100,
			CreatedAt:     *date(2024, time.January, 10),
		}
		if i < 2 {
			o.BillingDate = date(2024, time.February, 10)
		}
		rows = append(rows, Annotate(o, now, 15))
	}
	for i := 0; i < 3; i++ {
		o := UnifiedOrder{
			Code:       fmt.Sprintf("o%d", i),
			IntakeDate: date(2024, time.February, 5),
			CreatedAt:  *date(2024, time.February, 5),
		}
		if i == 0 {
			o.ResultDeliveryDate = date(2024, time.February, 8)
		}
		rows = append(rows, Annotate(o, now, 15))
	}

	s := Summarize(rows, now)
	assert.Equal(t, 10, s.TotalOrders)
	assert.Equal(t, 3, s.ActiveOrders)
	assert.Equal(t, 7, s.ClosedOrders)
	assert.Equal(t, 1, s.ReadyToInvoice)
	assert.Equal(t, 2, s.CompletedToday)
}

func TestSummarizePendingByStage(t *testing.T) {
	now := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

	rows := []AnnotatedOrder{
		Annotate(UnifiedOrder{IntakeDate: date(2024, time.February, 8)}, now, 15),
		Annotate(UnifiedOrder{IntakeDate: date(2024, time.February, 8)}, now, 15),
		Annotate(UnifiedOrder{
			IntakeDate:  date(2024, time.February, 1),
			ReleaseDate: date(2024, time.February, 9),
		}, now, 15),
	}

	s := Summarize(rows, now)
	counts := make(map[string]int)
	for _, sc := range s.PendingByStage {
		counts[sc.Stage] = sc.Count
	}
	assert.Equal(t, 2, counts[StageReceived])
	assert.Equal(t, 1, counts[StageReleased])

	// Catalog order is preserved for chart consumption.
	require.Len(t, s.PendingByStage, len(Catalog()))
	for i, def := range Catalog() {
		assert.Equal(t, def.Name, s.PendingByStage[i].Stage)
	}
}

func TestSummarizeTurnaroundOnlyOverCompleted(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	open := Annotate(UnifiedOrder{
		IntakeDate: date(2024, time.February, 1),
		CreatedAt:  *date(2024, time.February, 1),
	}, now, 15)
	done := Annotate(UnifiedOrder{
		IntakeDate:  date(2024, time.January, 1),
		BillingDate: date(2024, time.January, 11),
		CreatedAt:   *date(2024, time.January, 1),
	}, now, 15)

	s := Summarize([]AnnotatedOrder{open, done}, now)
	assert.Equal(t, 10.0, s.AvgTurnaroundDays)

	empty := Summarize(nil, now)
	assert.Equal(t, 0.0, empty.AvgTurnaroundDays)
	assert.Equal(t, 0.0, empty.OnTimeRate)
}

func TestMonthlyRevenue(t *testing.T) {
	rows := []UnifiedOrder{
		{BillingDate: date(2024, time.February, 15), InvoiceAmount: 200},
		{BillingDate: date(2024, time.January, 10), InvoiceAmount: 100},
		{BillingDate: date(2024, time.February, 1), InvoiceAmount: 50},
		{InvoiceAmount: 999}, // unbilled, excluded
	}

	got := MonthlyRevenue(rows)
	require.Len(t, got, 2)
	assert.Equal(t, MonthlyBucket{Month: "2024-01", Orders: 1, Amount: 100}, got[0])
	assert.Equal(t, MonthlyBucket{Month: "2024-02", Orders: 2, Amount: 250}, got[1])
}
