package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileCurrentWins(t *testing.T) {
	current := []UnifiedOrder{
		{Code: "100", ClientName: "Acme Labs", Source: SourceCurrent, CreatedAt: *date(2024, time.March, 1)},
	}
	legacy := []UnifiedOrder{
		{Code: "100", ClientName: "ACME (old)", Source: SourceLegacy, CreatedAt: *date(2023, time.June, 1)},
	}

	got := Reconcile(current, legacy)
	require.Len(t, got, 1)
	assert.Equal(t, "100", got[0].Code)
	assert.Equal(t, "Acme Labs", got[0].ClientName)
	assert.Equal(t, SourceCurrent, got[0].Source)
}

func TestReconcileKeepsUncoveredLegacy(t *testing.T) {
	current := []UnifiedOrder{
		{Code: "100", Source: SourceCurrent, CreatedAt: *date(2024, time.March, 1)},
	}
	legacy := []UnifiedOrder{
		{Code: "100", Source: SourceLegacy},
		{Code: "99", Source: SourceLegacy, CreatedAt: *date(2023, time.June, 1)},
		{Code: "", Source: SourceLegacy, CreatedAt: *date(2023, time.July, 1)},
	}

	got := Reconcile(current, legacy)
	// current + uncovered legacy + codeless legacy (always kept).
	require.Len(t, got, 3)

	codes := make(map[string]int)
	for _, o := range got {
		codes[o.Code]++
	}
	assert.Equal(t, 1, codes["100"])
	assert.Equal(t, 1, codes["99"])
	assert.Equal(t, 1, codes[""])
}

func TestReconcileSortsNewestFirst(t *testing.T) {
	current := []UnifiedOrder{
		{Code: "1", CreatedAt: *date(2024, time.January, 1)},
	}
	legacy := []UnifiedOrder{
		{Code: "2", CreatedAt: *date(2024, time.February, 1)},
		{Code: "3"}, // no timestamp, sorts last
	}

	got := Reconcile(current, legacy)
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].Code)
	assert.Equal(t, "1", got[1].Code)
	assert.Equal(t, "3", got[2].Code)
}

func TestReconcileEmptyInputs(t *testing.T) {
	assert.Empty(t, Reconcile(nil, nil))

	legacy := []UnifiedOrder{{Code: "7"}}
	got := Reconcile(nil, legacy)
	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].Code)
}
