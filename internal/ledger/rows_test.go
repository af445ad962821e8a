package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impilostore/orderdesk/internal/orders"
)

func TestOrderRowLayout(t *testing.T) {
	o := &orders.Order{
		ID:             "abc-123",
		Name:           "Jane",
		SenderNumber:   "0820000000",
		ReceiverName:   "Thandi",
		ReceiverNumber: "0831111111",
		PepCode:        "PEP42",
		Items: []orders.LineItem{
			{Name: "DONSA", Quantity: 2, Category: "Ezasekamelweni"},
			{Name: "KHIYE", Quantity: 1, Category: "Ezokuthandeka"},
		},
		CreatedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}

	row := orderRow(o)
	require.Len(t, row, 8)
	assert.Equal(t, "abc-123", row[0])
	assert.Equal(t, "PEP42", row[5])
	assert.Equal(t, "DONSA (x2), KHIYE (x1)", row[6])
	assert.Equal(t, "2026/09/01, 12:00:00", row[7])
}

func TestSummaryValues(t *testing.T) {
	values := summaryValues([]orders.ProductTotal{
		{Product: "DONSA", TotalQuantity: 5, ItemsSold: 2},
		{Product: "KHIYE", TotalQuantity: 1, ItemsSold: 1},
	})
	require.Len(t, values, 3)
	assert.Equal(t, []interface{}{"Product Name", "Quantity Ordered", "Items Sold"}, values[0])
	assert.Equal(t, []interface{}{"DONSA", 5, 2}, values[1])
}

func TestTotalsFromCells(t *testing.T) {
	cells := []string{
		"DONSA (x2), KHIYE (x1)",
		"DONSA (x3)",
		"not an items cell at all", // skipped
		"",                         // skipped
		"KHIYE (x1), UNKNOWNTHING (x4)",
	}

	got := totalsFromCells(cells)
	assert.Equal(t, []orders.ProductTotal{
		{Product: "DONSA", TotalQuantity: 5, ItemsSold: 2},
		{Product: "KHIYE", TotalQuantity: 2, ItemsSold: 2},
		{Product: "UNKNOWNTHING", TotalQuantity: 4, ItemsSold: 1},
	}, got)
}

func TestTotalsFromCellsEmpty(t *testing.T) {
	assert.Empty(t, totalsFromCells(nil))
}
