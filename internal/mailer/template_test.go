package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impilostore/orderdesk/internal/orders"
)

func sampleOrder() *orders.Order {
	return &orders.Order{
		ID:             "abc-123",
		Name:           "Jane",
		SenderNumber:   "0820000000",
		ReceiverName:   "Thandi",
		ReceiverNumber: "0831111111",
		Items: []orders.LineItem{
			{Name: "DONSA", Quantity: 2, Category: "Ezasekamelweni"},
			{Name: "UNKNOWNTHING", Quantity: 1, Category: "Unknown"},
		},
		CreatedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderOrderHTML(t *testing.T) {
	o := sampleOrder()
	html, err := RenderOrderHTML(o)
	require.NoError(t, err)

	for _, want := range []string{
		"New Order Received",
		"Jane", "0820000000", "Thandi", "0831111111",
		"abc-123",
		"2026/09/01, 12:00:00",
		"DONSA", "Ezasekamelweni",
		"UNKNOWNTHING", "Unknown",
	} {
		assert.Contains(t, html, want)
	}
}

func TestRenderOrderHTMLPepCodePlaceholder(t *testing.T) {
	o := sampleOrder()
	html, err := RenderOrderHTML(o)
	require.NoError(t, err)
	assert.Contains(t, html, "N/A")

	o.PepCode = "PEP42"
	html, err = RenderOrderHTML(o)
	require.NoError(t, err)
	assert.Contains(t, html, "PEP42")
	assert.NotContains(t, html, "N/A")
}

func TestRenderOrderHTMLEscapesInput(t *testing.T) {
	o := sampleOrder()
	o.Name = `<script>alert("x")</script>`
	html, err := RenderOrderHTML(o)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
