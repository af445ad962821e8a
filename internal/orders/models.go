package orders

import (
	"fmt"
	"strings"
	"time"
)

// Johannesburg is the zone all order timestamps are assigned and displayed
// in. SAST has no DST, so a fixed offset avoids a tzdata dependency.
var Johannesburg = time.FixedZone("SAST", 2*60*60)

// TimeLayoutSA mirrors the en-ZA locale rendering used by the ledger and
// the email alert, e.g. "2026/09/01, 14:03:05".
const TimeLayoutSA = "2006/01/02, 15:04:05"

// FormatSA renders t in the Johannesburg zone for display.
func FormatSA(t time.Time) string {
	return t.In(Johannesburg).Format(TimeLayoutSA)
}

// LineItem is one product entry within an Order. Category is derived from
// the catalog at submission time and never client supplied.
type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

type Order struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	SenderNumber   string     `json:"sender_number"`
	ReceiverName   string     `json:"receiver_name"`
	ReceiverNumber string     `json:"receiver_number"`
	PepCode        string     `json:"pep_code"`
	Items          []LineItem `json:"items"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ItemsLine renders the items as "DONSA (x2), KHIYE (x1)" for the ledger's
// encoded text column. ParseProduct can round-trip each entry.
func (o *Order) ItemsLine() string {
	parts := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", it.Name, it.Quantity))
	}
	return strings.Join(parts, ", ")
}
