package orders

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/impilostore/orderdesk/internal/catalog"
)

// SubmitRequest is the raw storefront payload. Products arrive as encoded
// strings of the form "<name> (x<qty>)".
type SubmitRequest struct {
	Name           string   `json:"name"`
	SenderNumber   string   `json:"sender_number"`
	ReceiverName   string   `json:"receiver_name"`
	ReceiverNumber string   `json:"receiver_number"`
	PepCode        string   `json:"pep_code"`
	Products       []string `json:"products"`
}

// Submission is a validated request, ready for storage: line items parsed
// and classified, required fields checked.
type Submission struct {
	Name           string
	SenderNumber   string
	ReceiverName   string
	ReceiverNumber string
	PepCode        string
	Items          []LineItem
}

// ErrMissingFields covers both validation failure reasons: an empty required
// contact field or an empty product list. Either rejects the submission
// before anything is persisted.
var ErrMissingFields = errors.New("missing required fields or products")

const quantityMarker = " (x"

var quantityRe = regexp.MustCompile(`\(x(\d+)\)`)

// ParseProduct decodes one "<name> (x<qty>)" entry. The parse never fails:
// without a well-formed quantity group the quantity defaults to 1, and the
// name is the text preceding the first marker (or the whole string), kept
// verbatim. Classification is exact match, so stray whitespace stays part of
// the name and lands in the fallback category.
func ParseProduct(raw string) (name string, quantity int) {
	name = raw
	if i := strings.Index(raw, quantityMarker); i >= 0 {
		name = raw[:i]
	}
	quantity = 1
	if m := quantityRe.FindStringSubmatch(raw); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			quantity = n
		}
	}
	return name, quantity
}

// ValidateSubmission checks required fields and the product list, then
// parses and classifies every product entry.
func ValidateSubmission(req SubmitRequest) (*Submission, error) {
	if req.Name == "" || req.SenderNumber == "" ||
		req.ReceiverName == "" || req.ReceiverNumber == "" {
		return nil, ErrMissingFields
	}
	if len(req.Products) == 0 {
		return nil, ErrMissingFields
	}

	items := make([]LineItem, 0, len(req.Products))
	for _, p := range req.Products {
		name, qty := ParseProduct(p)
		items = append(items, LineItem{
			Name:     name,
			Quantity: qty,
			Category: catalog.Classify(name),
		})
	}

	return &Submission{
		Name:           req.Name,
		SenderNumber:   req.SenderNumber,
		ReceiverName:   req.ReceiverName,
		ReceiverNumber: req.ReceiverNumber,
		PepCode:        req.PepCode,
		Items:          items,
	}, nil
}
