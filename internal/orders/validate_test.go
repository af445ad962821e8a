package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProduct(t *testing.T) {
	cases := []struct {
		raw     string
		name    string
		qty     int
	}{
		{"DONSA (x2)", "DONSA", 2},
		{"MIXER FOR MAN (x10)", "MIXER FOR MAN", 10},
		{"UNKNOWNTHING (x1)", "UNKNOWNTHING", 1},
		{"DONSA", "DONSA", 1},                  // no marker at all
		{"DONSA (xtwo)", "DONSA", 1},           // malformed quantity
		{"DONSA (x)", "DONSA", 1},              // empty quantity
		{"DONSA (x2) (x5)", "DONSA", 2},        // first digit group wins
		{"  DONSA  (x3)", "  DONSA ", 3},       // name kept verbatim, whitespace and all
		{"", "", 1},
	}
	for _, c := range cases {
		name, qty := ParseProduct(c.raw)
		assert.Equal(t, c.name, name, "raw=%q", c.raw)
		assert.Equal(t, c.qty, qty, "raw=%q", c.raw)
	}
}

func validReq() SubmitRequest {
	return SubmitRequest{
		Name:           "Jane",
		SenderNumber:   "0820000000",
		ReceiverName:   "Thandi",
		ReceiverNumber: "0831111111",
		Products:       []string{"DONSA (x2)", "UNKNOWNTHING (x1)"},
	}
}

func TestValidateSubmission(t *testing.T) {
	sub, err := ValidateSubmission(validReq())
	require.NoError(t, err)
	require.Len(t, sub.Items, 2)
	assert.Equal(t, LineItem{Name: "DONSA", Quantity: 2, Category: "Ezasekamelweni"}, sub.Items[0])
	assert.Equal(t, LineItem{Name: "UNKNOWNTHING", Quantity: 1, Category: "Unknown"}, sub.Items[1])
	assert.Equal(t, "Jane", sub.Name)
	assert.Empty(t, sub.PepCode)
}

func TestValidateSubmissionMissingFields(t *testing.T) {
	for _, mutate := range []func(*SubmitRequest){
		func(r *SubmitRequest) { r.Name = "" },
		func(r *SubmitRequest) { r.SenderNumber = "" },
		func(r *SubmitRequest) { r.ReceiverName = "" },
		func(r *SubmitRequest) { r.ReceiverNumber = "" },
	} {
		req := validReq()
		mutate(&req)
		_, err := ValidateSubmission(req)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

// Required means non-empty, nothing more: a whitespace-only field is
// accepted, matching the storefront's existing behavior.
func TestValidateSubmissionWhitespaceFieldIsNonEmpty(t *testing.T) {
	req := validReq()
	req.Name = " "
	sub, err := ValidateSubmission(req)
	require.NoError(t, err)
	assert.Equal(t, " ", sub.Name)
}

// A name that parses with surrounding whitespace is not the same product as
// its trimmed spelling: it misses the catalog and classifies as Unknown.
func TestValidateSubmissionVerbatimNameClassification(t *testing.T) {
	req := validReq()
	req.Products = []string{"  DONSA  (x3)"}
	sub, err := ValidateSubmission(req)
	require.NoError(t, err)
	require.Len(t, sub.Items, 1)
	assert.Equal(t, LineItem{Name: "  DONSA ", Quantity: 3, Category: "Unknown"}, sub.Items[0])
}

func TestValidateSubmissionNoProducts(t *testing.T) {
	req := validReq()
	req.Products = nil
	_, err := ValidateSubmission(req)
	assert.ErrorIs(t, err, ErrMissingFields)

	req.Products = []string{}
	_, err = ValidateSubmission(req)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestItemsLineRoundTrip(t *testing.T) {
	o := &Order{Items: []LineItem{
		{Name: "DONSA", Quantity: 2},
		{Name: "KHIYE", Quantity: 1},
	}}
	line := o.ItemsLine()
	assert.Equal(t, "DONSA (x2), KHIYE (x1)", line)

	name, qty := ParseProduct("DONSA (x2)")
	assert.Equal(t, "DONSA", name)
	assert.Equal(t, 2, qty)
}

func TestFormatSA(t *testing.T) {
	ts := time.Date(2026, 9, 1, 10, 30, 5, 0, time.UTC)
	assert.Equal(t, "2026/09/01, 12:30:05", FormatSA(ts))
}
