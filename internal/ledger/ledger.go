// Package ledger appends orders to a Google Sheets workbook and maintains a
// rolling per-product sales summary on a second region of the same sheet.
package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/impilostore/orderdesk/internal/orders"
)

const (
	ordersRange  = "Orders!A:H"
	itemsColumn  = "Orders!G:G"
	summaryRange = "ProductsSummary!A1:C"
)

// TotalsFunc supplies the per-product aggregate for the summary region,
// normally backed by the order store.
type TotalsFunc func(ctx context.Context) ([]orders.ProductTotal, error)

type Client struct {
	svc     *sheets.Service
	sheetID string
	totals  TotalsFunc
	log     *zap.Logger
}

// New builds a sheets client from service-account credentials JSON. Callers
// that have no credentials simply keep a nil *Client and the fan-out skips
// the ledger entirely.
func New(ctx context.Context, credsJSON []byte, sheetID string, totals TotalsFunc, log *zap.Logger) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, sheetID: sheetID, totals: totals, log: log}, nil
}

// AppendOrder appends one row to the Orders region.
func (c *Client) AppendOrder(ctx context.Context, o *orders.Order) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{orderRow(o)}}
	_, err := c.svc.Spreadsheets.Values.Append(c.sheetID, ordersRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append order row: %w", err)
	}
	return nil
}

// RefreshSummary rewrites the ProductsSummary region wholesale from the
// store's aggregate. When the store query fails it falls back to re-deriving
// totals from the ledger's own items column, so the summary can still be
// refreshed while the database is briefly unreachable.
func (c *Client) RefreshSummary(ctx context.Context) error {
	totals, err := c.totals(ctx)
	if err != nil {
		c.log.Warn("totals query failed, re-deriving from ledger rows", zap.Error(err))
		totals, err = c.totalsFromSheet(ctx)
		if err != nil {
			return fmt.Errorf("refresh summary: %w", err)
		}
	}

	_, err = c.svc.Spreadsheets.Values.Clear(c.sheetID, summaryRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear summary: %w", err)
	}
	vr := &sheets.ValueRange{Values: summaryValues(totals)}
	_, err = c.svc.Spreadsheets.Values.Update(c.sheetID, summaryRange, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update summary: %w", err)
	}
	return nil
}

// totalsFromSheet is the legacy derivation path: read back the encoded items
// column and re-parse it. Cells that do not look like our own output are
// skipped.
func (c *Client) totalsFromSheet(ctx context.Context) ([]orders.ProductTotal, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, itemsColumn).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read items column: %w", err)
	}
	cells := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		if s, ok := row[0].(string); ok {
			cells = append(cells, s)
		}
	}
	return totalsFromCells(cells), nil
}
