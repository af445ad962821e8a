// Package notify runs the post-persistence side effects for a saved order:
// the sheets ledger and the operator email. Both are best effort. Either one
// failing, or panicking, never blocks the other and never changes the HTTP
// response once the order is persisted.
package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/impilostore/orderdesk/internal/orders"
)

type Ledger interface {
	AppendOrder(ctx context.Context, o *orders.Order) error
	RefreshSummary(ctx context.Context) error
}

type Mailer interface {
	SendOrderAlert(ctx context.Context, o *orders.Order) error
}

type Fanout struct {
	Ledger Ledger // nil when the sheets integration is not configured
	Mailer Mailer // nil when mail is not configured
	Log    *zap.Logger
}

// Outcome reports what the fan-out attempted and how it went. It carries
// flags for the response, never errors.
type Outcome struct {
	SheetsAttempted bool
	SheetsUpdated   bool
	EmailAttempted  bool
	EmailSent       bool
}

// Notify runs both branches concurrently and waits for them. Each branch is
// its own failure boundary: errors are logged against the order id and
// dropped, panics are contained.
func (f *Fanout) Notify(ctx context.Context, o *orders.Order) Outcome {
	var out Outcome
	var wg sync.WaitGroup

	if f.Ledger != nil {
		out.SheetsAttempted = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer f.contain("ledger", o.ID)
			if err := f.Ledger.AppendOrder(ctx, o); err != nil {
				f.Log.Error("ledger append failed", zap.String("order_id", o.ID), zap.Error(err))
				return
			}
			out.SheetsUpdated = true
			if err := f.Ledger.RefreshSummary(ctx); err != nil {
				f.Log.Error("ledger summary refresh failed", zap.String("order_id", o.ID), zap.Error(err))
			}
		}()
	}

	if f.Mailer != nil {
		out.EmailAttempted = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer f.contain("mail", o.ID)
			if err := f.Mailer.SendOrderAlert(ctx, o); err != nil {
				f.Log.Error("order email failed", zap.String("order_id", o.ID), zap.Error(err))
				return
			}
			out.EmailSent = true
		}()
	}

	wg.Wait()
	return out
}

func (f *Fanout) contain(branch, orderID string) {
	if r := recover(); r != nil {
		f.Log.Error("notification panic",
			zap.String("branch", branch),
			zap.String("order_id", orderID),
			zap.Any("panic", r),
		)
	}
}
