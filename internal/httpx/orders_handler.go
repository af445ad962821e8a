package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/impilostore/orderdesk/internal/notify"
	"github.com/impilostore/orderdesk/internal/orders"
	"github.com/impilostore/orderdesk/internal/redisx"
)

// Store is the authoritative order storage used by the workflow.
type Store interface {
	Save(ctx context.Context, sub *orders.Submission) (*orders.Order, error)
	Ping(ctx context.Context) error
}

// TotalsSource serves the /summary read path, normally the cached aggregate.
type TotalsSource interface {
	ProductTotals(ctx context.Context) ([]orders.ProductTotal, error)
}

type OrdersHandler struct {
	Store  Store
	Totals TotalsSource
	Cache  *redisx.TotalsCache // nil-safe; invalidated after every save
	Fanout *notify.Fanout
	Log    *zap.Logger
	Env    string

	started time.Time
}

type SubmitResponse struct {
	Success             bool   `json:"success"`
	Message             string `json:"message"`
	OrderID             string `json:"orderId,omitempty"`
	GoogleSheetsUpdated bool   `json:"googleSheetsUpdated"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	h.started = time.Now()
	r.Post("/submit", h.submit)
	r.Get("/status", h.status)
	r.Get("/health", h.health)
	r.Get("/summary", h.summary)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// submit runs the whole order workflow: validate, persist, fan out, respond.
// Persistence is the only failure after validation that aborts the request;
// the fan-out runs to completion but only ever adjusts response flags.
func (h *OrdersHandler) submit(w http.ResponseWriter, r *http.Request) {
	var req orders.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON body."})
		return
	}

	sub, err := orders.ValidateSubmission(req)
	if err != nil {
		if errors.Is(err, orders.ErrMissingFields) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Missing required fields or products."})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	saveCtx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	order, err := h.Store.Save(saveCtx, sub)
	if err != nil {
		h.Log.Error("order save failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Failed to save order."})
		return
	}
	h.Cache.Invalidate(saveCtx)

	// The order is persisted; its notifications must survive the client
	// disconnecting, so the fan-out context never inherits cancellation
	// from the request.
	notifyCtx, cancelNotify := context.WithTimeout(context.WithoutCancel(r.Context()), 15*time.Second)
	defer cancelNotify()
	out := h.Fanout.Notify(notifyCtx, order)

	h.Log.Info("order processed",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.Bool("sheets_updated", out.SheetsUpdated),
		zap.Bool("email_sent", out.EmailSent),
	)

	writeJSON(w, http.StatusOK, SubmitResponse{
		Success:             true,
		Message:             "Order processed successfully.",
		OrderID:             order.ID,
		GoogleSheetsUpdated: out.SheetsUpdated,
	})
}

func (h *OrdersHandler) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"uptime":       time.Since(h.started).Seconds(),
		"environment":  h.Env,
		"googleSheets": h.Fanout.Ledger != nil,
	})
}

func (h *OrdersHandler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	database := "connected"
	if err := h.Store.Ping(ctx); err != nil {
		database = "disconnected"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "OK",
		"timestamp":    time.Now().In(orders.Johannesburg).Format(time.RFC3339),
		"environment":  h.Env,
		"googleSheets": h.Fanout.Ledger != nil,
		"database":     database,
	})
}

func (h *OrdersHandler) summary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	totals, err := h.Totals.ProductTotals(ctx)
	if err != nil {
		h.Log.Error("summary query failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Failed to load product summary."})
		return
	}
	if totals == nil {
		totals = []orders.ProductTotal{}
	}
	writeJSON(w, http.StatusOK, totals)
}
