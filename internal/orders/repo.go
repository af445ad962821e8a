package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

// ProductTotal is one row of the per-product sales aggregate.
type ProductTotal struct {
	Product       string `json:"product"`
	TotalQuantity int    `json:"total_quantity"`
	ItemsSold     int    `json:"items_sold"`
}

// Save assigns the order its identity and creation timestamp and persists it
// with its items in one transaction. Any failure here is the submission's
// terminal error.
func (r *Repo) Save(ctx context.Context, sub *Submission) (*Order, error) {
	o := &Order{
		ID:             uuid.NewString(),
		Name:           sub.Name,
		SenderNumber:   sub.SenderNumber,
		ReceiverName:   sub.ReceiverName,
		ReceiverNumber: sub.ReceiverNumber,
		PepCode:        sub.PepCode,
		Items:          sub.Items,
		CreatedAt:      time.Now().In(Johannesburg),
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders(id, name, sender_number, receiver_name, receiver_number, pep_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, o.ID, o.Name, o.SenderNumber, o.ReceiverName, o.ReceiverNumber, o.PepCode, o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	for _, it := range o.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items(order_id, name, quantity, category)
			VALUES ($1, $2, $3, $4)`,
			o.ID, it.Name, it.Quantity, it.Category,
		)
		if err != nil {
			return nil, fmt.Errorf("save order items: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return o, nil
}

// ProductTotals aggregates all persisted line items: total quantity and
// occurrence count per distinct product name, product name ascending.
func (r *Repo) ProductTotals(ctx context.Context) ([]ProductTotal, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT name, COALESCE(SUM(quantity), 0), COUNT(*)
		FROM order_items
		GROUP BY name
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("product totals: %w", err)
	}
	defer rows.Close()

	var out []ProductTotal
	for rows.Next() {
		var t ProductTotal
		if err := rows.Scan(&t.Product, &t.TotalQuantity, &t.ItemsSold); err != nil {
			return nil, fmt.Errorf("product totals: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Ping reports storage reachability for the health endpoint.
func (r *Repo) Ping(ctx context.Context) error {
	return r.DB.Ping(ctx)
}
