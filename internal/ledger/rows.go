package ledger

import (
	"sort"
	"strings"

	"github.com/impilostore/orderdesk/internal/orders"
)

// orderRow lays out one order for the Orders region:
// [id, name, sender_number, receiver_name, receiver_number, pep_code,
//  "item (xqty), item (xqty)...", created_at].
func orderRow(o *orders.Order) []interface{} {
	return []interface{}{
		o.ID,
		o.Name,
		o.SenderNumber,
		o.ReceiverName,
		o.ReceiverNumber,
		o.PepCode,
		o.ItemsLine(),
		orders.FormatSA(o.CreatedAt),
	}
}

// summaryValues renders the aggregate as the ProductsSummary region: a
// header row followed by one row per product.
func summaryValues(totals []orders.ProductTotal) [][]interface{} {
	values := make([][]interface{}, 0, len(totals)+1)
	values = append(values, []interface{}{"Product Name", "Quantity Ordered", "Items Sold"})
	for _, t := range totals {
		values = append(values, []interface{}{t.Product, t.TotalQuantity, t.ItemsSold})
	}
	return values
}

// totalsFromCells re-derives the aggregate from previously written items
// cells. Entries without the "(x" quantity marker were not written by us and
// are skipped silently; everything else round-trips through ParseProduct.
func totalsFromCells(cells []string) []orders.ProductTotal {
	type agg struct{ qty, count int }
	byName := map[string]*agg{}
	for _, cell := range cells {
		for _, entry := range strings.Split(cell, ", ") {
			if !strings.Contains(entry, "(x") {
				continue
			}
			name, qty := orders.ParseProduct(entry)
			if name == "" {
				continue
			}
			a, ok := byName[name]
			if !ok {
				a = &agg{}
				byName[name] = a
			}
			a.qty += qty
			a.count++
		}
	}

	out := make([]orders.ProductTotal, 0, len(byName))
	for name, a := range byName {
		out = append(out, orders.ProductTotal{Product: name, TotalQuantity: a.qty, ItemsSold: a.count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product < out[j].Product })
	return out
}
