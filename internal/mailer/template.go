package mailer

import (
	"html/template"
	"strings"

	"github.com/impilostore/orderdesk/internal/orders"
)

var orderTmpl = template.Must(template.New("order").Parse(`
<div style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #2e7d32;">New Order Received</h2>
  <table style="width:100%; border-collapse: collapse;">
    <tr><td><b>Customer Name</b></td><td>{{.Order.Name}}</td></tr>
    <tr><td><b>Sender Number</b></td><td>{{.Order.SenderNumber}}</td></tr>
    <tr><td><b>Receiver Name</b></td><td>{{.Order.ReceiverName}}</td></tr>
    <tr><td><b>Receiver Number</b></td><td>{{.Order.ReceiverNumber}}</td></tr>
    <tr><td><b>Pep Code</b></td><td>{{.PepCode}}</td></tr>
    <tr><td><b>Order ID</b></td><td>{{.Order.ID}}</td></tr>
    <tr><td><b>Created At</b></td><td>{{.CreatedAt}}</td></tr>
  </table>
  <h3>Products Ordered:</h3>
  <table style="width:100%; border-collapse: collapse;">
    <tr style="background:#f1f8e9;">
      <th>Product</th><th>Category</th><th>Quantity</th>
    </tr>
    {{range .Order.Items}}<tr><td>{{.Name}}</td><td>{{.Category}}</td><td>{{.Quantity}}</td></tr>{{end}}
  </table>
</div>
`))

// RenderOrderHTML produces the fixed alert document for one order. The pep
// code shows as "N/A" when absent.
func RenderOrderHTML(o *orders.Order) (string, error) {
	pep := o.PepCode
	if pep == "" {
		pep = "N/A"
	}
	data := struct {
		Order     *orders.Order
		PepCode   string
		CreatedAt string
	}{o, pep, orders.FormatSA(o.CreatedAt)}

	var b strings.Builder
	if err := orderTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
