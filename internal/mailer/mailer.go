// Package mailer dispatches the operator email alert for each saved order.
package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/impilostore/orderdesk/internal/orders"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// To is the single operator address every alert goes to.
	To string
}

type Mailer struct {
	client *mail.Client
	from   string
	to     string
}

func New(cfg Config) (*Mailer, error) {
	if cfg.Host == "" || cfg.To == "" {
		return nil, fmt.Errorf("mailer: host and operator address are required")
	}
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("mailer: %w", err)
	}
	return &Mailer{client: client, from: cfg.Username, to: cfg.To}, nil
}

// SendOrderAlert renders and dispatches the alert for one order. Errors are
// returned to the fan-out, which logs and drops them.
func (m *Mailer) SendOrderAlert(ctx context.Context, o *orders.Order) error {
	body, err := RenderOrderHTML(o)
	if err != nil {
		return fmt.Errorf("render order email: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat("Order System", m.from); err != nil {
		return fmt.Errorf("order email from: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("order email to: %w", err)
	}
	msg.Subject(fmt.Sprintf("New Order #%s", o.ID))
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send order email: %w", err)
	}
	return nil
}
