// Package email sends transactional mail over SMTP. All sends are
// fire-and-forget from the caller's point of view: a failed confirmation
// email never rolls back an order.
package email

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/harrygithub11/manthmwear-sub000/config"
	"github.com/harrygithub11/manthmwear-sub000/models"
)

type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

func (m *Mailer) enabled() bool {
	return m.host != "" && m.from != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.enabled() {
		log.Printf("📧 SMTP not configured, skipping email to %s (%s)", to, subject)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

// SendOrderConfirmation mails the customer. Call in a goroutine.
func (m *Mailer) SendOrderConfirmation(order *models.Order, storeName string) {
	subject := fmt.Sprintf("%s order %s confirmed", storeName, order.OrderNumber)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\nThanks for shopping with %s! Your order %s has been received.\n\n",
		order.User.Name, storeName, order.OrderNumber)
	for _, item := range order.Items {
		fmt.Fprintf(&sb, "  %s (%s / %s, pack of %d) x%d: %s\n",
			item.ProductName, item.Color, item.Size, item.Pack, item.Quantity, rupees(item.Subtotal))
	}
	fmt.Fprintf(&sb, "\nSubtotal: %s\nShipping: %s\n", rupees(order.Subtotal), rupees(order.ShippingFee))
	if order.Discount > 0 {
		fmt.Fprintf(&sb, "Discount: -%s\n", rupees(order.Discount))
	}
	if order.Tax > 0 {
		fmt.Fprintf(&sb, "Tax: %s\n", rupees(order.Tax))
	}
	fmt.Fprintf(&sb, "Total: %s\nPayment: %s\n\nWe'll email you again when it ships.\n",
		rupees(order.Total), order.PaymentMethod)

	if err := m.Send(order.User.Email, subject, sb.String()); err != nil {
		log.Printf("❌ Failed to send order confirmation for %s: %v", order.OrderNumber, err)
	}
}

// SendOrderAlert mails the store operator about a new order. Call in a goroutine.
func (m *Mailer) SendOrderAlert(order *models.Order, alertEmail string) {
	if alertEmail == "" {
		return
	}
	subject := fmt.Sprintf("New order %s: %s", order.OrderNumber, rupees(order.Total))
	body := fmt.Sprintf(
		"Order %s\nCustomer: %s <%s>\nPayment: %s (%s)\nTotal: %s\nItems: %d\nShip to: %s, %s %s\n",
		order.OrderNumber, order.User.Name, order.User.Email,
		order.PaymentMethod, order.PaymentStatus, rupees(order.Total), len(order.Items),
		order.ShippingAddress.City, order.ShippingAddress.State, order.ShippingAddress.PostalCode,
	)
	if err := m.Send(alertEmail, subject, body); err != nil {
		log.Printf("❌ Failed to send order alert for %s: %v", order.OrderNumber, err)
	}
}

func rupees(paise int64) string {
	return fmt.Sprintf("Rs %d.%02d", paise/100, paise%100)
}
