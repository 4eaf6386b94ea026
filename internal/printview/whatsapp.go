package printview

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"temiperi-stocks-backend/internal/model"
)

var ErrNoPhone = errors.New("phone number required")

// NormalizePhone strips everything but digits, so free-typed numbers like
// "+233 24-123 4567" become wa.me friendly.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppMessage formats the share text for an invoice.
func WhatsAppMessage(inv *model.Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n\n", companyName)
	fmt.Fprintf(&b, "*Invoice #:* %s\n", inv.InvoiceNumber)
	fmt.Fprintf(&b, "*Customer:* %s\n", inv.CustomerName)
	fmt.Fprintf(&b, "*Date:* %s\n", inv.CreatedAt.Format("January 2, 2006"))
	fmt.Fprintf(&b, "*Time:* %s\n\n", inv.CreatedAt.Format("03:04 PM"))
	b.WriteString("*Order Details:*\n")
	for i, item := range inv.Items {
		fmt.Fprintf(&b, "%d. %s - Qty: %d, Price: %s\n", i+1, item.Description, item.Quantity, formatMoney(item.Price))
	}
	fmt.Fprintf(&b, "\n*Total Amount:* %s\n\n", formatMoney(inv.TotalAmount))
	b.WriteString("Thank you for your business!")
	return b.String()
}

// WhatsAppLink builds the wa.me deep link for sharing an invoice with a
// customer phone number.
func WhatsAppLink(inv *model.Invoice, phone string) (string, error) {
	digits := NormalizePhone(phone)
	if digits == "" {
		return "", ErrNoPhone
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(WhatsAppMessage(inv))), nil
}
