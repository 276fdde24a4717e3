package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"banhmai_back_end/internal/models"
)

func sendEmail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.From(os.Getenv("SMTP_FROM")); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 sending email to", to)
	return client.DialAndSend(msg)
}

// SendOrderStatusEmail notifies the customer about a status change. Failures
// are logged by the caller; a missed email never fails the transition.
func SendOrderStatusEmail(order models.Order, userEmail, newStatus string) error {
	subject := statusEmailSubject(newStatus)
	if err := sendEmail(userEmail, subject, statusEmailHTML(order, newStatus)); err != nil {
		return err
	}
	log.Printf("📧 status email sent: %s → %s", newStatus, userEmail)
	return nil
}

func statusEmailSubject(status string) string {
	switch status {
	case "processing":
		return "👩‍🍳 Your order is being prepared — Bánh Mai"
	case "completed":
		return "🎉 Your order is complete — Bánh Mai"
	case "cancelled":
		return "❌ Your order was cancelled — Bánh Mai"
	default:
		return "📋 Order update — Bánh Mai"
	}
}

func statusEmailHTML(order models.Order, status string) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.0f₫</td>
			</tr>`, item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, Segoe UI, Roboto, Arial, sans-serif;">
	<h2>Bánh Mai</h2>
	<p>Order <strong>%s</strong> is now <strong>%s</strong>.</p>
	<table cellpadding="6">
		<tr><th align="left">Item</th><th align="left">Qty</th><th align="left">Amount</th></tr>
		%s
	</table>
	<p>Total: <strong>%.0f₫</strong></p>
</body>
</html>`, order.ID, status, itemsHTML, order.Total)
}
