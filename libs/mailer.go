package libs

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"storefront/config"
	"storefront/models"

	"gopkg.in/gomail.v2"
)

var ErrMailerNotConfigured = errors.New("SMTP configuration missing")

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	dialer dialer
	from   string
}

func NewMailer(cfg *config.Config) (*Mailer, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, ErrMailerNotConfigured
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

// OrderPlaced sends the order confirmation to the identity's email address.
func (s *Mailer) OrderPlaced(_ context.Context, identity models.Identity, order *models.Order) error {
	if identity.Email == "" {
		return nil
	}

	if err := s.dialer.DialAndSend(s.orderConfirmation(identity.Email, order)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *Mailer) orderConfirmation(toEmail string, order *models.Order) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%d", order.ID))

	var rows strings.Builder
	for _, item := range order.Items {
		title := item.Title
		if title == "" {
			title = fmt.Sprintf("Product #%d", item.ProductID)
		}
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%d</td><td>%s</td></tr>\n",
			html.EscapeString(title), item.Quantity, item.UnitPrice.StringFixed(2))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Order Confirmation</h2>
    <p>Thank you for your order!</p>
    <p><strong>Order Number:</strong> %d</p>
    <table>
        <tr><th>Product</th><th>Qty</th><th>Unit price</th></tr>
%s    </table>
    <p><strong>Total Amount:</strong> %s</p>
    <p>Payment status: %s</p>
</body>
</html>
`, order.ID, rows.String(), order.TotalPrice.StringFixed(2), order.PaymentStatus)

	m.SetBody("text/html", body)
	return m
}
