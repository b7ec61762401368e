package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOrderConfirmationEmail(toEmail string, confirmation *OrderConfirmation) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - Artisan Axis", confirmation.OrderID))

	var itemRows strings.Builder
	for _, item := range confirmation.Items {
		itemRows.WriteString(fmt.Sprintf(
			`<tr><td style="padding: 8px 0;">%s (x%d)</td><td style="padding: 8px 0; text-align: right;">$%s</td></tr>`,
			item.Name, item.Quantity, item.Price.StringFixed(2)))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #b45309; }
        .order-box { background-color: #fffbeb; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Artisan Axis</div>
        </div>
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Thank you for your order!</p>

        <div class="order-box">
            <p><strong>Order ID:</strong> %s</p>
            <table style="width: 100%%; border-collapse: collapse;">%s</table>
            <p style="border-top: 1px solid #eee; padding-top: 10px;"><strong>Total: $%s</strong></p>
        </div>

        <p><strong>Shipping to:</strong><br>%s<br>%s<br>%s<br>Pincode: %s</p>
        <p>We will notify you when your order ships.</p>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
            <p>&copy; 2025 Artisan Axis. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
	`,
		confirmation.OrderID,
		itemRows.String(),
		confirmation.TotalAmount.StringFixed(2),
		confirmation.ShippingAddress.Name,
		confirmation.ShippingAddress.Phone,
		confirmation.ShippingAddress.Address,
		confirmation.ShippingAddress.Pincode,
	)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
