// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/cleantheory-backend/internal/config"
	"github.com/javajoker/cleantheory-backend/internal/models"
)

type NotificationService struct {
	config config.EmailConfig
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(cfg config.EmailConfig) *NotificationService {
	return &NotificationService{
		config: cfg,
		send:   smtp.SendMail,
	}
}

func (s *NotificationService) SendOrderConfirmation(order *models.Order) error {
	data := map[string]interface{}{
		"FirstName":   order.Customer.FirstName,
		"OrderNumber": order.Number,
		"Items":       order.Items,
		"Subtotal":    order.Subtotal.StringFixed(2),
		"Tax":         order.Tax.StringFixed(2),
		"Total":       order.Total.StringFixed(2),
		"StoreName":   s.config.FromName,
	}

	tmpl := s.getEmailTemplate("order_confirmation")
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(order.Customer.Email, tmpl.Subject+" "+order.Number, body)
}

// SendFeedbackReceipt thanks a shopper who left an address and agreed to be
// contacted. Other submissions are acknowledged only in the API response.
func (s *NotificationService) SendFeedbackReceipt(feedback *models.Feedback) error {
	if feedback.Email == "" || !feedback.AllowContact {
		return nil
	}

	tmpl := s.getEmailTemplate("feedback_receipt")
	body, err := s.renderTemplate(tmpl.Body, map[string]interface{}{
		"Reference": feedback.Reference,
		"StoreName": s.config.FromName,
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(feedback.Email, tmpl.Subject, body)
}

// Helper methods
func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("Email delivery disabled, skipping")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s", to, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.SMTPHost, s.config.SMTPPort)
	return s.send(addr, auth, s.config.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"order_confirmation": {
			Subject: "Your Clean Theory order",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Thank you, {{.FirstName}}!</h2>
	<p>Your order <strong>{{.OrderNumber}}</strong> has been confirmed.</p>
	<ul>
	{{range .Items}}<li>{{.Quantity}} x {{.Name}} ({{.LineTotal.StringFixed 2}})</li>
	{{end}}</ul>
	<p>Subtotal: ${{.Subtotal}}<br>Tax: ${{.Tax}}<br>Total: ${{.Total}}</p>
	<p>Best regards,<br>{{.StoreName}}</p>
</body>
</html>`,
		},
		"feedback_receipt": {
			Subject: "Thanks for your feedback",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<p>We received your feedback (reference {{.Reference}}) and may follow up with you.</p>
	<p>Best regards,<br>{{.StoreName}}</p>
</body>
</html>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.Message}}</p>",
	}
}
