package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendHighRiskAlert(toEmail, memberName string, probability float64) error
	SendPaymentReminder(toEmail, memberName string, amount float64, dueDate string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendHighRiskAlert(toEmail, memberName string, probability float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Member at High Churn Risk")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Retention Alert</h2>
			<p>Member <strong>%s</strong> was flagged at high churn risk.</p>
			<h1 style="color: #E53935;">%.0f%%</h1>
			<p>Check the retention dashboard for the recommended actions.</p>
		</div>
	`, memberName, probability*100)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send high risk alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] High risk alert sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendPaymentReminder(toEmail, memberName string, amount float64, dueDate string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Payment Reminder")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your membership payment of <strong>%.2f</strong> was due on %s.</p>
			<p>Please settle it to keep your plan active.</p>
			<p>If you already paid, please ignore this email.</p>
		</div>
	`, memberName, amount, dueDate)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send payment reminder to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Payment reminder sent to %s\n", toEmail)
	return nil
}
