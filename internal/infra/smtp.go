package infra

import (
	"fmt"
	"net/smtp"

	"github.com/parinohernan/aqua-delivery-sub000/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends the sales-report PDFs produced by the informes pipeline.
type Mailer struct {
	from string
	addr string
	auth smtp.Auth
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		from: cfg.SMTPUser,
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost),
	}
}

// SendInforme mails a plain-text body, attaching the report PDF when a path
// is given.
func (m *Mailer) SendInforme(to, subject, body, pdfPath string) error {
	msg := email.NewEmail()
	msg.From = m.from
	msg.To = []string{to}
	msg.Subject = subject
	msg.Text = []byte(body)

	if pdfPath != "" {
		if _, err := msg.AttachFile(pdfPath); err != nil {
			return fmt.Errorf("mailer: adjuntar informe: %w", err)
		}
	}
	return msg.Send(m.addr, m.auth)
}
