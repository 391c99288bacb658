package service

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer sends a single message with an HTML body and a plain-text fallback.
type Mailer interface {
	Send(to string, subject string, htmlBody string, textBody string) error
}

// SMTPMailer sends email via unauthenticated SMTP (Mailpit-compatible in
// development, a local relay in production).
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(host string, port string, from string) *SMTPMailer {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "bookings@salon.local"
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%s", host, port),
		from: from,
	}
}

func (s *SMTPMailer) Send(to string, subject string, htmlBody string, textBody string) error {
	msg := buildMessage(s.from, to, subject, htmlBody, textBody)
	return smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}

// buildMessage assembles a minimal RFC 5322 message. When both bodies are
// present it uses multipart/alternative so clients pick their preferred part.
func buildMessage(from, to, subject, htmlBody, textBody string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\n", from, to, subject)

	switch {
	case htmlBody != "" && textBody != "":
		const boundary = "salon-msg-boundary"
		fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)
		fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", boundary, textBody)
		fmt.Fprintf(&b, "--%s\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n", boundary, htmlBody)
		fmt.Fprintf(&b, "--%s--\r\n", boundary)
	case htmlBody != "":
		fmt.Fprintf(&b, "Content-Type: text/html; charset=utf-8\r\n\r\n%s\r\n", htmlBody)
	default:
		fmt.Fprintf(&b, "Content-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", textBody)
	}

	return b.String()
}

// NoopMailer discards messages; used when SMTP is not configured.
type NoopMailer struct{}

func NewNoopMailer() *NoopMailer {
	return &NoopMailer{}
}

func (s *NoopMailer) Send(_ string, _ string, _ string, _ string) error {
	return nil
}
