package mailer

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
)

// Service sends itinerary emails over SMTP with implicit TLS (port 465
// semantics, matching the usual Gmail setup).
type Service struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

func (s *Service) Send(to, subject, htmlBody string) error {
	if s.Sender == "" || s.Password == "" {
		return fmt.Errorf("smtp credentials not configured")
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.Host})
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	client, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", s.Sender, s.Password, s.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(s.Sender); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	writer, err := client.Data()
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		s.Sender, to, subject, htmlBody)
	if _, err := writer.Write([]byte(msg)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	return client.Quit()
}
