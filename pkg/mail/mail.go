// Package mail sends transactional email (order confirmations) over SMTP
// with a small fluent builder.
//
//	err := mail.New().
//	    To(order.CustomerEmail).
//	    Subject("Your order is confirmed").
//	    HTML(body).
//	    Send()
package mail

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/config"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
)

// Sender delivers a composed message. Swapped out in tests.
type Sender func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

var sender Sender = smtp.SendMail

// SetSender replaces the delivery function. Tests use this to capture
// outgoing mail instead of dialing an SMTP server.
func SetSender(s Sender) { sender = s }

// Message is a fluent email builder.
type Message struct {
	from    string
	to      []string
	subject string
	html    string
	text    string
}

// New starts a message from the configured sender address.
func New() *Message {
	return &Message{from: config.MailFrom()}
}

// From overrides the sender address.
func (m *Message) From(addr string) *Message { m.from = addr; return m }

// To adds recipient addresses.
func (m *Message) To(addrs ...string) *Message { m.to = append(m.to, addrs...); return m }

// Subject sets the subject line.
func (m *Message) Subject(s string) *Message { m.subject = s; return m }

// HTML sets an HTML body.
func (m *Message) HTML(body string) *Message { m.html = body; return m }

// Text sets a plain-text body.
func (m *Message) Text(body string) *Message { m.text = body; return m }

// Send composes and delivers the message via the configured SMTP host.
func (m *Message) Send() error {
	if len(m.to) == 0 {
		return errors.New("mail: no recipients")
	}
	if m.from == "" {
		return errors.New("mail: no sender address, set MAIL_FROM")
	}

	host, port := config.MailHost(), config.MailPort()
	if host == "" {
		// No SMTP configured. Log and drop instead of failing the job so
		// local development works without a mail server.
		logger.Warn("mail: MAIL_HOST not set, dropping message",
			"to", strings.Join(m.to, ","), "subject", m.subject)
		return nil
	}

	var auth smtp.Auth
	if user := config.MailUsername(); user != "" {
		auth = smtp.PlainAuth("", user, config.MailPassword(), host)
	}

	msg := m.compose()
	addr := fmt.Sprintf("%s:%s", host, port)
	if err := sender(addr, auth, m.from, m.to, msg); err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}

	logger.Info("mail: sent", "to", strings.Join(m.to, ","), "subject", m.subject)
	return nil
}

func (m *Message) compose() []byte {
	var b strings.Builder
	b.WriteString("From: " + m.from + "\r\n")
	b.WriteString("To: " + strings.Join(m.to, ", ") + "\r\n")
	b.WriteString("Subject: " + m.subject + "\r\n")
	b.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	if m.html != "" {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(m.html)
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(m.text)
	}
	b.WriteString("\r\n")
	return []byte(b.String())
}
