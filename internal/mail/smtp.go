package mail

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"net/smtp"

	"github.com/badoux/checkmail"
)

var (
	// ErrNotConfigured means sender, credential, or recipient is unset. The
	// run driver logs it as a warning and skips delivery without failing.
	ErrNotConfigured = errors.New("mail not configured")

	// ErrSendFailed wraps any delivery failure. Delivery problems never fail
	// the run; they are logged by the driver.
	ErrSendFailed = errors.New("mail send failed")
)

// Mailer sends HTML mail through an authenticated SMTP relay to a single
// configured recipient.
type Mailer struct {
	Host      string
	Port      string
	Sender    string
	Password  string
	Recipient string
}

// Configured reports whether the mailer has everything it needs to deliver.
func (m *Mailer) Configured() bool {
	return m.Sender != "" && m.Password != "" && m.Recipient != ""
}

// Send delivers one HTML email. It returns ErrNotConfigured when credentials
// or the recipient are missing, and an error wrapping ErrSendFailed when the
// relay rejects the message.
func (m *Mailer) Send(subject, htmlBody string) error {
	if !m.Configured() {
		return ErrNotConfigured
	}
	if err := checkmail.ValidateFormat(m.Recipient); err != nil {
		return fmt.Errorf("%w: invalid recipient %q: %v", ErrSendFailed, m.Recipient, err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.Sender)
	fmt.Fprintf(&msg, "To: %s\r\n", m.Recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	auth := smtp.PlainAuth("", m.Sender, m.Password, m.Host)
	addr := net.JoinHostPort(m.Host, m.Port)

	if err := smtp.SendMail(addr, auth, m.Sender, []string{m.Recipient}, msg.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
