package notifier

import "github.com/stjohnspark/court-watch/internal/mail"

// EmailNotifier sends digests through a mail.Mailer.
type EmailNotifier struct {
	mailer *mail.Mailer
}

// NewEmailNotifier creates an email notifier.
func NewEmailNotifier(m *mail.Mailer) *EmailNotifier {
	return &EmailNotifier{mailer: m}
}

// Notify delivers the digest to the configured recipient. The mailer's
// sentinel errors pass through so the driver can tell "not configured" from
// a real delivery failure.
func (n *EmailNotifier) Notify(subject, htmlBody string) error {
	return n.mailer.Send(subject, htmlBody)
}
