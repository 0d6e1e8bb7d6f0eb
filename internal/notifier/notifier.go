package notifier

// Notifier delivers a rendered digest to one output channel.
type Notifier interface {
	// Notify sends a digest with the given subject line and HTML body.
	Notify(subject, htmlBody string) error
}
