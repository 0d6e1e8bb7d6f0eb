// Package notifier defines the delivery channels for rendered digests: email
// over SMTP, an optional Twitter post, and a dry-run channel for local use.
package notifier
