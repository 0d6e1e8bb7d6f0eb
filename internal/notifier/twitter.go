package notifier

import (
	"fmt"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/stjohnspark/court-watch/internal/mail"
)

// TwitterNotifier posts a short plain-text version of the digest. It is an
// optional second channel, enabled only when all four credentials are set.
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier builds a notifier from OAuth1 credentials.
func NewTwitterNotifier(apiKey, apiSecret, accessToken, accessSecret string) (*TwitterNotifier, error) {
	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing Twitter credentials")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)

	return &TwitterNotifier{client: twitter.NewClient(httpClient)}, nil
}

// Notify tweets the subject line with the booking link. The HTML body does
// not fit a tweet, so only the subject is posted.
func (n *TwitterNotifier) Notify(subject, _ string) error {
	status := formatStatus(subject)
	if _, _, err := n.client.Statuses.Update(status, nil); err != nil {
		return fmt.Errorf("posting tweet: %w", err)
	}
	return nil
}

func formatStatus(subject string) string {
	status := subject + "\n\n" + mail.BookingURL
	// Twitter limit is 280 characters
	if len(status) > 280 {
		status = status[:277] + "..."
	}
	return status
}
