package checker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/stjohnspark/court-watch/internal/slot"
)

const (
	// BaseURL is the public booking page for the St Johns Park courts. Day
	// pages live under it as BaseURL/<ISO date>.
	BaseURL   = "https://tennistowerhamlets.com/book/courts/st-johns-park"
	UserAgent = "court-watch/1.0 (github.com/stjohnspark/court-watch)"
	Timeout   = 30 * time.Second
)

// Client fetches and parses the booking pages. It carries a cookie jar so the
// session established by InitializeSession is reused by later requests.
type Client struct {
	http      *http.Client
	baseURL   string
	daysAhead int
	log       *zap.Logger
}

// New creates a Client that checks the next daysAhead dates.
func New(daysAhead int, log *zap.Logger) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		http: &http.Client{
			Timeout: Timeout,
			Jar:     jar,
		},
		baseURL:   BaseURL,
		daysAhead: daysAhead,
		log:       log,
	}
}

// InitializeSession fetches the booking page once so the server issues the
// session cookies the day pages depend on. A non-200 response is fatal for
// the run.
func (c *Client) InitializeSession(ctx context.Context) error {
	resp, err := c.get(ctx, c.baseURL)
	if err != nil {
		return fmt.Errorf("establishing session: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("establishing session: unexpected status code %d", resp.StatusCode)
	}

	c.log.Debug("session established", zap.String("url", c.baseURL))
	return nil
}

// AllSlotsSummary fetches one day page per date in the lookahead window and
// buckets every slot it finds. Requests are made once each; a failed fetch
// fails the whole summary.
func (c *Client) AllSlotsSummary(ctx context.Context) (*Summary, error) {
	summary := &Summary{CheckedAt: time.Now().UTC()}

	for i := 0; i < c.daysAhead; i++ {
		date := time.Now().AddDate(0, 0, i).Format("2006-01-02")
		pageURL := fmt.Sprintf("%s/%s", c.baseURL, date)

		resp, err := c.get(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetching %s: unexpected status code %d", pageURL, resp.StatusCode)
		}

		err = c.parseDay(resp.Body, date, summary)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
	}

	return summary, nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	return c.http.Do(req)
}

// parseDay extracts the slot cells from one day page into the summary. Cells
// carry their time and court in data attributes and their state as a CSS
// class; a day-level closed banner marks the whole date as closed.
func (c *Client) parseDay(r io.Reader, date string, summary *Summary) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("parsing HTML for %s: %w", date, err)
	}

	if doc.Find(".closed-day").Length() > 0 {
		summary.ClosedDays = append(summary.ClosedDays, date)
		return nil
	}

	doc.Find("td.slot, div.slot").Each(func(_ int, sel *goquery.Selection) {
		timeLabel, _ := sel.Attr("data-time")
		court, _ := sel.Attr("data-court")
		if timeLabel == "" {
			// Older markup keeps the time label in the cell text.
			timeLabel = strings.TrimSpace(sel.Text())
		}
		if timeLabel == "" || court == "" {
			return
		}

		s := slot.Slot{Date: date, Time: timeLabel, Court: court}
		switch {
		case sel.HasClass("available"):
			summary.AvailableSlots = append(summary.AvailableSlots, s)
		case sel.HasClass("session"):
			summary.SessionSlots = append(summary.SessionSlots, s)
		case sel.HasClass("booked"):
			summary.BookedSlots = append(summary.BookedSlots, s)
		}
	})

	return nil
}
