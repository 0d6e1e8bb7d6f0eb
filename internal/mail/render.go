// Package mail renders the HTML digest and delivers it over SMTP.
package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/stjohnspark/court-watch/internal/slot"
)

// BookingURL is the call-to-action target in every digest.
const BookingURL = "https://tennistowerhamlets.com/book/courts/st-johns-park"

// Digest is the input to Render: the newly-opened slots, the full filtered
// set, and optionally every available slot regardless of time window.
type Digest struct {
	CheckedAt time.Time
	New       []slot.Slot
	Filtered  []slot.Slot
	AllDay    []slot.Slot
}

// Sections selects which parts of the digest are rendered. The renderer is
// deliberately the only one: variants are expressed by toggling sections, not
// by parallel formatter implementations.
type Sections struct {
	New      bool
	Filtered bool
	AllDay   bool
}

type lineItem struct {
	Time  string
	Court string
	New   bool
}

type dateGroup struct {
	Date  string
	Items []lineItem
}

type digestView struct {
	CheckedAt     string
	BookingURL    string
	New           []dateGroup
	Filtered      []dateGroup
	AllDay        []dateGroup
	NewCount      int
	FilteredCount int
	ShowNew       bool
	ShowFiltered  bool
	ShowAllDay    bool
}

const digestTemplate = `<html>
<head></head>
<body>
  <h2>🎾 St Johns Park Tennis Court Update</h2>
  <p><strong>Check Time:</strong> {{.CheckedAt}}</p>
{{- if and .ShowNew .New}}
  <h3>🆕 New Courts Available!</h3>
{{- range .New}}
  <h4>{{.Date}}</h4>
  <ul>
{{- range .Items}}
    <li><strong>{{.Time}}</strong> - {{.Court}}</li>
{{- end}}
  </ul>
{{- end}}
{{- end}}
{{- if and .ShowFiltered .Filtered}}
  <h3>🌅 All Available Courts In Your Window:</h3>
{{- range .Filtered}}
  <h4>{{.Date}}</h4>
  <ul>
{{- range .Items}}
    <li><strong>{{.Time}}</strong> - {{.Court}}{{if .New}} <span style="background-color: #ff4444; color: white; padding: 2px 6px; border-radius: 3px; font-size: 0.8em;">NEW</span>{{end}}</li>
{{- end}}
  </ul>
{{- end}}
{{- end}}
{{- if and .ShowAllDay .AllDay}}
  <h3>📋 All Available Slots:</h3>
{{- range .AllDay}}
  <h4>{{.Date}}</h4>
  <ul>
{{- range .Items}}
    <li><strong>{{.Time}}</strong> - {{.Court}}</li>
{{- end}}
  </ul>
{{- end}}
{{- end}}
  <p><a href="{{.BookingURL}}" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">🔗 Book Now</a></p>
  <h3>📊 Summary</h3>
  <ul>
    <li>New Slots: {{.NewCount}}</li>
    <li>Slots In Window: {{.FilteredCount}}</li>
  </ul>
  <hr>
  <p><small>Automated check by court-watch</small></p>
</body>
</html>
`

const errorTemplate = `<html><body>
<h2>Tennis Court Monitor Error</h2>
<p><strong>Time:</strong> {{.When}}</p>
<p><strong>Error:</strong> {{.Error}}</p>
</body></html>
`

var (
	digestTmpl = template.Must(template.New("digest").Parse(digestTemplate))
	errorTmpl  = template.Must(template.New("error").Parse(errorTemplate))
)

// Render produces the HTML digest for the enabled sections. Sections whose
// input is empty are omitted; missing optional inputs never cause an error.
func Render(d Digest, sections Sections) (string, error) {
	newIDs := slot.IDSet(d.New)

	view := digestView{
		CheckedAt:     d.CheckedAt.Format("2006-01-02 15:04:05 UTC"),
		BookingURL:    BookingURL,
		New:           groupView(d.New, nil),
		Filtered:      groupView(d.Filtered, newIDs),
		AllDay:        groupView(d.AllDay, nil),
		NewCount:      len(d.New),
		FilteredCount: len(d.Filtered),
		ShowNew:       sections.New,
		ShowFiltered:  sections.Filtered,
		ShowAllDay:    sections.AllDay,
	}

	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering digest: %w", err)
	}
	return buf.String(), nil
}

// RenderError builds the body of the best-effort error notification sent when
// a run fails unexpectedly.
func RenderError(when time.Time, runErr error) (string, error) {
	data := struct {
		When  string
		Error string
	}{
		When:  when.Format("2006-01-02 15:04:05 UTC"),
		Error: runErr.Error(),
	}

	var buf bytes.Buffer
	if err := errorTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering error digest: %w", err)
	}
	return buf.String(), nil
}

// groupView buckets slots by date for the template, marking entries whose
// identifier appears in newIDs so the NEW badge can be attached.
func groupView(slots []slot.Slot, newIDs map[string]struct{}) []dateGroup {
	dates, buckets := slot.GroupByDate(slots)

	groups := make([]dateGroup, 0, len(dates))
	for _, date := range dates {
		g := dateGroup{Date: date}
		for _, s := range buckets[date] {
			_, isNew := newIDs[s.ID()]
			g.Items = append(g.Items, lineItem{Time: s.Time, Court: s.Court, New: isNew})
		}
		groups = append(groups, g)
	}
	return groups
}
