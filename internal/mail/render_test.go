package mail

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stjohnspark/court-watch/internal/slot"
)

var allSections = Sections{New: true, Filtered: true, AllDay: true}

func TestRenderMarksExactlyTheNewSlots(t *testing.T) {
	newSlot := slot.Slot{Date: "2025-09-05", Time: "17:30", Court: "Court 1"}
	existing := slot.Slot{Date: "2025-09-05", Time: "18:00", Court: "Court 3"}

	html, err := Render(Digest{
		CheckedAt: time.Date(2025, 9, 5, 16, 0, 0, 0, time.UTC),
		New:       []slot.Slot{newSlot},
		Filtered:  []slot.Slot{newSlot, existing},
	}, Sections{New: true, Filtered: true})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := strings.Count(html, ">NEW</span>"); got != 1 {
		t.Errorf("expected exactly 1 NEW badge, got %d:\n%s", got, html)
	}
	if !strings.Contains(html, "New Courts Available") {
		t.Error("expected the new-slots section header")
	}
	if !strings.Contains(html, BookingURL) {
		t.Error("expected the booking call-to-action link")
	}
	if !strings.Contains(html, "Check Time:</strong> 2025-09-05 16:00:00 UTC") {
		t.Error("expected the check timestamp in the header")
	}
}

func TestRenderEmptyNewOmitsSection(t *testing.T) {
	filtered := []slot.Slot{
		{Date: "2025-09-05", Time: "18:00", Court: "Court 3"},
	}

	html, err := Render(Digest{CheckedAt: time.Now().UTC(), Filtered: filtered}, allSections)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if strings.Contains(html, "New Courts Available") {
		t.Error("new-slots section should be omitted when there are no new slots")
	}
	if strings.Contains(html, "NEW</span>") {
		t.Error("no badge should be rendered when there are no new slots")
	}
	if !strings.Contains(html, "All Available Courts") {
		t.Error("filtered section should still render")
	}
}

func TestRenderEmptyDigestDoesNotFail(t *testing.T) {
	html, err := Render(Digest{CheckedAt: time.Now().UTC()}, allSections)
	if err != nil {
		t.Fatalf("Render on empty digest failed: %v", err)
	}

	if !strings.Contains(html, "St Johns Park Tennis Court Update") {
		t.Error("header should render even with no slots")
	}
	if !strings.Contains(html, "New Slots: 0") {
		t.Error("summary should report zero new slots")
	}
}

func TestRenderSectionsToggleOutput(t *testing.T) {
	slots := []slot.Slot{
		{Date: "2025-09-05", Time: "17:30", Court: "Court 1"},
	}
	digest := Digest{
		CheckedAt: time.Now().UTC(),
		New:       slots,
		Filtered:  slots,
		AllDay:    slots,
	}

	html, err := Render(digest, Sections{New: true})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(html, "New Courts Available") {
		t.Error("enabled new section should render")
	}
	if strings.Contains(html, "All Available Courts") {
		t.Error("disabled filtered section should not render")
	}
	if strings.Contains(html, "All Available Slots") {
		t.Error("disabled all-day section should not render")
	}
}

func TestRenderGroupsByDateSortedByTime(t *testing.T) {
	filtered := []slot.Slot{
		{Date: "2025-09-06", Time: "8pm", Court: "Court 4"},
		{Date: "2025-09-05", Time: "19:00", Court: "Court 2"},
		{Date: "2025-09-05", Time: "17:30", Court: "Court 1"},
	}

	html, err := Render(Digest{CheckedAt: time.Now().UTC(), Filtered: filtered}, allSections)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	fri := strings.Index(html, "2025-09-05")
	sat := strings.Index(html, "2025-09-06")
	if fri == -1 || sat == -1 || fri > sat {
		t.Errorf("expected date buckets in ascending order, got fri=%d sat=%d", fri, sat)
	}

	early := strings.Index(html, "17:30")
	late := strings.Index(html, "19:00")
	if early == -1 || late == -1 || early > late {
		t.Errorf("expected times sorted within a date bucket, got 17:30=%d 19:00=%d", early, late)
	}
}

func TestRenderError(t *testing.T) {
	when := time.Date(2025, 9, 5, 16, 0, 0, 0, time.UTC)
	html, err := RenderError(when, errors.New("session refused"))
	if err != nil {
		t.Fatalf("RenderError failed: %v", err)
	}

	if !strings.Contains(html, "Tennis Court Monitor Error") {
		t.Error("expected the error header")
	}
	if !strings.Contains(html, "session refused") {
		t.Error("expected the underlying error message")
	}
	if !strings.Contains(html, "2025-09-05 16:00:00 UTC") {
		t.Error("expected the failure timestamp")
	}
}
