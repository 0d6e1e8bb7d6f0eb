// Package monitor drives a single check run: fetch the slot summary, filter
// it to the bookable time windows, diff against the persisted state, and fan
// out notifications for anything new.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/stjohnspark/court-watch/internal/checker"
	"github.com/stjohnspark/court-watch/internal/mail"
	"github.com/stjohnspark/court-watch/internal/notifier"
	"github.com/stjohnspark/court-watch/internal/slot"
	"github.com/stjohnspark/court-watch/internal/storage"
)

// Monitor holds every collaborator of a run. All fields are injected so the
// run carries its own context rather than reaching for globals.
type Monitor struct {
	Checker   checker.Checker
	Store     *storage.Store
	Notifiers []notifier.Notifier
	Sections  mail.Sections
	Log       *zap.Logger

	// Now supplies the run timestamp; defaults to time.Now.
	Now func() time.Time
}

// Run performs one complete check. It returns an error only when the run
// itself failed (session or fetch); notification and state-write problems are
// logged and do not fail the run.
func (m *Monitor) Run(ctx context.Context) error {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}

	if err := m.Checker.InitializeSession(ctx); err != nil {
		err = fmt.Errorf("initializing session: %w", err)
		m.Log.Error("run failed", zap.Error(err))
		m.sendErrorMail(now(), err)
		return err
	}

	summary, err := m.Checker.AllSlotsSummary(ctx)
	if err != nil {
		err = fmt.Errorf("fetching slot summary: %w", err)
		m.Log.Error("run failed", zap.Error(err))
		m.sendErrorMail(now(), err)
		return err
	}

	m.Log.Info("slot summary",
		zap.Int("available", len(summary.AvailableSlots)),
		zap.Int("booked", len(summary.BookedSlots)),
		zap.Int("sessions", len(summary.SessionSlots)),
		zap.Int("closed_days", len(summary.ClosedDays)))
	m.Log.Info(checker.FormatSummaryReport(summary))

	filtered, skipped := slot.FilterWindow(summary.AvailableSlots)
	for _, s := range skipped {
		m.Log.Warn("unparseable slot time, skipping",
			zap.String("date", s.Date), zap.String("time", s.Time), zap.String("court", s.Court))
	}

	previous, err := m.Store.Load()
	if err != nil {
		if errors.Is(err, storage.ErrCorruptState) {
			m.Log.Warn("state file unreadable, treating every slot as new", zap.Error(err))
		} else {
			m.Log.Warn("loading state", zap.Error(err))
		}
	}

	fresh := slot.Diff(previous, filtered)

	// The state file mirrors the current filtered set after every run, so
	// slots that close and later reopen notify again.
	if err := m.Store.Save(slot.IDs(filtered)); err != nil {
		m.Log.Error("saving state", zap.Error(err), zap.String("path", m.Store.Path()))
	}

	if len(fresh) == 0 {
		switch {
		case len(filtered) > 0:
			m.Log.Info("courts available in window but none new, no notification",
				zap.Int("in_window", len(filtered)))
		case len(summary.AvailableSlots) > 0:
			m.Log.Info("courts available but all outside the bookable window",
				zap.Int("available", len(summary.AvailableSlots)))
		default:
			m.Log.Info("no available courts")
		}
		return nil
	}

	m.Log.Info("new courts found", zap.Int("new", len(fresh)), zap.Int("in_window", len(filtered)))

	digest := mail.Digest{
		CheckedAt: summary.CheckedAt,
		New:       fresh,
		Filtered:  filtered,
	}
	if m.Sections.AllDay {
		digest.AllDay = summary.AvailableSlots
	}

	body, err := mail.Render(digest, m.Sections)
	if err != nil {
		m.Log.Error("rendering digest", zap.Error(err))
		return nil
	}

	subject := fmt.Sprintf("🎾 %d New Tennis Courts Available at St Johns Park!", len(fresh))
	m.notify(subject, body)
	return nil
}

// notify fans the message out to every notifier. An unconfigured notifier is
// skipped quietly; a failing one is logged and the rest still run.
func (m *Monitor) notify(subject, body string) {
	for _, n := range m.Notifiers {
		if err := n.Notify(subject, body); err != nil {
			if errors.Is(err, mail.ErrNotConfigured) {
				m.Log.Warn("email configuration incomplete, skipping notification")
				continue
			}
			m.Log.Error("sending notification", zap.Error(err))
			continue
		}
		m.Log.Info("notification sent", zap.String("subject", subject))
	}
}

// sendErrorMail notifies about a failed run on a best-effort basis. Errors
// here are logged and otherwise ignored: the run failure is what matters.
func (m *Monitor) sendErrorMail(when time.Time, runErr error) {
	body, err := mail.RenderError(when, runErr)
	if err != nil {
		m.Log.Error("rendering error notification", zap.Error(err))
		return
	}
	m.notify("⚠️ Tennis Court Monitor Error", body)
}
