package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stjohnspark/court-watch/internal/mail"
	"github.com/stjohnspark/court-watch/internal/slot"
)

var flagPreviewOut string

// newPreviewCmd creates the preview subcommand, which renders the digest with
// sample data so the email layout can be checked in a browser without a run.
func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a sample digest email to a file",
		RunE:  runPreview,
	}
	cmd.Flags().StringVarP(&flagPreviewOut, "out", "o", "email_preview.html", "Output HTML file ('-' for stdout)")
	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	digest := sampleDigest()

	sections := mail.Sections{New: true, Filtered: true, AllDay: flagAllDay}
	if flagAllDay {
		digest.AllDay = append(digest.Filtered,
			slot.Slot{Date: "2025-09-06", Time: "10:00", Court: "Court 1"})
	}

	html, err := mail.Render(digest, sections)
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}

	if flagPreviewOut == "-" {
		fmt.Fprint(cmd.OutOrStdout(), html)
		return nil
	}

	if err := os.WriteFile(flagPreviewOut, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Preview written to %s\n", flagPreviewOut)
	return nil
}

// sampleDigest fabricates a plausible two-day digest: one brand-new slot plus
// slots already seen, so the NEW badge styling shows up in the preview.
func sampleDigest() mail.Digest {
	fresh := []slot.Slot{
		{Date: "2025-09-05", Time: "19:00", Court: "Court 2"},
	}
	inWindow := []slot.Slot{
		{Date: "2025-09-05", Time: "17:00", Court: "Court 1"},
		{Date: "2025-09-05", Time: "19:00", Court: "Court 2"},
		{Date: "2025-09-06", Time: "9am", Court: "Court 1"},
		{Date: "2025-09-06", Time: "8pm", Court: "Court 2"},
	}

	return mail.Digest{
		CheckedAt: time.Now().UTC(),
		New:       fresh,
		Filtered:  inWindow,
	}
}
