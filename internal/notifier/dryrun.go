package notifier

import (
	"fmt"
	"io"
)

// DryRunNotifier prints what would be sent without opening any connection.
type DryRunNotifier struct {
	Out io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to out.
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{Out: out}
}

// Notify prints the subject and body instead of delivering them.
func (n *DryRunNotifier) Notify(subject, htmlBody string) error {
	fmt.Fprintf(n.Out, "--- %s ---\n", subject)
	fmt.Fprintln(n.Out, htmlBody)
	fmt.Fprintf(n.Out, "(Length: %d bytes)\n", len(htmlBody))
	return nil
}
