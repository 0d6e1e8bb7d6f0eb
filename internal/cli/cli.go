package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stjohnspark/court-watch/internal/checker"
	"github.com/stjohnspark/court-watch/internal/config"
	"github.com/stjohnspark/court-watch/internal/logger"
	"github.com/stjohnspark/court-watch/internal/mail"
	"github.com/stjohnspark/court-watch/internal/monitor"
	"github.com/stjohnspark/court-watch/internal/notifier"
	"github.com/stjohnspark/court-watch/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagStateFile string
	flagLogFile   string
	flagDaysAhead int
	flagDryRun    bool
	flagAllDay    bool
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "court-watch",
		Short: "Check St Johns Park for newly-available tennis courts",
		Long: `Checks the Tower Hamlets booking site for St Johns Park tennis courts,
filters availability to bookable evening/weekend windows, and emails a digest
when slots open up that have not been notified before.`,
		SilenceUsage: true,
		RunE:         runCheck,
	}

	cmd.PersistentFlags().StringVar(&flagStateFile, "state-file", "", "Path to the notified-slots state file (default from STATE_FILE)")
	cmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to the run log file (default from LOG_FILE)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().IntVar(&flagDaysAhead, "days-ahead", 0, "Days of availability to fetch (default from DAYS_AHEAD)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the digest instead of sending it")
	cmd.Flags().BoolVar(&flagAllDay, "all-day", false, "Include every available slot in the digest, not just the bookable window")

	cmd.AddCommand(newPreviewCmd())

	return cmd
}

// runCheck is the main command logic: one complete check run.
func runCheck(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyFlags(cfg)

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	m := &monitor.Monitor{
		Checker:   checker.New(cfg.DaysAhead, log),
		Store:     storage.New(cfg.StateFile),
		Notifiers: buildNotifiers(cfg, log),
		Sections: mail.Sections{
			New:      true,
			Filtered: true,
			AllDay:   flagAllDay,
		},
		Log: log,
	}

	return m.Run(cmd.Context())
}

// applyFlags overlays command-line flags onto the environment configuration.
func applyFlags(cfg *config.Config) {
	if flagStateFile != "" {
		cfg.StateFile = flagStateFile
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	if flagDaysAhead > 0 {
		cfg.DaysAhead = flagDaysAhead
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}
}

// buildNotifiers assembles the notification fan-out. Dry-run replaces every
// outbound channel with stdout; Twitter joins email only when all four
// credentials are present.
func buildNotifiers(cfg *config.Config, log *zap.Logger) []notifier.Notifier {
	if flagDryRun {
		return []notifier.Notifier{notifier.NewDryRunNotifier(os.Stdout)}
	}

	notifiers := []notifier.Notifier{
		notifier.NewEmailNotifier(&mail.Mailer{
			Host:      cfg.SMTPServer,
			Port:      cfg.SMTPPort,
			Sender:    cfg.EmailUser,
			Password:  cfg.EmailPassword,
			Recipient: cfg.NotificationEmail,
		}),
	}

	if cfg.TwitterConfigured() {
		tw, err := notifier.NewTwitterNotifier(
			cfg.TwitterAPIKey, cfg.TwitterAPISecret,
			cfg.TwitterAccessToken, cfg.TwitterAccessSecret)
		if err != nil {
			log.Warn("twitter notifier unavailable", zap.Error(err))
		} else {
			notifiers = append(notifiers, tw)
		}
	}

	return notifiers
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
