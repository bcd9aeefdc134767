package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pfrederiksen/sa-calendars/internal/config"
	"github.com/pfrederiksen/sa-calendars/internal/logging"
	"github.com/pfrederiksen/sa-calendars/internal/notifier"
	"github.com/pfrederiksen/sa-calendars/internal/storage"
	"github.com/pfrederiksen/sa-calendars/internal/updater"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig     string
	flagOutputDir  string
	flagYear       int
	flagFormat     string
	flagSkipNotify bool
	flagDryRun     bool
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sa-calendars",
		Short: "Generate South Australian public holiday and school term calendars",
		Long: `A CLI tool that fetches South Australian public holidays and school term
dates from government and mirror sources, generates iCalendar files and
reports what changed since the last run.`,
		RunE: runUpdate,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Directory for generated calendars (overrides config)")
	cmd.Flags().IntVar(&flagYear, "year", 0, "School year to fetch (default: current year in Adelaide)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagSkipNotify, "skip-notify", false, "Do not send notifications")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print notifications instead of sending them")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runUpdate is the main command logic
func runUpdate(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	logger, err := logging.New(flagVerbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if flagYear != 0 {
		cfg.TermsYear = flagYear
	}

	store, err := storage.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	notify := buildNotifier(logger)

	u := updater.New(cfg, store, notify, logger)
	result, runErr := u.Run(cmd.Context())

	if err := WriteReport(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return runErr
}

// buildNotifier picks the notifier implementation for this run. Missing
// credentials disable notifications with a warning rather than failing.
func buildNotifier(logger *zap.SugaredLogger) notifier.Notifier {
	if flagSkipNotify {
		return nil
	}
	if flagDryRun {
		return notifier.NewDryRunNotifier()
	}

	if token, user := config.LoadCredentials(); token == "" || user == "" {
		logger.Warnw("Pushover credentials not set, skipping notifications")
		return nil
	}
	n, err := notifier.NewPushoverNotifier()
	if err != nil {
		logger.Warnw("notifications disabled", "error", err)
		return nil
	}
	return n
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
