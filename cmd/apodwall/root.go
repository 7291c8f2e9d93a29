package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"apodwall/pkg/config"
	"apodwall/pkg/logger"
	"apodwall/pkg/runner"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// dateLayout is the format accepted by --date
const dateLayout = "2006-01-02"

// rootOptions holds the values of every command line flag
type rootOptions struct {
	configFile    string
	logLevel      string
	verbose       bool
	quiet         bool
	noColor       bool
	date          string
	domain        string
	output        string
	timeout       time.Duration
	saveMetadata  bool
	notifications bool
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&rootOptions{})
}

// buildRootCmd binds every flag to opts
func buildRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apodwall",
		Short: "Set the Astronomy Picture of the Day as your desktop background",
		Long: `apodwall downloads today's Astronomy Picture of the Day, prints its
explanation and sets the picture as the desktop background.

When the page has no picture (for example on video days) the previously
saved nasa_image_fallback.jpg is used instead. Setting the wallpaper is
only implemented on Windows; other platforms report a failure.`,
		Example: `  # Fetch today's picture into the current directory
  apodwall

  # Fetch a given day into ~/Pictures and keep a JSON sidecar
  apodwall --date 2025-01-01 --output ~/Pictures --save-metadata`,
		Args:          cobra.NoArgs,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./.apodwall.yaml or $HOME/.config/apodwall/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error, disabled)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "show the logo and debug logs")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.Flags().StringVar(&opts.date, "date", "", "fetch the picture of this day (YYYY-MM-DD) instead of today")
	cmd.Flags().StringVar(&opts.domain, "domain", "", "scheme and host serving the APOD pages")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "directory the picture is written to (default: current directory)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout, 0 means none")
	cmd.Flags().BoolVar(&opts.saveMetadata, "save-metadata", false, "write a JSON sidecar with the caption next to the picture")
	cmd.Flags().BoolVar(&opts.notifications, "notifications", false, "send a desktop notification with the outcome")

	cmd.SetVersionTemplate(`apodwall {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// configFlags collects the flags the user actually set, keyed the way
// config.MergeCommandLineFlags expects them
func (o *rootOptions) configFlags(cmd *cobra.Command) map[string]interface{} {
	flags := make(map[string]interface{})
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("domain") {
		flags["domain"] = o.domain
	}
	if changed("output") {
		flags["output"] = o.output
	}
	if changed("timeout") {
		flags["timeout"] = o.timeout
	}
	if changed("save-metadata") {
		flags["save-metadata"] = o.saveMetadata
	}
	if changed("notifications") {
		flags["notifications"] = o.notifications
	}

	switch {
	case changed("log-level"):
		flags["log-level"] = o.logLevel
	case o.quiet:
		flags["log-level"] = "error"
	case o.verbose:
		flags["log-level"] = "debug"
	}
	return flags
}

// parseDate reads a --date value as a local calendar day
func parseDate(value string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return d, nil
}

func runApply(cmd *cobra.Command, opts *rootOptions) error {
	var runOpts []runner.Option
	if opts.date != "" {
		day, err := parseDate(opts.date)
		if err != nil {
			return err
		}
		runOpts = append(runOpts, runner.WithDate(day))
	}

	cfg, err := config.Load(opts.configFile, opts.configFlags(cmd))
	if err != nil {
		return err
	}

	logger.Version = version
	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.WithField("run_id", uuid.NewString())
	logger.SetLogger(log)

	console := newCommandConsole(cmd, opts)
	if opts.verbose {
		console.PrintLogo()
	}

	r, err := runner.New(cfg, console, log, runOpts...)
	if err != nil {
		logger.WithError(err).Error("Failed to prepare run")
		return err
	}

	log.DebugWithFields("apodwall starting", map[string]interface{}{
		"domain": cfg.APOD.Domain,
		"output": cfg.Output.Directory,
	})
	report, err := r.Run()
	if err != nil {
		return err
	}

	log.InfoWithFields("Run finished", map[string]interface{}{
		"page":     report.PageURL,
		"file":     report.Selection.Path,
		"fallback": report.Selection.Fallback,
		"applied":  report.Wallpaper.Applied,
	})
	return nil
}
