package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"apodwall/pkg/config"
	"apodwall/pkg/ui"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
		Long: `Inspect the apodwall configuration.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (APODWALL_*)
  - .env files
  - Configuration file
  - Default values (lowest priority)`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, opts)
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Long: `Load the configuration from every source and report whether it is valid.

This command checks:
  - YAML syntax
  - Environment variable values
  - Required fields and value ranges`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigValidate(cmd, opts)
		},
	}

	configCmd.AddCommand(showCmd, validateCmd)
	return configCmd
}

func runConfigShow(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configFile, nil)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	console := newCommandConsole(cmd, opts)
	console.PrintHighlight("Current Configuration")
	fmt.Fprint(out, string(data))

	fmt.Fprintln(out, "\nConfiguration sources (in order of priority):")
	fmt.Fprintln(out, "1. Command line flags")
	fmt.Fprintf(out, "2. Environment variables (%s*)\n", config.EnvPrefix)
	if opts.configFile != "" {
		fmt.Fprintf(out, "3. Configuration file: %s\n", opts.configFile)
	} else {
		fmt.Fprintln(out, "3. Configuration file: (searched in default locations)")
	}
	fmt.Fprintln(out, "4. Default values")
	return nil
}

func runConfigValidate(cmd *cobra.Command, opts *rootOptions) error {
	console := newCommandConsole(cmd, opts)

	cfg, err := config.Load(opts.configFile, nil)
	if err != nil {
		console.PrintError("Configuration validation failed")
		return err
	}

	if cfg.HTTP.InsecureSkipVerify {
		console.PrintWarning("TLS certificates are not verified (http.insecure_skip_verify)")
	}
	console.PrintSuccess("Configuration is valid")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nConfiguration summary:")
	fmt.Fprintf(out, "  Domain: %s\n", cfg.APOD.Domain)
	fmt.Fprintf(out, "  Output directory: %s\n", cfg.Output.Directory)
	fmt.Fprintf(out, "  Image file: %s\n", cfg.Output.ImageFile)
	fmt.Fprintf(out, "  Fallback file: %s\n", cfg.Output.FallbackFile)
	fmt.Fprintf(out, "  Log level: %s\n", cfg.Logging.Level)
	return nil
}

func newCommandConsole(cmd *cobra.Command, opts *rootOptions) *ui.Console {
	console := ui.NewConsole(cmd.OutOrStdout())
	if opts.noColor {
		console.SetColor(false)
	}
	console.SetQuiet(opts.quiet)
	return console
}
