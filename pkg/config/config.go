package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable the tool reads
const EnvPrefix = "APODWALL_"

// Config holds all configuration options for apodwall
type Config struct {
	// Picture source
	APOD APODConfig `yaml:"apod" json:"apod"`

	// Outbound HTTP settings
	HTTP HTTPConfig `yaml:"http" json:"http"`

	// Output files
	Output OutputConfig `yaml:"output" json:"output"`

	// Notification preferences
	Notifications NotificationConfig `yaml:"notifications" json:"notifications"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// APODConfig describes where the daily page lives
type APODConfig struct {
	Domain string `yaml:"domain" json:"domain"`
	// Params are appended to the page URL in order. The server ignores them.
	Params []QueryParam `yaml:"params" json:"params"`
}

// QueryParam is a single ordered query parameter
type QueryParam struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// HTTPConfig holds outbound request settings
type HTTPConfig struct {
	// Timeout of zero leaves the transport defaults in charge.
	Timeout            time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent          string        `yaml:"user_agent" json:"user_agent"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify" json:"insecure_skip_verify"`
}

// OutputConfig holds output file configuration
type OutputConfig struct {
	Directory    string `yaml:"directory" json:"directory"`
	ImageFile    string `yaml:"image_file" json:"image_file"`
	FallbackFile string `yaml:"fallback_file" json:"fallback_file"`
	SaveMetadata bool   `yaml:"save_metadata" json:"save_metadata"`
}

// NotificationConfig holds notification preferences
type NotificationConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultParams returns the query parameters the page URL has always carried
func DefaultParams() []QueryParam {
	return []QueryParam{
		{Key: "mode", Value: "prod"},
		{Key: "id", Value: "000000"},
		{Key: "new", Value: "true"},
	}
}

// DefaultConfig returns a Config instance that reproduces the stock behavior
func DefaultConfig() *Config {
	return &Config{
		APOD: APODConfig{
			Domain: "https://apod.nasa.gov",
			Params: DefaultParams(),
		},
		HTTP: HTTPConfig{
			Timeout:            0,
			UserAgent:          "apodwall/1.0",
			InsecureSkipVerify: true,
		},
		Output: OutputConfig{
			Directory:    ".",
			ImageFile:    "nasa_image.jpg",
			FallbackFile: "nasa_image_fallback.jpg",
			SaveMetadata: false,
		},
		Notifications: NotificationConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	var errs []error

	if domain := os.Getenv(EnvPrefix + "DOMAIN"); domain != "" {
		c.APOD.Domain = domain
	}
	if timeout := os.Getenv(EnvPrefix + "HTTP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sHTTP_TIMEOUT: %w", EnvPrefix, err))
		} else {
			c.HTTP.Timeout = d
		}
	}
	if userAgent := os.Getenv(EnvPrefix + "USER_AGENT"); userAgent != "" {
		c.HTTP.UserAgent = userAgent
	}
	if insecure := os.Getenv(EnvPrefix + "INSECURE_SKIP_VERIFY"); insecure != "" {
		v, err := strconv.ParseBool(insecure)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sINSECURE_SKIP_VERIFY: %w", EnvPrefix, err))
		} else {
			c.HTTP.InsecureSkipVerify = v
		}
	}

	if dir := os.Getenv(EnvPrefix + "OUTPUT_DIR"); dir != "" {
		c.Output.Directory = dir
	}
	if name := os.Getenv(EnvPrefix + "IMAGE_FILE"); name != "" {
		c.Output.ImageFile = name
	}
	if name := os.Getenv(EnvPrefix + "FALLBACK_FILE"); name != "" {
		c.Output.FallbackFile = name
	}
	if save := os.Getenv(EnvPrefix + "SAVE_METADATA"); save != "" {
		c.Output.SaveMetadata = strings.ToLower(save) == "true"
	}

	if notif := os.Getenv(EnvPrefix + "NOTIFICATIONS_ENABLED"); notif != "" {
		c.Notifications.Enabled = strings.ToLower(notif) == "true"
	}

	if logLevel := os.Getenv(EnvPrefix + "LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv(EnvPrefix + "LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return errors.Join(errs...)
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	home := os.Getenv("HOME")
	locations := []string{
		".apodwall.yaml",
		".apodwall.yml",
		filepath.Join(home, ".config", "apodwall", "config.yaml"),
		filepath.Join(home, ".config", "apodwall", "config.yml"),
		filepath.Join(home, ".apodwall.yaml"),
		filepath.Join(home, ".apodwall.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.APOD.Domain)
	switch {
	case c.APOD.Domain == "":
		errs = append(errs, errors.New("apod domain is required"))
	case err != nil:
		errs = append(errs, fmt.Errorf("apod domain is not a valid URL: %w", err))
	case u.Host == "":
		errs = append(errs, errors.New("apod domain must include scheme and host"))
	}
	for _, p := range c.APOD.Params {
		if p.Key == "" {
			errs = append(errs, errors.New("apod query parameter key cannot be empty"))
		}
	}

	if c.HTTP.Timeout < 0 {
		errs = append(errs, errors.New("http timeout cannot be negative"))
	}

	if c.Output.Directory == "" {
		errs = append(errs, errors.New("output directory is required"))
	}
	if c.Output.ImageFile == "" {
		errs = append(errs, errors.New("image file name is required"))
	}
	if c.Output.FallbackFile == "" {
		errs = append(errs, errors.New("fallback file name is required"))
	}
	if c.Output.ImageFile != "" && c.Output.ImageFile == c.Output.FallbackFile {
		errs = append(errs, errors.New("image file and fallback file must differ"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	return errors.Join(errs...)
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if domain, ok := flags["domain"].(string); ok && domain != "" {
		c.APOD.Domain = domain
	}
	if dir, ok := flags["output"].(string); ok && dir != "" {
		c.Output.Directory = dir
	}
	// An explicit zero timeout means none and overrides lower layers
	if timeout, ok := flags["timeout"].(time.Duration); ok {
		c.HTTP.Timeout = timeout
	}
	if save, ok := flags["save-metadata"].(bool); ok {
		c.Output.SaveMetadata = save
	}
	if notif, ok := flags["notifications"].(bool); ok {
		c.Notifications.Enabled = notif
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Missing .env files are fine
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".apodwall.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
