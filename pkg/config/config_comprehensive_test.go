package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
apod:
  domain: https://mirror.example.com
  params:
    - key: mode
      value: test
http:
  timeout: 20s
  insecure_skip_verify: false
output:
  directory: /tmp/pictures
  image_file: apod.jpg
  save_metadata: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "https://mirror.example.com", cfg.APOD.Domain)
	assert.Equal(t, []QueryParam{{Key: "mode", Value: "test"}}, cfg.APOD.Params)
	assert.Equal(t, 20*time.Second, cfg.HTTP.Timeout)
	assert.False(t, cfg.HTTP.InsecureSkipVerify)
	assert.Equal(t, "/tmp/pictures", cfg.Output.Directory)
	assert.Equal(t, "apod.jpg", cfg.Output.ImageFile)
	assert.True(t, cfg.Output.SaveMetadata)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched keys keep their defaults
	assert.Equal(t, "nasa_image_fallback.jpg", cfg.Output.FallbackFile)
}

func TestLoadFromFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("apod: [unclosed"), 0644))

		cfg := DefaultConfig()
		err := cfg.LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestLoadFromFileSearchesDefaultLocations(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	testChdir(t, t.TempDir())

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromFile(""))
	assert.Equal(t, DefaultConfig(), cfg)

	out, err := yaml.Marshal(map[string]interface{}{
		"output": map[string]interface{}{"directory": "/from/home"},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".apodwall.yaml"), out, 0644))

	cfg = DefaultConfig()
	require.NoError(t, cfg.LoadFromFile(""))
	assert.Equal(t, "/from/home", cfg.Output.Directory)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty domain",
			mutate:  func(c *Config) { c.APOD.Domain = "" },
			wantErr: "apod domain is required",
		},
		{
			name:    "domain without host",
			mutate:  func(c *Config) { c.APOD.Domain = "apod.nasa.gov" },
			wantErr: "apod domain must include scheme and host",
		},
		{
			name:    "empty param key",
			mutate:  func(c *Config) { c.APOD.Params = []QueryParam{{Value: "x"}} },
			wantErr: "query parameter key cannot be empty",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.HTTP.Timeout = -time.Second },
			wantErr: "http timeout cannot be negative",
		},
		{
			name:    "empty output directory",
			mutate:  func(c *Config) { c.Output.Directory = "" },
			wantErr: "output directory is required",
		},
		{
			name:    "empty image file",
			mutate:  func(c *Config) { c.Output.ImageFile = "" },
			wantErr: "image file name is required",
		},
		{
			name:    "empty fallback file",
			mutate:  func(c *Config) { c.Output.FallbackFile = "" },
			wantErr: "fallback file name is required",
		},
		{
			name:    "same image and fallback",
			mutate:  func(c *Config) { c.Output.FallbackFile = c.Output.ImageFile },
			wantErr: "must differ",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "chatty" },
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	testChdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output:
  directory: /from/file
  image_file: file.jpg
logging:
  level: info
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("APODWALL_OUTPUT_DIR", "/from/env")
	t.Setenv("APODWALL_LOG_LEVEL", "debug")

	cfg, err := Load(path, map[string]interface{}{"log-level": "error"})
	require.NoError(t, err)

	assert.Equal(t, "file.jpg", cfg.Output.ImageFile)
	assert.Equal(t, "/from/env", cfg.Output.Directory)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadReadsDotEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	testChdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APODWALL_IMAGE_FILE=dotenv.jpg\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("APODWALL_IMAGE_FILE") })

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "dotenv.jpg", cfg.Output.ImageFile)
}

func TestLoadValidationFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())

	_, err := Load("", map[string]interface{}{"log-level": "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}
