package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the API endpoint used when no base URL is
// configured
const DefaultBaseURL = "https://api.github.com"

// Config represents the client configuration
type Config struct {
	BaseURL   string        `json:"base_url" yaml:"base_url"`
	Token     string        `json:"token" yaml:"token"`
	UserAgent string        `json:"user_agent" yaml:"user_agent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// Default returns the configuration used when no file and no
// environment overrides are present
func Default() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: "gistkit",
		Timeout:   30 * time.Second,
	}
}

// Load reads configuration from the given path. An empty path falls
// back to $GISTKIT_CONFIG and then to the default location under the
// user config directory; a file that does not exist is skipped.
// Environment variables are applied on top of whatever was read.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		path = os.Getenv("GISTKIT_CONFIG")
	}
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			candidate := filepath.Join(dir, "gistkit", "config.yaml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := parse(data, path, config); err != nil {
			return nil, err
		}
	}

	applyEnv(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// parse decodes configuration data. The format is determined by the
// file extension in path; unknown extensions are tried as YAML.
func parse(data []byte, path string, config *Config) error {
	// Durations come in as strings ("30s"), so decode through a
	// shadow struct first
	var raw struct {
		BaseURL   string `json:"base_url" yaml:"base_url"`
		Token     string `json:"token" yaml:"token"`
		UserAgent string `json:"user_agent" yaml:"user_agent"`
		Timeout   string `json:"timeout" yaml:"timeout"`
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if raw.BaseURL != "" {
		config.BaseURL = raw.BaseURL
	}
	if raw.Token != "" {
		config.Token = raw.Token
	}
	if raw.UserAgent != "" {
		config.UserAgent = raw.UserAgent
	}
	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		config.Timeout = timeout
	}
	return nil
}

// applyEnv layers environment variables over the configuration
func applyEnv(config *Config) {
	if v := os.Getenv("GISTKIT_BASE_URL"); v != "" {
		config.BaseURL = v
	}
	if v := os.Getenv("GISTKIT_TOKEN"); v != "" {
		config.Token = v
	} else if v := os.Getenv("GITHUB_TOKEN"); config.Token == "" && v != "" {
		config.Token = v
	}
	if v := os.Getenv("GISTKIT_USER_AGENT"); v != "" {
		config.UserAgent = v
	}
}

// Validate checks the configuration for values the client cannot run
// with
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid base_url %q: must be an absolute http(s) URL", c.BaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid base_url scheme %q: must be http or https", parsed.Scheme)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %v: must be positive", c.Timeout)
	}
	return nil
}
