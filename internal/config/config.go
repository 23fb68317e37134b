// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort       = "8080"
	defaultAPIURL     = "https://YOUR_PROJECT.supabase.co/functions/v1/public-content"
	defaultCMSTimeout = 10 * time.Second
)

// Config aggregates application-wide configuration values.
type Config struct {
	Port            string
	DevMode         bool
	LogLevel        string
	RevalidateToken string
	// SiteURL is the public origin used for canonical links and JSON-LD.
	SiteURL string
	CMS     CMSConfig
}

// CMSConfig holds the content API connection settings.
type CMSConfig struct {
	APIURL       string
	ProjectSlug  string
	APIKey       string
	FallbackFile string
	Timeout      time.Duration
}

// Missing lists the settings the CMS client needs but does not have.
func (c CMSConfig) Missing() []string {
	var missing []string
	if c.ProjectSlug == "" {
		missing = append(missing, "CONTENT_PROJECT_SLUG (or CMS_PROJECT_SLUG)")
	}
	if c.APIKey == "" {
		missing = append(missing, "CONTENT_API_KEY (or CMS_API_KEY)")
	}
	return missing
}

// Load reads a .env file when one exists, then the process environment.
// Variables already set in the environment take precedence over .env.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	timeout := defaultCMSTimeout
	if raw := getEnv("CMS_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("config: invalid CMS_TIMEOUT %q", raw)
		}
		timeout = d
	}

	cfg := &Config{
		Port:            firstNonEmpty(getEnv("SITE_WEB_PORT"), getEnv("PORT"), defaultPort),
		DevMode:         getEnv("SITE_WEB_DEV") != "" || getEnv("DEV") != "",
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL")),
		RevalidateToken: getEnv("REVALIDATE_TOKEN"),
		SiteURL:         strings.TrimRight(getEnv("SITE_URL"), "/"),
		CMS: CMSConfig{
			APIURL:       firstNonEmpty(getEnv("CONTENT_API_URL"), getEnv("CMS_API_URL"), defaultAPIURL),
			ProjectSlug:  firstNonEmpty(getEnv("CONTENT_PROJECT_SLUG"), getEnv("CMS_PROJECT_SLUG")),
			APIKey:       firstNonEmpty(getEnv("CONTENT_API_KEY"), getEnv("CMS_API_KEY")),
			FallbackFile: getEnv("CMS_FALLBACK_FILE"),
			Timeout:      timeout,
		},
	}
	return cfg, nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
