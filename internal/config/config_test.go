package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SITE_WEB_PORT", "PORT", "SITE_WEB_DEV", "DEV", "LOG_LEVEL", "REVALIDATE_TOKEN",
		"CONTENT_API_URL", "CMS_API_URL", "CONTENT_PROJECT_SLUG", "CMS_PROJECT_SLUG",
		"CONTENT_API_KEY", "CMS_API_KEY", "CMS_FALLBACK_FILE", "CMS_TIMEOUT", "SITE_URL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, defaultAPIURL, cfg.CMS.APIURL)
	assert.Equal(t, 10*time.Second, cfg.CMS.Timeout)
	assert.Len(t, cfg.CMS.Missing(), 2)
}

func TestLoadPrefersContentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTENT_API_URL", "https://content.test")
	t.Setenv("CMS_API_URL", "https://cms.test")
	t.Setenv("CMS_PROJECT_SLUG", "acme")
	t.Setenv("CONTENT_API_KEY", "key")
	t.Setenv("PORT", "9000")
	t.Setenv("DEV", "1")
	t.Setenv("CMS_TIMEOUT", "3s")
	t.Setenv("SITE_URL", "https://acme.test/")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "https://content.test", cfg.CMS.APIURL)
	assert.Equal(t, "acme", cfg.CMS.ProjectSlug)
	assert.Equal(t, "key", cfg.CMS.APIKey)
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, 3*time.Second, cfg.CMS.Timeout)
	assert.Equal(t, "https://acme.test", cfg.SiteURL)
	assert.Empty(t, cfg.CMS.Missing())
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("REVALIDATE_TOKEN")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REVALIDATE_TOKEN=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("REVALIDATE_TOKEN") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.RevalidateToken)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("CMS_TIMEOUT", "soon")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
