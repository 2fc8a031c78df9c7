package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("BREVO_API_KEY", "xkeysib-test")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.False(t, cfg.Debug)
	assert.Equal(t, "Brand Bridge API", cfg.ServiceName)
	assert.Equal(t, []string{
		"http://localhost:*",
		"http://127.0.0.1:*",
		"https://*.vercel.app",
		"https://*.netlify.app",
	}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.Equal(t, "xkeysib-test", cfg.Brevo.APIKey)
	assert.Equal(t, "https://api.brevo.com/v3", cfg.Brevo.BaseURL)
	assert.Equal(t, int64(2), cfg.Brevo.ListID)
	assert.Equal(t, 10*time.Second, cfg.Brevo.Timeout)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("BREVO_API_KEY", "xkeysib-test")
	t.Setenv("PORT", "8081")
	t.Setenv("DEBUG", "true")
	t.Setenv("BREVO_LIST_ID", "7")
	t.Setenv("CRM_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "https://eva.example.com")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(7), cfg.Brevo.ListID)
	assert.Equal(t, 3*time.Second, cfg.Brevo.Timeout)
	assert.Equal(t, []string{"https://eva.example.com"}, cfg.AllowedOrigins)
}

func TestParseRequiresAPIKey(t *testing.T) {
	t.Setenv("BREVO_API_KEY", "")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParseRejectsBadListID(t *testing.T) {
	t.Setenv("BREVO_API_KEY", "xkeysib-test")
	t.Setenv("BREVO_LIST_ID", "0")

	_, err := Parse()
	assert.ErrorContains(t, err, "BREVO_LIST_ID")
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BREVO_API_KEY=from-file\nBREVO_LIST_ID=9\n"), 0o600))

	// godotenv never overrides variables that are already set; t.Setenv
	// restores the originals once the test ends
	t.Setenv("BREVO_API_KEY", "")
	require.NoError(t, os.Unsetenv("BREVO_API_KEY"))
	t.Setenv("BREVO_LIST_ID", "")
	require.NoError(t, os.Unsetenv("BREVO_LIST_ID"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Brevo.APIKey)
	assert.Equal(t, int64(9), cfg.Brevo.ListID)
}

func TestParseFallsBackToLegacyNames(t *testing.T) {
	t.Setenv("BREVO_API_KEY", "xkeysib-test")
	t.Setenv("LIST_ID_EVA_MAIN", "12")
	t.Setenv("FLASK_DEBUG", "True")
	t.Setenv("BREVO_LIST_ID", "")
	require.NoError(t, os.Unsetenv("BREVO_LIST_ID"))
	t.Setenv("DEBUG", "")
	require.NoError(t, os.Unsetenv("DEBUG"))

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, int64(12), cfg.Brevo.ListID)
	assert.True(t, cfg.Debug)
	assert.ElementsMatch(t, []string{"LIST_ID_EVA_MAIN", "FLASK_DEBUG"}, cfg.LegacyVars)
}

func TestParsePrefersCurrentNames(t *testing.T) {
	t.Setenv("BREVO_API_KEY", "xkeysib-test")
	t.Setenv("LIST_ID_EVA_MAIN", "12")
	t.Setenv("BREVO_LIST_ID", "7")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Brevo.ListID)
	assert.NotContains(t, cfg.LegacyVars, "LIST_ID_EVA_MAIN")
}
