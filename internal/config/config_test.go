package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfigFile(t *testing.T, dir, name string, values map[string]any) {
	t.Helper()
	data, err := yaml.Marshal(values)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()
	t.Chdir(t.TempDir())

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8375", c.Port)
	assert.Equal(t, "http://localhost:8080", c.APIURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout())
	assert.Equal(t, "/login", c.LoginPath)
	assert.Equal(t, "http://localhost:8080/oauth2/authorization/google", c.OAuthAuthorizeURL())
	assert.False(t, c.TracingEnabled)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	defer viper.Reset()
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yml", map[string]any{
		"PORT":                    "9000",
		"API_URL":                 "http://api.internal:8080/",
		"REQUEST_TIMEOUT_SECONDS": 5,
	})
	t.Chdir(dir)

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, "http://api.internal:8080", c.APIURL, "trailing slash is stripped")
	assert.Equal(t, 5*time.Second, c.RequestTimeout())
}

func TestLoadConfig_ProfileMerge(t *testing.T) {
	defer viper.Reset()
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yml", map[string]any{
		"APP_ENV": "staging",
		"PORT":    "9000",
	})
	writeConfigFile(t, dir, "config.staging.yml", map[string]any{
		"API_URL": "https://api.staging.example.com",
	})
	t.Chdir(dir)

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "staging", c.Env)
	assert.Equal(t, "9000", c.Port, "base values survive the merge")
	assert.Equal(t, "https://api.staging.example.com", c.APIURL)
}

func TestLoadConfig_MissingProfileFails(t *testing.T) {
	defer viper.Reset()
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yml", map[string]any{"APP_ENV": "staging"})
	t.Chdir(dir)

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:                  "8375",
			APIURL:                "http://localhost:8080",
			RequestTimeoutSeconds: 15,
			LoginPath:             "/login",
			OAuthAuthorizePath:    "/oauth2/authorization/google",
			Env:                   "development",
			TracingExporter:       "stdout",
			TracingSampleRatio:    1.0,
		}
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"valid development config", func(*Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing api url", func(c *Config) { c.APIURL = "" }, true},
		{"relative api url", func(c *Config) { c.APIURL = "api.example.com" }, true},
		{"zero timeout", func(c *Config) { c.RequestTimeoutSeconds = 0 }, true},
		{"login path without slash", func(c *Config) { c.LoginPath = "login" }, true},
		{"unknown tracing exporter", func(c *Config) {
			c.TracingEnabled = true
			c.TracingExporter = "jaeger"
		}, true},
		{"unknown exporter ignored when tracing off", func(c *Config) {
			c.TracingExporter = "jaeger"
		}, false},
		{"sample ratio out of range", func(c *Config) { c.TracingSampleRatio = 1.5 }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Origins(t *testing.T) {
	c := &Config{AllowedOrigins: " http://localhost:5173 ,, http://localhost:3000"}
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, c.Origins())

	c.AllowedOrigins = ""
	assert.Empty(t, c.Origins())
}
