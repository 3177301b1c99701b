package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_TOKEN", "test-token")
	t.Setenv("MY_NUMBER", "919876543210")
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "http", cfg.Server.Transport)
	assert.Equal(t, 30*time.Second, cfg.Server.HandlerTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "test-token", cfg.AuthToken)
	assert.Equal(t, "919876543210", cfg.MyNumber)
	assert.Equal(t, "0.0.0.0:8086", cfg.Server.Addr())
}

func TestLoad_FromFile(t *testing.T) {
	setRequiredEnv(t)
	path := writeConfigFile(t, `
server:
  host: 127.0.0.1
  port: 9000
  transport: stdio
  handler_timeout: 5s
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "stdio", cfg.Server.Transport)
	assert.Equal(t, 5*time.Second, cfg.Server.HandlerTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvExpansionInFile(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STUDIO_HOST", "10.0.0.5")
	path := writeConfigFile(t, `
server:
  host: ${STUDIO_HOST}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", cfg.Server.Host)
}

func TestLoad_PortEnvOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8123")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.Server.Port)
}

func TestLoad_MissingSecrets(t *testing.T) {
	tests := []struct {
		name          string
		authToken     string
		myNumber      string
		errorContains string
	}{
		{
			name:          "missing auth token",
			authToken:     "",
			myNumber:      "919876543210",
			errorContains: "AUTH_TOKEN",
		},
		{
			name:          "missing caller number",
			authToken:     "test-token",
			myNumber:      "",
			errorContains: "MY_NUMBER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AUTH_TOKEN", tt.authToken)
			t.Setenv("MY_NUMBER", tt.myNumber)

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		errorContains string
	}{
		{
			name:          "bad transport",
			content:       "server:\n  transport: carrier-pigeon\n",
			errorContains: "invalid transport",
		},
		{
			name:          "bad port",
			content:       "server:\n  port: -1\n",
			errorContains: "invalid port",
		},
		{
			name:          "bad timeout",
			content:       "server:\n  handler_timeout: soon\n",
			errorContains: "handler_timeout",
		},
		{
			name:          "unparseable yaml",
			content:       "server: [not a mapping",
			errorContains: "parsing config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			path := writeConfigFile(t, tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	setRequiredEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
