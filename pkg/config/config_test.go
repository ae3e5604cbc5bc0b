package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultOutboundQueueSize, cfg.OutboundQueueSize)
	assert.True(t, cfg.CompressMessages)
	assert.Empty(t, cfg.ServerURL)
}

func TestLoad_fileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "client.yaml")
	contents := "log_level: debug\nserver_url: ws://localhost:8080/ws\noutbound_queue_size: 16\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	t.Setenv("HANABI_LOG_LEVEL", "trace")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, "ws://localhost:8080/ws", cfg.ServerURL)
	assert.Equal(t, 16, cfg.OutboundQueueSize)
}

func TestLoad_dotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HANABI_FIXTURE=table.json\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("HANABI_FIXTURE") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "table.json", cfg.Fixture)
}

func TestLoad_missingFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{OutboundQueueSize: 1, ServerURL: "wss://example.com"}},
		{name: "offline", cfg: Config{OutboundQueueSize: 1}},
		{name: "zero queue", cfg: Config{OutboundQueueSize: 0}, wantErr: true},
		{name: "http url", cfg: Config{OutboundQueueSize: 1, ServerURL: "http://example.com"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
