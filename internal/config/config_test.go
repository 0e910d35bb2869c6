package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickerx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	should := require.New(t)

	path := writeFile(t, `
scheduler:
  capacity: 64
  start_paused: true
loop:
  frame_rate: 10ms
  fixed_step: false
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	should.NoError(err)
	should.Equal(64, cfg.Scheduler.Capacity)
	should.True(cfg.Scheduler.StartPaused)
	should.Equal(10*time.Millisecond, cfg.Loop.FrameRate)
	should.False(cfg.Loop.FixedStep)
	should.Equal(1000, cfg.Loop.MaxPostsPerFrame, "unset keys keep defaults")
	should.Equal("debug", cfg.Log.Level)
	should.Equal("json", cfg.Log.Format)
	should.Equal("127.0.0.1:8088", cfg.Inspect.Addr)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"capacity", "scheduler:\n  capacity: 0\n"},
		{"frame rate", "loop:\n  frame_rate: -1s\n"},
		{"posts", "loop:\n  max_posts_per_frame: 0\n"},
		{"format", "log:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "scheduler: [not, a, map]\n"))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Scheduler.Capacity = 7

	data, err := cfg.Marshal()
	require.NoError(t, err)
	require.Contains(t, string(data), "capacity: 7")

	loaded, err := Load(writeFile(t, string(data)))
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}
