package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

// runCmd -- хелпер: запускает CLI с конфигом по умолчанию.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PVPSIM_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	var out bytes.Buffer
	err := run(context.Background(), args, &out)
	return out.String(), err
}

func TestRun_Battle(t *testing.T) {
	out, err := runCmd(t, "battle", "-a", "testdata/great.yaml", "-b", "testdata/ultra.toml", "-seed", "3", "-log")
	require.NoError(t, err)

	assert.Contains(t, out, "great vs ultra:")
	assert.Contains(t, out, "fingerprint ")
	assert.Contains(t, out, "used Psycho Cut")

	again, err := runCmd(t, "battle", "-a", "testdata/great.yaml", "-b", "testdata/ultra.toml", "-seed", "3", "-log")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same battle")
}

func TestRun_Rank(t *testing.T) {
	out, err := runCmd(t, "rank", "-cp", "500", "-level", "40", "-top", "3", "-workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.True(t, strings.HasPrefix(lines[1], "1 "))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no command", nil, "usage"},
		{"unknown command", []string{"dance"}, "unknown command"},
		{"battle without rosters", []string{"battle"}, "-a and -b are required"},
		{"missing roster", []string{"battle", "-a", "testdata/nope.yaml", "-b", "testdata/ultra.toml"}, "loading roster"},
		{"unknown agent", []string{"battle", "-a", "testdata/great.yaml", "-b", "testdata/ultra.toml", "-agent1", "oracle"}, "unknown agent preset"},
		{"rank level above max", []string{"rank", "-cp", "10000", "-level", "60"}, "invalid ranking limits"},
		{"rank level off grid", []string{"rank", "-level", "40.3"}, "invalid ranking limits"},
		{"rank zero cp", []string{"rank", "-cp", "0"}, "invalid ranking limits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
