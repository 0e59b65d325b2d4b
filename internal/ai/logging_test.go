package ai

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureLogs -- хелпер: перенаправляет slog.Default в буфер на время теста.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() {
		slog.SetDefault(prev)
		EnableDebugLogging(false)
	})
	return &buf
}

func TestEnableDebugLogging(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		logged  bool
	}{
		{"enabled", true, true},
		{"disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			EnableDebugLogging(tt.enabled)
			assert.Equal(t, tt.enabled, IsDebugEnabled())

			p := newPlayer(swoobat(t))
			p.Team[0].Energy = 100
			BasicStrategy{}.NextAction(p)

			assert.Equal(t, tt.logged, bytes.Contains(buf.Bytes(), []byte("charge move chosen")))
		})
	}
}

func TestIsDebugEnabled_Concurrent(t *testing.T) {
	t.Cleanup(func() { EnableDebugLogging(false) })

	done := make(chan struct{})
	for i := range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 1000 {
				EnableDebugLogging(i%2 == 0)
				_ = IsDebugEnabled()
			}
		}()
	}
	for range 8 {
		<-done
	}
}
