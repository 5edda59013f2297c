package logger

import (
	"istudy_lab_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLevelFor(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
		want zap.AtomicLevel
	}{
		{"debug mode", config.Config{Server: config.ServerConfig{Mode: "debug"}}, zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"release mode", config.Config{Server: config.ServerConfig{Mode: "release"}}, zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"explicit level", config.Config{Server: config.ServerConfig{Mode: "debug"}, Log: config.LogConfig{Level: "warn"}}, zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"bad level falls back", config.Config{Log: config.LogConfig{Level: "loud"}}, zap.NewAtomicLevelAt(zap.InfoLevel)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want.Level(), LevelFor(&tc.cfg))
		})
	}
}

func TestReloadAdjustsLevel(t *testing.T) {
	Reload(&config.Config{Log: config.LogConfig{Level: "error"}})
	assert.Equal(t, zap.ErrorLevel, level.Level())

	Reload(&config.Config{Server: config.ServerConfig{Mode: "debug"}})
	assert.Equal(t, zap.DebugLevel, level.Level())
}
