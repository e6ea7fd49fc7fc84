package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeOverridesWidgetAttributes(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
density: 0.5
max: 250
widget:
  progressColor: "#3366ff"
  progressStrokeWidth: 12
  drawDot: false
  startAngle: 90
  direction: clockwise
  progressCap: straight
  interpolator: spring
  animationDuration: 750ms
`))
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Density)
	assert.Equal(t, 250.0, cfg.Max)
	assert.Equal(t, 5.0, cfg.Step)

	w := cfg.Widget
	assert.Equal(t, "#3366ff", w.ProgressColor)
	require.NotNil(t, w.ProgressStrokeWidth)
	assert.Equal(t, 12.0, *w.ProgressStrokeWidth)
	require.NotNil(t, w.DrawDot)
	assert.False(t, *w.DrawDot)
	require.NotNil(t, w.StartAngle)
	assert.Equal(t, 90, *w.StartAngle)
	assert.Equal(t, "clockwise", w.Direction)
	assert.Equal(t, "straight", w.ProgressCap)
	assert.Equal(t, "spring", w.Interpolator)
	assert.Equal(t, 750*time.Millisecond, w.AnimationDuration)

	// Untouched defaults survive.
	assert.Equal(t, "#ff9800", w.DotColor)
	require.NotNil(t, w.DotWidth)
	assert.Equal(t, 16.0, *w.DotWidth)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("widget:\n  progressColour: red\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "zero density", yaml: "density: 0"},
		{name: "negative max", yaml: "max: -1"},
		{name: "zero step", yaml: "step: 0"},
		{name: "initial above max", yaml: "initial: 120"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ringbar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial: 40\nlogLevel: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40.0, cfg.Initial)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
