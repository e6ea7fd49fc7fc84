package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/olivier-w/ringbar/internal/progress"
)

// parseProgress reads a progress value typed by the user. It accepts
// finite values in [0, max].
func parseProgress(s string, max float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > max {
		return 0, fmt.Errorf("give a valid input (0-%s)", formatValue(max))
	}
	return v, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderProgressLine(current, max, sweep float64) string {
	pct := 0.0
	if max > 0 {
		pct = current / max * 100
	}
	return fmt.Sprintf("%s / %s  %d%%  %+.0f°", formatValue(current), formatValue(max), int(pct), sweep)
}

func renderSettings(dir progress.Direction, animate, dot, fill bool, capName, curve string) string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf("%s  anim %s  dot %s  fill %s  cap %s  curve %s",
		dir, onOff(animate), onOff(dot), onOff(fill), capName, curve)
}
