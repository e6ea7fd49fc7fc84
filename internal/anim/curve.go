package anim

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// Curve shapes the elapsed fraction of an animation. Curves map 0 to 0 and 1
// to 1; values in between may be anywhere in [0, 1].
type Curve func(f float64) float64

// Linear advances at a constant rate.
func Linear(f float64) float64 { return f }

// AccelerateDecelerate starts and ends slowly and is fastest in the middle.
func AccelerateDecelerate(f float64) float64 {
	return math.Cos((f+1)*math.Pi)/2 + 0.5
}

// Decelerate starts fast and slows into the target.
func Decelerate(f float64) float64 {
	return 1 - (1-f)*(1-f)
}

const springSamples = 60

// Spring samples a harmonica spring settling from 0 to 1 over one unit of
// time. Overshoot is cut at 1 so an arc never sweeps past its target.
func Spring(frequency, damping float64) Curve {
	s := harmonica.NewSpring(harmonica.FPS(springSamples), frequency, damping)
	samples := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = s.Update(pos, vel, 1)
		samples[i] = min(max(pos, 0), 1)
	}
	samples[springSamples] = 1

	return func(f float64) float64 {
		if f <= 0 {
			return 0
		}
		if f >= 1 {
			return 1
		}
		x := f * springSamples
		lo := int(x)
		t := x - float64(lo)
		return samples[lo]*(1-t) + samples[lo+1]*t
	}
}

// DefaultSpring is a critically damped spring that settles within the run.
var DefaultSpring = Spring(7, 1)

// Curves lists the curves ParseCurve knows, by name.
var Curves = map[string]Curve{
	"linear":                Linear,
	"accelerate-decelerate": AccelerateDecelerate,
	"decelerate":            Decelerate,
	"spring":                DefaultSpring,
}

// ParseCurve looks up a curve by name. An empty name selects
// AccelerateDecelerate.
func ParseCurve(name string) (Curve, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return AccelerateDecelerate, nil
	}
	if c, ok := Curves[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown interpolator %q", name)
}
