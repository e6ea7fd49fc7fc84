package render

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/olivier-w/ringbar/internal/geometry"
)

// Canvas is a Surface backed by a gg software rasterizer.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas allocates a transparent width x height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// Resize reallocates the pixel buffer when the size changed.
func (c *Canvas) Resize(width, height int) error {
	if width == c.dc.Width() && height == c.dc.Height() {
		return nil
	}
	if err := c.dc.Resize(width, height); err != nil {
		return fmt.Errorf("resize canvas to %dx%d: %w", width, height, err)
	}
	return nil
}

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() { c.dc.Clear() }

func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (c *Canvas) Close() error { return c.dc.Close() }

func (c *Canvas) DrawArc(rect geometry.Rect, start, sweep float64, p Paint) error {
	if sweep == 0 {
		return nil
	}
	cx, cy := rect.CenterX(), rect.CenterY()
	r := rect.Width() / 2

	c.dc.ClearPath()
	if math.Abs(sweep) >= 360 {
		c.dc.DrawCircle(cx, cy, r)
	} else {
		from, to := start, start+sweep
		if sweep < 0 {
			from, to = to, from
		}
		c.dc.DrawArc(cx, cy, r, radians(from), radians(to))
	}

	c.use(p)
	if p.Style == FillAndStroke {
		if err := c.dc.FillPreserve(); err != nil {
			return fmt.Errorf("fill arc: %w", err)
		}
	}
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("stroke arc: %w", err)
	}
	return nil
}

// DrawPoint draws a disc, or a square for straight caps, as wide as the
// paint's stroke.
func (c *Canvas) DrawPoint(x, y float64, p Paint) error {
	half := p.Width / 2
	if half <= 0 {
		return nil
	}
	c.dc.ClearPath()
	if p.Cap == CapStraight {
		c.dc.DrawRectangle(x-half, y-half, p.Width, p.Width)
	} else {
		c.dc.DrawPoint(x, y, half)
	}
	c.use(p)
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("fill point: %w", err)
	}
	return nil
}

func (c *Canvas) use(p Paint) {
	if p.Color != nil {
		c.dc.SetColor(p.Color)
	}
	c.dc.SetLineWidth(p.Width)
	if p.Cap == CapStraight {
		c.dc.SetLineCap(gg.LineCapButt)
	} else {
		c.dc.SetLineCap(gg.LineCapRound)
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
