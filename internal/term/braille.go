// Package term presents rasterized frames in a terminal using braille cells.
package term

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Each braille cell is a 2x4 dot grid.
const (
	DotsX = 2
	DotsY = 4
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [DotsX][DotsY]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// PixelSize is the pixel area covered by cols x rows cells.
func PixelSize(cols, rows int) (width, height int) {
	return cols * DotsX, rows * DotsY
}

// Presenter converts images to colored braille text. It caches one lipgloss
// style per color it has seen.
type Presenter struct {
	// Threshold is the minimum alpha for a pixel to raise its dot.
	Threshold uint8
	styles    map[string]lipgloss.Style
}

func NewPresenter() *Presenter {
	return &Presenter{Threshold: 96, styles: make(map[string]lipgloss.Style)}
}

type cell struct {
	pattern uint
	color   string
}

// Render returns img as lines of braille characters. Runs of cells with the
// same color share one escape sequence.
func (p *Presenter) Render(img image.Image) string {
	b := img.Bounds()
	cols := (b.Dx() + DotsX - 1) / DotsX
	rows := (b.Dy() + DotsY - 1) / DotsY

	lines := make([]string, rows)
	for row := range rows {
		var line strings.Builder
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				line.WriteString(run.String())
			} else {
				line.WriteString(p.style(runColor).Render(run.String()))
			}
			run.Reset()
		}
		for col := range cols {
			c := p.cell(img, b.Min.X+col*DotsX, b.Min.Y+row*DotsY)
			if c.color != runColor {
				flush()
				runColor = c.color
			}
			run.WriteRune(rune(0x2800 + c.pattern))
		}
		flush()
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (p *Presenter) cell(img image.Image, x0, y0 int) cell {
	b := img.Bounds()
	var c cell
	var r, g, bl, n int
	for dx := range DotsX {
		for dy := range DotsY {
			x, y := x0+dx, y0+dy
			if x >= b.Max.X || y >= b.Max.Y {
				continue
			}
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if px.A < p.Threshold {
				continue
			}
			c.pattern |= 1 << brailleBits[dx][dy]
			r += int(px.R)
			g += int(px.G)
			bl += int(px.B)
			n++
		}
	}
	if n > 0 {
		c.color = fmt.Sprintf("#%02x%02x%02x", r/n, g/n, bl/n)
	}
	return c
}

func (p *Presenter) style(hex string) lipgloss.Style {
	if s, ok := p.styles[hex]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	p.styles[hex] = s
	return s
}
