package term

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestPixelSize(t *testing.T) {
	w, h := PixelSize(10, 5)
	if w != 20 || h != 20 {
		t.Fatalf("expected 20x20, got %dx%d", w, h)
	}
}

func TestRenderRaisesOpaqueDots(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 3, color.NRGBA{R: 255, A: 255})
	img.Set(2, 1, color.NRGBA{G: 255, A: 40})

	got := NewPresenter().Render(img)
	// Cell 0 has dots (0,0)=bit0 and (1,3)=bit7; cell 1 stays blank because
	// its only pixel is below the alpha threshold.
	want := string(rune(0x2800|1|1<<7)) + string(rune(0x2800))
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenderRowsAndPartialCells(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	img := image.NewNRGBA(image.Rect(0, 0, 3, 5))
	for y := range 5 {
		for x := range 3 {
			img.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}

	lines := strings.Split(NewPresenter().Render(img), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if got := []rune(lines[0]); len(got) != 2 || got[0] != 0x28FF || got[1] != 0x2800|1|2|4|64 {
		t.Fatalf("unexpected first row %q", lines[0])
	}
	if got := []rune(lines[1]); got[0] != 0x2800|1|8 || got[1] != 0x2801 {
		t.Fatalf("unexpected second row %q", lines[1])
	}
}

func TestRenderColorsRuns(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(2, 0, color.NRGBA{R: 255, A: 255})

	p := NewPresenter()
	got := p.Render(img)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected color escape, got %q", got)
	}
	if strings.Count(got, "38;2;255;0;0") != 1 {
		t.Fatalf("expected one shared run for equal colors, got %q", got)
	}
	if len(p.styles) != 1 {
		t.Fatalf("expected one cached style, got %d", len(p.styles))
	}
}
