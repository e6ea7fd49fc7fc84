package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/olivier-w/ringbar/internal/anim"
	"github.com/olivier-w/ringbar/internal/config"
	"github.com/olivier-w/ringbar/internal/geometry"
	"github.com/olivier-w/ringbar/internal/logging"
	"github.com/olivier-w/ringbar/internal/render"
	"github.com/olivier-w/ringbar/internal/widget"
)

type renderOptions struct {
	progress float64
	max      float64
	size     int
	density  float64
	out      string
}

func newRenderCommand() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write one frame of the ring to a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := logging.New(os.Stderr, cfg.LogLevel)
			if err != nil {
				return err
			}
			if err := renderPNG(cfg, opts, logger); err != nil {
				return err
			}
			logger.Info("wrote frame", "path", opts.out, "progress", opts.progress, "size", opts.size)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&opts.progress, "progress", "p", 0, "current progress")
	cmd.Flags().Float64Var(&opts.max, "max", 100, "maximum progress")
	cmd.Flags().IntVarP(&opts.size, "size", "s", 512, "image side in pixels")
	cmd.Flags().Float64Var(&opts.density, "density", 2, "pixels per dp")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "ringbar.png", "output file")
	return cmd
}

// fixedHost is a host of a fixed size that never animates.
type fixedHost struct{ side int }

type noHandle struct{}

func (noHandle) Cancel() {}

func (h fixedHost) ScheduleTick(func(time.Time), time.Duration) anim.Handle { return noHandle{} }
func (h fixedHost) RequestRedraw()                                          {}
func (h fixedHost) RequestRelayout()                                        {}
func (h fixedHost) CurrentSize() (int, int)                                 { return h.side, h.side }

func renderPNG(cfg config.Config, opts renderOptions, logger *log.Logger) error {
	if opts.size <= 0 {
		return errors.New("size must be positive")
	}
	if !(opts.density > 0) {
		return errors.New("density must be positive")
	}
	if !(opts.max > 0) {
		return errors.New("max must be positive")
	}

	attrs := cfg.Widget
	off := false
	attrs.EnableProgressAnimation = &off
	ring, err := widget.New(fixedHost{side: opts.size}, attrs,
		widget.WithDensity(geometry.Density(opts.density)),
		widget.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("build widget: %w", err)
	}
	ring.SetProgress(opts.progress, opts.max)
	ring.OnSizeChanged()

	c := render.NewCanvas(opts.size, opts.size)
	defer c.Close()
	if err := ring.Draw(c); err != nil {
		return err
	}
	return c.SavePNG(opts.out)
}
