package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/radiobutton/pkg/animation"
	"github.com/go-drift/radiobutton/pkg/errors"
	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/go-drift/radiobutton/pkg/radio"
	"github.com/go-drift/radiobutton/pkg/raster"
)

// Transitions accepted by frames --transition.
const (
	transitionSelect   = "select"
	transitionDeselect = "deselect"
)

type framesOptions struct {
	out        string
	fps        int
	duration   time.Duration
	scale      float64
	padding    float64
	transition string
	background string
}

func newFramesCmd(a *app) *cobra.Command {
	o := &framesOptions{}
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Export an animation as PNG frames",
		Long: `Render a select or deselect animation frame by frame on a simulated
clock and write numbered PNG files.

Examples:
  radiodemo frames --out ./frames
  radiodemo frames --out ./frames --transition deselect --fps 30 --scale 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.settings.Radio()
			if err != nil {
				return err
			}
			n, err := writeFrames(cfg, *o)
			if err != nil {
				return err
			}
			a.log.Info("wrote %d frames to %s", n, o.out)
			fmt.Fprintf(cmd.OutOrStdout(), "%d frames written to %s\n", n, o.out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.out, "out", "", "output directory")
	f.IntVar(&o.fps, "fps", 60, "frames per second")
	f.DurationVar(&o.duration, "duration", 600*time.Millisecond, "length of the capture")
	f.Float64Var(&o.scale, "scale", 8, "pixels per point")
	f.Float64Var(&o.padding, "padding", 12, "margin around the control in points")
	f.StringVar(&o.transition, "transition", transitionSelect, "select or deselect")
	f.StringVar(&o.background, "background", "", "background color (default transparent)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// writeFrames renders the transition on a fake clock and returns the number
// of frames written. The process clock is restored before returning.
func writeFrames(cfg radio.Config, o framesOptions) (n int, err error) {
	defer errors.Recover("radiodemo.frames", &err)

	if o.fps <= 0 {
		return 0, errors.New("radiodemo.frames", errors.KindConfig, &errors.ConfigError{Field: "fps", Value: o.fps, Reason: "must be positive"})
	}
	if o.duration < 0 {
		return 0, errors.New("radiodemo.frames", errors.KindConfig, &errors.ConfigError{Field: "duration", Value: o.duration, Reason: "must not be negative"})
	}
	opts := raster.Options{Scale: o.scale, Padding: o.padding}
	if o.background != "" {
		bg, err := graphics.ParseColor(o.background)
		if err != nil {
			return 0, errors.New("radiodemo.frames", errors.KindConfig, &errors.ConfigError{Field: "background", Value: o.background, Reason: err.Error()})
		}
		opts.Background = bg
	}
	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return 0, errors.New("radiodemo.frames", errors.KindRender, err)
	}

	clock := animation.NewStepClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	c, err := radio.New(cfg)
	if err != nil {
		return 0, err
	}
	c.Attach(animation.MediaTime())

	switch o.transition {
	case transitionSelect:
		c.Select(true)
	case transitionDeselect:
		c.Select(false)
		c.Deselect(true)
	default:
		return 0, errors.New("radiodemo.frames", errors.KindConfig,
			&errors.ConfigError{Field: "transition", Value: o.transition, Reason: "want select or deselect"})
	}

	step := time.Second / time.Duration(o.fps)
	count := int(o.duration/step) + 1
	for i := range count {
		img, err := raster.Render(c, opts)
		if err != nil {
			return i, err
		}
		if err := writePNG(filepath.Join(o.out, fmt.Sprintf("frame_%04d.png", i)), img); err != nil {
			return i, err
		}
		clock.Advance(step)
	}
	return count, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.New("radiodemo.frames", errors.KindRender, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.New("radiodemo.frames", errors.KindRender, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return errors.New("radiodemo.frames", errors.KindRender, err)
	}
	return nil
}
