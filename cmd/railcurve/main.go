// Command railcurve samples a curved track piece and prints its center line
// and rails.
//
// The curve is configured through environment variables, see
// [config.Config]. For example:
//
//	TRACK_CONTROL_POINTS=0,0,0,50,100,50,100,0 TRACK_RESOLUTION=0.1 railcurve
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"honnef.co/go/track"
	"honnef.co/go/track/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	lvl, err := cfg.Level()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	if err := run(cfg, os.Stdout); err != nil {
		slog.Error("write curve", "error", err)
		os.Exit(1)
	}
}

type output struct {
	Resolution     float64        `json:"resolution"`
	OffsetDistance float64        `json:"offset_distance"`
	NominalLength  float64        `json:"nominal_length"`
	Length         float64        `json:"length"`
	ControlPoints  [4]track.Point `json:"control_points"`
	Bounds         track.Rect     `json:"bounds"`
	Primary        []track.Point  `json:"primary"`
	Left           []track.Point  `json:"left"`
	Right          []track.Point  `json:"right"`
	Degenerate     []int          `json:"degenerate,omitempty"`
}

func run(cfg *config.Config, w io.Writer) error {
	bc := track.NewBezierCurve()
	cfg.Apply(bc)

	out := output{
		Resolution:     bc.Resolution(),
		OffsetDistance: bc.OffsetDistance(),
		NominalLength:  bc.NominalLength(),
		Length:         bc.Length(),
		ControlPoints:  bc.ControlPoints().Pts(),
		Bounds:         bc.BoundingBox(),
		Primary:        bc.Curve(track.PrimaryCurve),
		Left:           bc.Curve(track.LeftCurve),
		Right:          bc.Curve(track.RightCurve),
		Degenerate:     bc.DegenerateSamples(),
	}
	slog.Debug("sampled curve",
		"samples", len(out.Primary),
		"length", out.Length,
		"nominal_length", out.NominalLength)
	if len(out.Degenerate) > 0 {
		slog.Warn("tangent vanishes, rails coincide with center line", "samples", out.Degenerate)
	}

	switch cfg.Format {
	case "text":
		return writeText(w, &out)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(&out)
	}
}

func writeText(w io.Writer, out *output) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "i\tx\ty\tleft x\tleft y\tright x\tright y\t\n")
	for i, pt := range out.Primary {
		l, r := out.Left[i], out.Right[i]
		fmt.Fprintf(tw, "%d\t%g\t%g\t%g\t%g\t%g\t%g\t\n", i, pt.X, pt.Y, l.X, l.Y, r.X, r.Y)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "length %g\nsize %gx%g\n", out.Length, out.Bounds.Width(), out.Bounds.Height())
	return err
}
