// Package config loads the settings of the railcurve tool from the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/kelseyhightower/envconfig"

	"honnef.co/go/track"
)

// Prefix is the prefix of all environment variables, as in TRACK_RESOLUTION.
const Prefix = "track"

type Config struct {
	Resolution     float64   `envconfig:"RESOLUTION" default:"0.025"`
	OffsetDistance float64   `envconfig:"OFFSET_DISTANCE" default:"4.5"`
	NominalLength  float64   `envconfig:"NOMINAL_LENGTH" default:"100"`
	// ControlPoints holds the x and y coordinates of the four control
	// points, in order.
	ControlPoints  []float64 `envconfig:"CONTROL_POINTS" default:"0,0,0,50,100,50,100,0"`
	Format         string    `envconfig:"FORMAT" default:"json"`
	LogLevel       string    `envconfig:"LOG_LEVEL" default:"info"`
}

var (
	ErrResolution    = errors.New("resolution must be in (1/track.MaxSamples, 1)")
	ErrControlPoints = errors.New("need exactly 8 finite control point coordinates")
	ErrDistance      = errors.New("offset distance must be finite")
	ErrFormat        = errors.New("format must be json or text")
)

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that would otherwise make [track.BezierCurve]
// panic.
func (cfg *Config) Validate() error {
	if !track.ValidResolution(cfg.Resolution) {
		return fmt.Errorf("%w, got %g", ErrResolution, cfg.Resolution)
	}
	if math.IsNaN(cfg.OffsetDistance) || math.IsInf(cfg.OffsetDistance, 0) {
		return fmt.Errorf("%w, got %g", ErrDistance, cfg.OffsetDistance)
	}
	if len(cfg.ControlPoints) != 2*track.ControlPoints {
		return fmt.Errorf("%w, got %d", ErrControlPoints, len(cfg.ControlPoints))
	}
	for _, v := range cfg.ControlPoints {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w, got %g", ErrControlPoints, v)
		}
	}
	switch cfg.Format {
	case "json", "text":
	default:
		return fmt.Errorf("%w, got %q", ErrFormat, cfg.Format)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (cfg *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level: %w", err)
	}
	return lvl, nil
}

// Apply configures bc. cfg must have been validated.
func (cfg *Config) Apply(bc *track.BezierCurve) {
	bc.SetResolution(cfg.Resolution)
	bc.SetOffsetDistance(cfg.OffsetDistance)
	bc.SetNominalLength(cfg.NominalLength)
	for i := range track.ControlPoints {
		bc.SetControlPointXY(cfg.ControlPoints[2*i], cfg.ControlPoints[2*i+1], i)
	}
}
