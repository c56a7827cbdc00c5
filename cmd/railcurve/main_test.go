package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/track"
	"honnef.co/go/track/internal/config"
)

func archConfig(format string) *config.Config {
	return &config.Config{
		Resolution:     0.5,
		OffsetDistance: 5,
		NominalLength:  100,
		ControlPoints:  []float64{0, 0, 0, 50, 100, 50, 100, 0},
		Format:         format,
		LogLevel:       "info",
	}
}

func TestRunJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := run(archConfig("json"), &buf); err != nil {
		t.Fatal(err)
	}
	var got output
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := output{
		Resolution:     0.5,
		OffsetDistance: 5,
		NominalLength:  100,
		Length:         125,
		ControlPoints:  [4]track.Point{track.Pt(0, 0), track.Pt(0, 50), track.Pt(100, 50), track.Pt(100, 0)},
		Bounds:         track.Rect{X0: -5, Y0: 0, X1: 105, Y1: 42.5},
		Primary:        []track.Point{track.Pt(0, 0), track.Pt(50, 37.5), track.Pt(100, 0)},
		Left:           []track.Point{track.Pt(5, 0), track.Pt(50, 32.5), track.Pt(95, 0)},
		Right:          []track.Point{track.Pt(-5, 0), track.Pt(50, 42.5), track.Pt(105, 0)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestRunText(t *testing.T) {
	var buf bytes.Buffer
	if err := run(archConfig("text"), &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), buf.String())
	}
	if got := strings.Fields(lines[2]); !cmp.Equal(got, []string{"1", "50", "37.5", "50", "32.5", "50", "42.5"}) {
		t.Errorf("unexpected row %q", lines[2])
	}
	if lines[4] != "length 125" {
		t.Errorf("got %q, want %q", lines[4], "length 125")
	}
	if lines[5] != "size 110x42.5" {
		t.Errorf("got %q, want %q", lines[5], "size 110x42.5")
	}
}

func TestRunDegenerate(t *testing.T) {
	cfg := archConfig("json")
	cfg.ControlPoints = []float64{0, 0, 0, 0, 10, 10, 10, 10}
	var buf bytes.Buffer
	if err := run(cfg, &buf); err != nil {
		t.Fatal(err)
	}
	var got output
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]int{0, 2}, got.Degenerate); d != "" {
		t.Error(d)
	}
}
