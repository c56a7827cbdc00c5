package track

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p4.Distance(p3); d != 5 {
		t.Errorf("distance isn't symmetric: got %v, want 5", d)
	}

	if d := Pt(math.NaN(), 0).Distance(Pt(0, 0)); !math.IsNaN(d) {
		t.Errorf("got distance %v, want NaN", d)
	}
}

func TestPointIsNaNIsInf(t *testing.T) {
	if Pt(1, 2).IsNaN() || Pt(1, 2).IsInf() {
		t.Error("finite point reported as non-finite")
	}
	if !Pt(math.NaN(), 2).IsNaN() {
		t.Error("NaN not detected")
	}
	if !Pt(1, math.Inf(-1)).IsInf() {
		t.Error("Inf not detected")
	}
}
