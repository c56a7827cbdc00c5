package track

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestVec2Normalize(t *testing.T) {
	u, ok := Vec(3, 4).Normalize()
	if !ok {
		t.Fatal("couldn't normalize ⟨3, 4⟩")
	}
	diff(t, Vec(0.6, 0.8), u, cmpopts.EquateApprox(0, 1e-15))

	u, ok = Vec(3e200, -4e200).Normalize()
	if !ok {
		t.Fatal("couldn't normalize a large vector")
	}
	diff(t, Vec(0.6, -0.8), u, cmpopts.EquateApprox(0, 1e-15))

	for _, v := range []Vec2{
		Vec(0, 0),
		Vec(math.NaN(), 1),
		Vec(math.Inf(1), 0),
	} {
		if u, ok := v.Normalize(); ok {
			t.Errorf("normalizing %s: got %s, want failure", v, u)
		}
	}
}

func TestVec2Turn90(t *testing.T) {
	diff(t, Vec(0, 1), Vec(1, 0).Turn90())
	diff(t, Vec(-4, 3), Vec(3, 4).Turn90())
	v := Vec(2, -7)
	if d := v.Dot(v.Turn90()); d != 0 {
		t.Errorf("turned vector isn't perpendicular: dot product %g", d)
	}
}
