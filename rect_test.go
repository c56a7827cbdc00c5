package track

import "testing"

func TestRectUnionPoint(t *testing.T) {
	r := NewRectFromPoints(Pt(3, 4), Pt(1, 2))
	diff(t, Rect{1, 2, 3, 4}, r)
	r = r.UnionPoint(Pt(-1, 10))
	diff(t, Rect{-1, 2, 3, 10}, r)
	if r.Width() != 4 || r.Height() != 8 {
		t.Errorf("got size %gx%g, want 4x8", r.Width(), r.Height())
	}
	diff(t, r, r.UnionPoint(Pt(0, 5)))
}
