package curve3

import (
	"testing"
)

func TestBox(t *testing.T) {
	b := NewBoxFromPoints(Pt(3, 4, 5), Pt(1, 0, -1))
	diff(t, Box{1, 0, -1, 3, 4, 5}, b)
	diff(t, Vec(2, 4, 6), b.Size())
	diff(t, Pt(2, 2, 2), b.Center())

	if !b.Contains(Pt(1, 0, -1)) {
		t.Error("minimum corner isn't contained")
	}
	if b.Contains(Pt(3, 4, 5)) {
		t.Error("maximum corner is contained")
	}

	diff(t, Box{0, 0, -1, 3, 4, 6}, b.UnionPoint(Pt(0, 1, 6)))
	diff(t, Box{1, -2, -1, 3, 4, 5}, b.Union(Box{2, -2, 0, 2, 0, 0}))
	diff(t, Box{2, 1, 0, 4, 5, 6}, b.Translate(Vec(1, 1, 1)))
}

func TestBoxOf(t *testing.T) {
	diff(t, Box{}, boxOf(nil))
	got := boxOf([]Point{Pt(1, 1, 1), Pt(-1, 2, 0), Pt(0, 0, 3)})
	diff(t, Box{-1, 0, 0, 1, 2, 3}, got)
}
