package piece

import "testing"

func TestFromByte(t *testing.T) {
	data := []struct {
		b    byte
		kind Kind
	}{
		{'I', I}, {'o', O}, {'T', T}, {'l', L}, {'J', J}, {'s', S}, {'Z', Z},
	}
	for _, d := range data {
		k, err := FromByte(d.b)
		if err != nil {
			t.Errorf("FromByte(%q): unexpected error: %v", d.b, err)
		}
		if k != d.kind {
			t.Errorf("FromByte(%q) = %v, want %v", d.b, k, d.kind)
		}
	}

	if _, err := FromByte('X'); err == nil {
		t.Errorf("FromByte('X'): expected error, got nil")
	}
}

func TestCellsEveryKindHasFourCells(t *testing.T) {
	for _, k := range Kinds {
		for r := North; r <= West; r++ {
			cells := Cells(k, r)
			seen := map[Cell]bool{}
			for _, c := range cells {
				if seen[c] {
					t.Errorf("%v/%v: duplicate cell %v", k, r, c)
				}
				seen[c] = true
				box := int8(BoundingBox(k))
				if c.DX < 0 || c.DX >= box || c.DY < 0 || c.DY >= box {
					t.Errorf("%v/%v: cell %v out of %dx%d bounding box", k, r, c, box, box)
				}
			}
		}
	}
}

func TestKicksIdentityFirst(t *testing.T) {
	for _, k := range Kinds {
		for from := North; from <= West; from++ {
			to := from.CW()
			offsets := Kicks(k, from, to)
			if offsets[0] != (kickOffset{0, 0}) {
				t.Errorf("%v %v->%v: first kick must be the identity offset, got %v", k, from, to, offsets[0])
			}
		}
	}
}

func TestRotationRoundTrip(t *testing.T) {
	for r := North; r <= West; r++ {
		if got := r.CW().CCW(); got != r {
			t.Errorf("%v.CW().CCW() = %v, want %v", r, got, r)
		}
	}
}
