package charges

import (
	"errors"
	"math"
	"testing"
)

func TestPlaceAlternatingSigns(t *testing.T) {
	cs := Place(6, CosSin)
	if len(cs) != 6 {
		t.Fatalf("expected 6 charges, got %d", len(cs))
	}
	for i, c := range cs {
		want := 1.0
		if i%2 == 1 {
			want = -1.0
		}
		if c.Q != want {
			t.Errorf("charge %d: expected q=%f, got %f", i, want, c.Q)
		}
		if r := math.Hypot(c.X, c.Y); math.Abs(r-1) > 1e-12 {
			t.Errorf("charge %d: expected unit radius, got %f", i, r)
		}
	}
	if Net(cs) != 0 {
		t.Errorf("expected neutral ring, got net %f", Net(cs))
	}
}

func TestPlaceDipoleAntipodal(t *testing.T) {
	for _, p := range []Placement{CosSin, SinCos} {
		cs := Place(2, p)
		if len(cs) != 2 {
			t.Fatalf("%s: expected 2 charges, got %d", p, len(cs))
		}
		if cs[0].Q*cs[1].Q >= 0 {
			t.Errorf("%s: expected opposite signs, got %f and %f", p, cs[0].Q, cs[1].Q)
		}
		d := math.Hypot(cs[0].X-cs[1].X, cs[0].Y-cs[1].Y)
		if math.Abs(d-2) > 1e-12 {
			t.Errorf("%s: expected distance 2, got %f", p, d)
		}
	}
}

func TestPlaceVariants(t *testing.T) {
	cs := Place(4, CosSin)
	if math.Abs(cs[0].X-1) > 1e-12 || math.Abs(cs[0].Y) > 1e-12 {
		t.Errorf("cossin: first charge at (%f, %f), want (1, 0)", cs[0].X, cs[0].Y)
	}
	if math.Abs(cs[1].X) > 1e-12 || math.Abs(cs[1].Y-1) > 1e-12 {
		t.Errorf("cossin: second charge at (%f, %f), want (0, 1)", cs[1].X, cs[1].Y)
	}

	cs = Place(4, SinCos)
	if math.Abs(cs[0].X) > 1e-12 || math.Abs(cs[0].Y-1) > 1e-12 {
		t.Errorf("sincos: first charge at (%f, %f), want (0, 1)", cs[0].X, cs[0].Y)
	}
	if math.Abs(cs[1].X-1) > 1e-12 || math.Abs(cs[1].Y) > 1e-12 {
		t.Errorf("sincos: second charge at (%f, %f), want (1, 0)", cs[1].X, cs[1].Y)
	}
}

func TestPlaceEmpty(t *testing.T) {
	if cs := Place(0, CosSin); len(cs) != 0 {
		t.Errorf("expected no charges, got %d", len(cs))
	}
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in   string
		want Placement
	}{
		{"cossin", CosSin},
		{"SinCos", SinCos},
		{" sin,cos ", SinCos},
	}
	for _, tt := range tests {
		got, err := ParsePlacement(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.in, tt.want, got)
		}
	}

	if _, err := ParsePlacement("polar"); !errors.Is(err, ErrUnknownPlacement) {
		t.Errorf("expected ErrUnknownPlacement, got %v", err)
	}
}
