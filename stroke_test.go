package meshbuild

import "testing"

func TestDefaultStroke(t *testing.T) {
	s := DefaultStroke()

	if s.Color != White {
		t.Errorf("DefaultStroke().Color = %v, want White", s.Color)
	}
	if s.Width != 1.0 {
		t.Errorf("DefaultStroke().Width = %v, want 1.0", s.Width)
	}
	if s.WidthUnits != Pixels {
		t.Errorf("DefaultStroke().WidthUnits = %v, want Pixels", s.WidthUnits)
	}
	if s.Cap != CapButt {
		t.Errorf("DefaultStroke().Cap = %v, want CapButt", s.Cap)
	}
	if s.Join != JoinMiter {
		t.Errorf("DefaultStroke().Join = %v, want JoinMiter", s.Join)
	}
	if s.MiterLimit != 4.0 {
		t.Errorf("DefaultStroke().MiterLimit = %v, want 4.0", s.MiterLimit)
	}
}

func TestStrokeWith(t *testing.T) {
	s := DefaultStroke().
		WithColor(RGB(1, 0, 0)).
		WithWidth(8, Meters).
		WithCap(CapRound).
		WithJoin(JoinBevel).
		WithStipple(3, 0xF0F0)

	if s.Color != RGB(1, 0, 0) {
		t.Errorf("Color = %v", s.Color)
	}
	if s.Width != 8 || s.WidthUnits != Meters {
		t.Errorf("Width = %v %v, want 8 Meters", s.Width, s.WidthUnits)
	}
	if s.Cap != CapRound || s.Join != JoinBevel {
		t.Errorf("Cap/Join = %v/%v", s.Cap, s.Join)
	}
	if s.StippleFactor != 3 || s.StipplePattern != 0xF0F0 {
		t.Errorf("stipple = %d/%#x", s.StippleFactor, s.StipplePattern)
	}

	// With chaining returns copies; the default is untouched.
	if d := DefaultStroke(); d.Width != 1 || d.Cap != CapButt {
		t.Errorf("DefaultStroke mutated: %+v", d)
	}
}
