package meshbuild

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func approxVec(a, b r3.Vector, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestAffineIdentity(t *testing.T) {
	id := IdentityAffine()
	if !id.IsIdentity() {
		t.Error("IdentityAffine().IsIdentity() = false")
	}
	p := r3.Vector{X: 1, Y: 2, Z: 3}
	if got := id.Apply(p); got != p {
		t.Errorf("identity.Apply(%v) = %v", p, got)
	}
}

func TestAffineTranslate(t *testing.T) {
	tr := TranslateAffine(r3.Vector{X: 10, Y: -5, Z: 2})
	if !tr.IsTranslation() {
		t.Error("TranslateAffine(...).IsTranslation() = false")
	}
	got := tr.Apply(r3.Vector{X: 1, Y: 1, Z: 1})
	want := r3.Vector{X: 11, Y: -4, Z: 3}
	if got != want {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func TestAffineInvertRoundTrip(t *testing.T) {
	// A translation composed with a scale-ish matrix.
	m := Affine{
		A: 2, B: 0.5, C: 0, Tx: 100,
		D: 0, E: 3, F: 0.25, Ty: -40,
		G: 0.1, H: 0, I: 1.5, Tz: 7,
	}
	inv := m.Invert()
	pts := []r3.Vector{
		{},
		{X: 1, Y: 2, Z: 3},
		{X: -4.5, Y: 0.25, Z: 1e3},
	}
	for _, p := range pts {
		got := inv.Apply(m.Apply(p))
		if !approxVec(got, p, 1e-9) {
			t.Errorf("inv(m(%v)) = %v, want %v", p, got, p)
		}
	}
}

func TestAffineInvertSingular(t *testing.T) {
	var zero Affine
	if got := zero.Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert() = %+v, want identity", got)
	}
}

func TestAffineMultiply(t *testing.T) {
	a := TranslateAffine(r3.Vector{X: 5})
	b := TranslateAffine(r3.Vector{Y: -3})
	got := a.Multiply(b).Apply(r3.Vector{Z: 1})
	want := r3.Vector{X: 5, Y: -3, Z: 1}
	if got != want {
		t.Errorf("Multiply().Apply() = %v, want %v", got, want)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	// Delocalizing a localized point must reproduce the original world
	// position within floating point tolerance, even for ECEF-scale
	// coordinates.
	f := NewFrame(r3.Vector{X: 6.3e6, Y: -1.2e6, Z: 4.4e5})
	world := []r3.Vector{
		{X: 6.3e6, Y: -1.2e6, Z: 4.4e5},
		{X: 6.31e6, Y: -1.19e6, Z: 4.5e5},
		{X: 6.29e6, Y: -1.21e6, Z: 4.3e5},
	}
	for _, w := range world {
		got := f.Delocalize(f.Localize(w))
		if !approxVec(got, w, 1e-6) {
			t.Errorf("Delocalize(Localize(%v)) = %v", w, got)
		}
	}
}
