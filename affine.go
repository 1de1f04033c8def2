package meshbuild

import (
	"math"

	"github.com/golang/geo/r3"
)

// Affine represents a 3D affine transformation.
// It uses a 3x4 matrix in row-major order:
//
//	| A  B  C  Tx |
//	| D  E  F  Ty |
//	| G  H  I  Tz |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C*z + Tx
//	y' = D*x + E*y + F*z + Ty
//	z' = G*x + H*y + I*z + Tz
//
// The implied fourth row is (0 0 0 1), so an Affine is the full 4x4
// transform a renderer consumes, stored without the constant row.
type Affine struct {
	A, B, C, Tx float64
	D, E, F, Ty float64
	G, H, I, Tz float64
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{
		A: 1, E: 1, I: 1,
	}
}

// TranslateAffine creates a translation by v.
func TranslateAffine(v r3.Vector) Affine {
	return Affine{
		A: 1, E: 1, I: 1,
		Tx: v.X, Ty: v.Y, Tz: v.Z,
	}
}

// Apply transforms the point p.
func (m Affine) Apply(p r3.Vector) r3.Vector {
	return r3.Vector{
		X: m.A*p.X + m.B*p.Y + m.C*p.Z + m.Tx,
		Y: m.D*p.X + m.E*p.Y + m.F*p.Z + m.Ty,
		Z: m.G*p.X + m.H*p.Y + m.I*p.Z + m.Tz,
	}
}

// ApplyVector transforms the direction vector v (no translation).
func (m Affine) ApplyVector(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m.A*v.X + m.B*v.Y + m.C*v.Z,
		Y: m.D*v.X + m.E*v.Y + m.F*v.Z,
		Z: m.G*v.X + m.H*v.Y + m.I*v.Z,
	}
}

// Multiply composes two transforms (m applied after other).
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		A:  m.A*other.A + m.B*other.D + m.C*other.G,
		B:  m.A*other.B + m.B*other.E + m.C*other.H,
		C:  m.A*other.C + m.B*other.F + m.C*other.I,
		Tx: m.A*other.Tx + m.B*other.Ty + m.C*other.Tz + m.Tx,
		D:  m.D*other.A + m.E*other.D + m.F*other.G,
		E:  m.D*other.B + m.E*other.E + m.F*other.H,
		F:  m.D*other.C + m.E*other.F + m.F*other.I,
		Ty: m.D*other.Tx + m.E*other.Ty + m.F*other.Tz + m.Ty,
		G:  m.G*other.A + m.H*other.D + m.I*other.G,
		H:  m.G*other.B + m.H*other.E + m.I*other.H,
		I:  m.G*other.C + m.H*other.F + m.I*other.I,
		Tz: m.G*other.Tx + m.H*other.Ty + m.I*other.Tz + m.Tz,
	}
}

// Invert returns the inverse transform.
// Returns the identity transform if the matrix is not invertible.
func (m Affine) Invert() Affine {
	// Cofactor expansion of the upper-left 3x3.
	c00 := m.E*m.I - m.F*m.H
	c01 := m.F*m.G - m.D*m.I
	c02 := m.D*m.H - m.E*m.G

	det := m.A*c00 + m.B*c01 + m.C*c02
	if math.Abs(det) < 1e-12 {
		return IdentityAffine()
	}
	invDet := 1.0 / det

	inv := Affine{
		A: c00 * invDet,
		B: (m.C*m.H - m.B*m.I) * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: c01 * invDet,
		E: (m.A*m.I - m.C*m.G) * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
		G: c02 * invDet,
		H: (m.B*m.G - m.A*m.H) * invDet,
		I: (m.A*m.E - m.B*m.D) * invDet,
	}

	// inv.T = -inv.R * T
	t := inv.ApplyVector(r3.Vector{X: m.Tx, Y: m.Ty, Z: m.Tz})
	inv.Tx, inv.Ty, inv.Tz = -t.X, -t.Y, -t.Z
	return inv
}

// IsIdentity returns true if the transform is the identity.
func (m Affine) IsIdentity() bool {
	return m == IdentityAffine()
}

// IsTranslation returns true if the transform is only a translation.
func (m Affine) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0 &&
		m.G == 0 && m.H == 0 && m.I == 1
}
