package meshbuild

import (
	"math"

	"github.com/golang/geo/r3"
)

// GeometryType identifies the native shape of a geometry part.
type GeometryType int

const (
	// GeometryUnknown marks a part whose type could not be resolved.
	GeometryUnknown GeometryType = iota
	// GeometryPointSet is an unordered set of points.
	GeometryPointSet
	// GeometryLineString is an open ordered point sequence.
	GeometryLineString
	// GeometryRing is a closed point sequence (the closing edge is implied).
	GeometryRing
	// GeometryPolygon is an outer ring plus zero or more hole rings.
	GeometryPolygon
)

// String returns the name of the geometry type.
func (t GeometryType) String() string {
	switch t {
	case GeometryPointSet:
		return "PointSet"
	case GeometryLineString:
		return "LineString"
	case GeometryRing:
		return "Ring"
	case GeometryPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Part is one component of a feature's multi-part geometry: an ordered
// sequence of 3D points (lon/lat/height or projected XYZ) with a declared
// type. A polygon-typed part owns its holes; holes are rings, never
// polygons themselves.
type Part struct {
	Type   GeometryType
	Points []r3.Vector
	Holes  []*Part
}

// NewPart creates a part of the given type.
func NewPart(t GeometryType, pts ...r3.Vector) *Part {
	return &Part{Type: t, Points: pts}
}

// Size returns the number of points in the outer sequence.
func (p *Part) Size() int { return len(p.Points) }

// TotalPointCount returns the point count including hole rings.
func (p *Part) TotalPointCount() int {
	n := len(p.Points)
	for _, h := range p.Holes {
		n += len(h.Points)
	}
	return n
}

// ringIntersectTolerance bounds how close two non-adjacent ring edges may
// pass before the ring counts as self-intersecting.
const ringIntersectTolerance = 1e-9

// IsValid reports whether the part can be used as a ring boundary: at
// least three points and no self-intersection (tested on the XY
// projection). Non-ring parts only need their minimum point count.
func (p *Part) IsValid() bool {
	switch p.Type {
	case GeometryPolygon, GeometryRing:
		if len(p.Points) < 3 {
			return false
		}
		return !selfIntersects(p.Points)
	case GeometryLineString:
		return len(p.Points) >= 2
	default:
		return len(p.Points) >= 1
	}
}

// selfIntersects tests every pair of non-adjacent closed-ring edges for a
// proper crossing in the XY plane.
func selfIntersects(pts []r3.Vector) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		a0, a1 := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip the edge itself and the two edges sharing an endpoint.
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b0, b1 := pts[j], pts[(j+1)%n]
			if segmentsCross(a0, a1, b0, b1) {
				return true
			}
		}
	}
	return false
}

// segmentsCross reports a proper XY crossing of segments a0-a1 and b0-b1.
// Touching within tolerance does not count: shared vertices between
// consecutive rings of real data are common and harmless.
func segmentsCross(a0, a1, b0, b1 r3.Vector) bool {
	d1 := cross2(b0, b1, a0)
	d2 := cross2(b0, b1, a1)
	d3 := cross2(a0, a1, b0)
	d4 := cross2(a0, a1, b1)

	tol := ringIntersectTolerance
	if math.Abs(d1) <= tol || math.Abs(d2) <= tol || math.Abs(d3) <= tol || math.Abs(d4) <= tol {
		return false
	}
	return ((d1 > 0) != (d2 > 0)) && ((d3 > 0) != (d4 > 0))
}

// cross2 returns the 2D cross product (b-a) x (p-a) using X and Y only.
func cross2(a, b, p r3.Vector) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
