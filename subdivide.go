package meshbuild

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// maxSubdivisionDepth caps edge refinement. Every split at least halves
// the subtended angle, and no edge subtends more than pi, so the cap is
// never reached for sane thresholds; it exists so degenerate input can
// not make the work list grow without bound.
const maxSubdivisionDepth = 32

// subdivider refines mesh primitives until no edge subtends more than
// maxAngle at the globe's center, so long straight edges in source data
// follow the curvature of the ellipsoid instead of cutting through it as
// chords. Refinement runs on an explicit work list rather than the call
// stack.
type subdivider struct {
	frame    Frame
	maxAngle float64 // radians
	interp   Interpolation
}

// run refines every line and triangle primitive of the mesh in place.
// A mesh whose edges already satisfy the bound comes back unchanged.
func (s *subdivider) run(mesh *Mesh) {
	var (
		newIndices []uint32
		indexed    bool
	)
	for pi := range mesh.Prims {
		p := &mesh.Prims[pi]
		switch {
		case p.Indexed && p.Mode == DrawTriangles:
			refined := s.refineTriangles(mesh, *p)
			p.First = len(newIndices)
			p.Count = len(refined)
			newIndices = append(newIndices, refined...)
			indexed = true
		case !p.Indexed && (p.Mode == DrawLineStrip || p.Mode == DrawLineLoop):
			s.refineLinePrim(mesh, *p)
		}
	}
	if indexed {
		mesh.Indices = newIndices
	}
}

// refineLinePrim rebuilds a strip or loop range with refined edges.
// Line meshes hold a single range over the whole vertex buffer, so the
// buffer can be swapped wholesale.
func (s *subdivider) refineLinePrim(mesh *Mesh, p Primitive) {
	if p.First != 0 || p.Count != len(mesh.Verts) || p.Count < 2 {
		return
	}
	pts := mesh.Verts
	out := make([]r3.Vector, 0, len(pts))
	out = append(out, pts[0])
	for i := 0; i+1 < len(pts); i++ {
		out = s.refineEdge(pts[i], pts[i+1], out)
	}
	if p.Mode == DrawLineLoop {
		// Refine the closing edge but drop its duplicated endpoint.
		out = s.refineEdge(pts[len(pts)-1], pts[0], out)
		out = out[:len(out)-1]
	}
	mesh.Verts = out
	for pi := range mesh.Prims {
		mesh.Prims[pi].Count = len(out)
	}
}

// refineEdge appends the refined chain for edge a-b to out (excluding a,
// including b). The explicit stack is popped most-recent-first, which
// yields the chain in path order.
func (s *subdivider) refineEdge(a, b r3.Vector, out []r3.Vector) []r3.Vector {
	type edge struct {
		a, b  r3.Vector
		depth int
	}
	stack := []edge{{a, b, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.depth >= maxSubdivisionDepth || s.angleBetween(e.a, e.b) <= s.maxAngle {
			out = append(out, e.b)
			continue
		}
		m := s.midpoint(e.a, e.b)
		stack = append(stack,
			edge{m, e.b, e.depth + 1},
			edge{e.a, m, e.depth + 1},
		)
	}
	return out
}

// refineTriangles splits triangles across their longest over-limit edge
// until every edge satisfies the bound. Midpoints are cached per edge so
// that neighbouring triangles share the inserted vertex and the surface
// stays crack-free.
func (s *subdivider) refineTriangles(mesh *Mesh, p Primitive) []uint32 {
	type tri struct {
		v     [3]uint32
		depth int
	}

	midCache := make(map[[2]uint32]uint32)
	midpointIndex := func(a, b uint32) uint32 {
		key := [2]uint32{a, b}
		if a > b {
			key = [2]uint32{b, a}
		}
		if idx, ok := midCache[key]; ok {
			return idx
		}
		idx := uint32(len(mesh.Verts))
		mesh.Verts = append(mesh.Verts, s.midpoint(mesh.Verts[a], mesh.Verts[b]))
		midCache[key] = idx
		return idx
	}

	var stack []tri
	for i := p.First + p.Count - 3; i >= p.First; i -= 3 {
		stack = append(stack, tri{v: [3]uint32{mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]}})
	}

	out := make([]uint32, 0, p.Count)
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Longest edge by subtended angle.
		longest, worst := -1, s.maxAngle
		for e := 0; e < 3; e++ {
			a := mesh.Verts[t.v[e]]
			b := mesh.Verts[t.v[(e+1)%3]]
			if ang := s.angleBetween(a, b); ang > worst {
				longest, worst = e, ang
			}
		}
		if longest < 0 || t.depth >= maxSubdivisionDepth {
			out = append(out, t.v[0], t.v[1], t.v[2])
			continue
		}

		a, b, c := t.v[longest], t.v[(longest+1)%3], t.v[(longest+2)%3]
		m := midpointIndex(a, b)
		stack = append(stack,
			tri{v: [3]uint32{m, b, c}, depth: t.depth + 1},
			tri{v: [3]uint32{a, m, c}, depth: t.depth + 1},
		)
	}
	return out
}

// angleBetween returns the angle subtended at the globe center by two
// local-space points.
func (s *subdivider) angleBetween(a, b r3.Vector) float64 {
	wa := s.frame.Delocalize(a)
	wb := s.frame.Delocalize(b)
	return wa.Angle(wb).Radians()
}

// midpoint places the midpoint of edge a-b on the globe according to the
// interpolation mode, preserving the mean geocentric radius (and with it
// the interpolated height).
func (s *subdivider) midpoint(a, b r3.Vector) r3.Vector {
	wa := s.frame.Delocalize(a)
	wb := s.frame.Delocalize(b)
	radius := (wa.Norm() + wb.Norm()) / 2

	pa := s2.Point{Vector: wa.Normalize()}
	pb := s2.Point{Vector: wb.Normalize()}

	var dir r3.Vector
	if s.interp == GreatCircle {
		dir = s2.Interpolate(0.5, pa, pb).Vector
	} else {
		dir = rhumbMidpoint(pa, pb).Vector
	}
	return s.frame.Localize(dir.Mul(radius))
}

// rhumbMidpoint returns the point halfway along the loxodrome between a
// and b: mean latitude, with longitude interpolated in Mercator latitude
// so the bearing stays constant on both halves.
func rhumbMidpoint(a, b s2.Point) s2.Point {
	lla := s2.LatLngFromPoint(a)
	llb := s2.LatLngFromPoint(b)
	lat1, lon1 := lla.Lat.Radians(), lla.Lng.Radians()
	lat2, lon2 := llb.Lat.Radians(), llb.Lng.Radians()

	latMid := (lat1 + lat2) / 2

	dLon := lon2 - lon1
	if dLon > math.Pi {
		dLon -= 2 * math.Pi
	} else if dLon < -math.Pi {
		dLon += 2 * math.Pi
	}

	m1 := mercatorLatitude(lat1)
	m2 := mercatorLatitude(lat2)
	frac := 0.5
	if math.Abs(m2-m1) > 1e-12 {
		frac = (mercatorLatitude(latMid) - m1) / (m2 - m1)
	}
	lonMid := lon1 + dLon*frac

	return s2.PointFromLatLng(s2.LatLng{Lat: s1.Angle(latMid), Lng: s1.Angle(lonMid)})
}

// mercatorLatitude is the meridional stretch ln(tan(pi/4 + lat/2)),
// clamped short of the poles where it diverges.
func mercatorLatitude(lat float64) float64 {
	const maxLat = math.Pi/2 - 1e-9
	if lat > maxLat {
		lat = maxLat
	} else if lat < -maxLat {
		lat = -maxLat
	}
	return math.Log(math.Tan(math.Pi/4 + lat/2))
}
