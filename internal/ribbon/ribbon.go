package ribbon

import (
	"math"

	"github.com/golang/geo/r3"
)

// LineCap specifies the shape of ribbon endpoints.
// Internal copy of the root package's enum to avoid an import cycle.
type LineCap int

const (
	// CapButt ends the ribbon flat at the endpoint.
	CapButt LineCap = iota
	// CapSquare extends the ribbon half a width past the endpoint.
	CapSquare
	// CapRound closes the end with a semicircular fan.
	CapRound
)

// LineJoin specifies the corner shape between ribbon segments.
type LineJoin int

const (
	// JoinMiter produces a sharp corner, limited by the miter limit.
	JoinMiter LineJoin = iota
	// JoinBevel cuts the corner with a flat wedge.
	JoinBevel
	// JoinRound sweeps the corner with an arc.
	JoinRound
)

// Stroke is the subset of stroke style the extrusion needs. Width is in
// world units.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// Mesh is the extruded ribbon: a vertex buffer and indexed triangles.
type Mesh struct {
	Verts   []r3.Vector
	Indices []uint32
}

// roundSegmentAngle is the largest arc a single join/cap segment spans.
const roundSegmentAngle = math.Pi / 8

const epsilon = 1e-12

// Extrude converts the polyline pts into a ribbon of constant world
// width. ups gives the local up direction per point (the ribbon lies in
// the plane perpendicular to it); nil means +Z everywhere. With closed
// set the last point joins back to the first and no caps are emitted.
//
// A two-point open line with butt caps yields exactly four vertices
// forming one quad of the stroke width centered on the segment.
func Extrude(st Stroke, pts, ups []r3.Vector, closed bool) Mesh {
	pts, ups = dedupe(pts, ups, closed)
	if len(pts) < 2 || st.Width <= 0 {
		return Mesh{}
	}
	if st.MiterLimit <= 0 {
		st.MiterLimit = 4.0
	}

	e := &extruder{st: st, half: st.Width / 2, pts: pts, ups: ups, closed: closed}
	if !closed && st.Cap == CapSquare {
		e.extendEnds()
	}
	e.emitPairs()
	e.stitch()
	if !closed && st.Cap == CapRound {
		e.roundCap(0, false)
		e.roundCap(len(e.pts)-1, true)
	}
	return e.mesh
}

type extruder struct {
	st     Stroke
	half   float64
	pts    []r3.Vector
	ups    []r3.Vector
	closed bool

	mesh  Mesh
	chain []int // pair order along the path; pair i owns verts 2i and 2i+1
}

// dedupe drops consecutive duplicate points (and a closing point equal to
// the first), keeping the up vectors aligned with the survivors.
func dedupe(pts, ups []r3.Vector, closed bool) ([]r3.Vector, []r3.Vector) {
	outP := make([]r3.Vector, 0, len(pts))
	outU := make([]r3.Vector, 0, len(pts))
	up := func(i int) r3.Vector {
		if i < len(ups) {
			return ups[i]
		}
		return r3.Vector{Z: 1}
	}
	for i, p := range pts {
		if len(outP) > 0 && p.Sub(outP[len(outP)-1]).Norm2() < epsilon {
			continue
		}
		outP = append(outP, p)
		outU = append(outU, up(i))
	}
	if closed && len(outP) > 1 && outP[0].Sub(outP[len(outP)-1]).Norm2() < epsilon {
		outP = outP[:len(outP)-1]
		outU = outU[:len(outU)-1]
	}
	return outP, outU
}

// extendEnds pushes the endpoints out along the path for square caps.
func (e *extruder) extendEnds() {
	n := len(e.pts)
	pts := make([]r3.Vector, n)
	copy(pts, e.pts)
	d0 := pts[1].Sub(pts[0]).Normalize()
	dn := pts[n-1].Sub(pts[n-2]).Normalize()
	pts[0] = pts[0].Sub(d0.Mul(e.half))
	pts[n-1] = pts[n-1].Add(dn.Mul(e.half))
	e.pts = pts
}

// side returns the unit side vector at point i for travel direction dir.
func (e *extruder) side(i int, dir r3.Vector) r3.Vector {
	s := e.ups[i].Cross(dir)
	if s.Norm2() < epsilon {
		// Path runs along the up axis; any perpendicular will do.
		s = dir.Ortho()
	}
	return s.Normalize()
}

// addPair appends the left/right offset vertices for point i and records
// the pair in the chain. scale widens the offset for miter corners.
func (e *extruder) addPair(i int, side r3.Vector, scale float64) {
	p := e.pts[i]
	off := side.Mul(e.half * scale)
	pair := len(e.mesh.Verts) / 2
	e.mesh.Verts = append(e.mesh.Verts, p.Add(off), p.Sub(off))
	e.chain = append(e.chain, pair)
}

// emitPairs walks the path and lays down offset pairs: one per straight
// or mitered vertex, several per beveled or rounded corner.
func (e *extruder) emitPairs() {
	n := len(e.pts)
	for i := 0; i < n; i++ {
		dPrev, dNext, interior := e.directions(i)
		if !interior {
			d := dNext
			if i == n-1 {
				d = dPrev
			}
			e.addPair(i, e.side(i, d), 1)
			continue
		}

		bisector := dPrev.Add(dNext)
		if bisector.Norm2() < epsilon {
			// Full reversal; a miter would be infinite.
			e.cornerPairs(i, dPrev, dNext)
			continue
		}
		bisector = bisector.Normalize()

		// cos of half the turn angle; the miter offset grows as 1/cos.
		cosHalf := bisector.Dot(dNext)
		if cosHalf < epsilon {
			e.cornerPairs(i, dPrev, dNext)
			continue
		}
		scale := 1 / cosHalf

		if e.st.Join == JoinMiter && scale <= e.st.MiterLimit {
			e.addPair(i, e.side(i, bisector), scale)
			continue
		}
		if scale < 1+1e-9 {
			// Effectively straight; no join geometry needed.
			e.addPair(i, e.side(i, bisector), 1)
			continue
		}
		e.cornerPairs(i, dPrev, dNext)
	}
}

// directions returns the incoming and outgoing travel directions at
// point i. interior is false at the open ends of an unclosed path.
func (e *extruder) directions(i int) (dPrev, dNext r3.Vector, interior bool) {
	n := len(e.pts)
	hasPrev := i > 0 || e.closed
	hasNext := i < n-1 || e.closed
	if hasPrev {
		dPrev = e.pts[i].Sub(e.pts[(i-1+n)%n]).Normalize()
	}
	if hasNext {
		dNext = e.pts[(i+1)%n].Sub(e.pts[i]).Normalize()
	}
	return dPrev, dNext, hasPrev && hasNext
}

// cornerPairs emits the pairs of a bevel or round corner: one pair on the
// incoming normal, optionally arc pairs, one pair on the outgoing normal.
// The quads stitched between consecutive pairs form the join wedge.
func (e *extruder) cornerPairs(i int, dPrev, dNext r3.Vector) {
	sIn := e.side(i, dPrev)
	sOut := e.side(i, dNext)
	e.addPair(i, sIn, 1)
	if e.st.Join == JoinRound {
		angle := math.Acos(clamp(sIn.Dot(sOut), -1, 1))
		steps := int(math.Ceil(angle / roundSegmentAngle))
		for k := 1; k < steps; k++ {
			t := float64(k) / float64(steps)
			mid := sIn.Mul(1 - t).Add(sOut.Mul(t))
			if mid.Norm2() >= epsilon {
				e.addPair(i, mid.Normalize(), 1)
			}
		}
	}
	e.addPair(i, sOut, 1)
}

// stitch connects consecutive pairs with quads (two triangles each);
// closed ribbons wrap the last pair back to the first.
func (e *extruder) stitch() {
	m := len(e.chain)
	last := m - 1
	if e.closed {
		last = m
	}
	for k := 0; k < last; k++ {
		a := e.chain[k]
		b := e.chain[(k+1)%m]
		la, ra := uint32(2*a), uint32(2*a+1)
		lb, rb := uint32(2*b), uint32(2*b+1)
		e.mesh.Indices = append(e.mesh.Indices, la, ra, lb, ra, rb, lb)
	}
}

// roundCap closes an open end with a semicircular fan around the
// endpoint.
func (e *extruder) roundCap(i int, atEnd bool) {
	var dir r3.Vector
	if atEnd {
		dir = e.pts[i].Sub(e.pts[i-1]).Normalize()
	} else {
		dir = e.pts[i].Sub(e.pts[i+1]).Normalize()
	}
	side := e.side(i, dir)

	center := uint32(len(e.mesh.Verts))
	e.mesh.Verts = append(e.mesh.Verts, e.pts[i])

	steps := int(math.Ceil(math.Pi / roundSegmentAngle))
	prev := uint32(len(e.mesh.Verts))
	e.mesh.Verts = append(e.mesh.Verts, e.pts[i].Add(side.Mul(e.half)))
	for k := 1; k <= steps; k++ {
		phi := math.Pi * float64(k) / float64(steps)
		off := side.Mul(math.Cos(phi)).Add(dir.Mul(math.Sin(phi))).Mul(e.half)
		cur := uint32(len(e.mesh.Verts))
		e.mesh.Verts = append(e.mesh.Verts, e.pts[i].Add(off))
		e.mesh.Indices = append(e.mesh.Indices, center, prev, cur)
		prev = cur
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
