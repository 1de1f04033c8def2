package meshbuild

import (
	"github.com/golang/geo/r3"

	"github.com/gogeo/meshbuild/internal/ribbon"
)

// buildLine builds line and point geometry: a plain GPU primitive for
// pixel-width strokes and point sets, or a polygonized ribbon mesh when
// the stroke width is in world units. kind is the resolved render type
// (ring, line string, or point set).
func (b *Builder) buildLine(part *Part, kind GeometryType, srs, mapSRS SpatialReference, frame Frame, makeECEF bool, style Style) *Mesh {
	mode := DrawPoints
	switch kind {
	case GeometryLineString:
		mode = DrawLineStrip
	case GeometryRing:
		mode = DrawLineLoop
	}

	pts := transformAndLocalize(part.Points, srs, mapSRS, frame, makeECEF)
	mesh := &Mesh{Verts: pts}

	line := style.Line
	if line != nil && line.Stroke.WidthUnits != Pixels {
		// World-unit width: extrude into a ribbon with constant
		// world-space thickness. The ribbon fully replaces the line
		// primitive, so no line-mode state applies afterwards.
		rm := ribbon.Extrude(ribbonStroke(line.Stroke), pts, b.upVectors(pts, frame, makeECEF), mode == DrawLineLoop)
		if len(rm.Verts) == 0 {
			return nil
		}
		mesh.Verts = rm.Verts
		mesh.Indices = rm.Indices
		mesh.Prims = []Primitive{{Mode: DrawTriangles, First: 0, Count: len(rm.Indices), Indexed: true}}
		return mesh
	}

	mesh.Prims = []Primitive{{Mode: mode, First: 0, Count: len(pts)}}
	if line != nil {
		mesh.State.LineWidth = line.Stroke.Width
		mesh.State.StippleFactor = line.Stroke.StippleFactor
		mesh.State.StipplePattern = line.Stroke.StipplePattern
	}
	if style.Point != nil {
		mesh.State.PointSize = style.Point.Size
	}

	// A single point has zero extent, which culling treats as always
	// invisible; give it a small explicit box.
	if mode == DrawPoints && len(pts) == 1 {
		half := r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}
		mesh.ExplicitBound = &Bound{Min: pts[0].Sub(half), Max: pts[0].Add(half)}
	}
	return mesh
}

// upVectors returns the per-vertex up directions for ribbon extrusion:
// away from the planet center in geocentric mode, +Z on a flat map.
func (b *Builder) upVectors(localPts []r3.Vector, frame Frame, makeECEF bool) []r3.Vector {
	if !makeECEF {
		return nil
	}
	ups := make([]r3.Vector, len(localPts))
	for i, p := range localPts {
		w := frame.Delocalize(p)
		if w.Norm2() == 0 {
			ups[i] = r3.Vector{Z: 1}
			continue
		}
		ups[i] = w.Normalize()
	}
	return ups
}

// ribbonStroke maps the public stroke style onto the extrusion operator's
// internal copy.
func ribbonStroke(s Stroke) ribbon.Stroke {
	rs := ribbon.Stroke{Width: s.Width, MiterLimit: s.MiterLimit}
	switch s.Cap {
	case CapSquare:
		rs.Cap = ribbon.CapSquare
	case CapRound:
		rs.Cap = ribbon.CapRound
	}
	switch s.Join {
	case JoinBevel:
		rs.Join = ribbon.JoinBevel
	case JoinRound:
		rs.Join = ribbon.JoinRound
	}
	return rs
}
