package meshbuild

import "github.com/golang/geo/r3"

// buildPolygon assembles a polygon part (outer ring plus holes) into a
// single mesh. The outer ring becomes a line-loop range starting at 0;
// each valid hole is appended at the running offset with its own range.
// With tessellate set, the loop ranges are replaced by the triangle set
// the tessellator returns, which resolves the outer-minus-holes region.
// Invalid rings produce a nil mesh; invalid holes are skipped.
func (b *Builder) buildPolygon(part *Part, srs, mapSRS SpatialReference, frame Frame, makeECEF, tessellate bool) *Mesh {
	if !part.IsValid() {
		return nil
	}

	mesh := &Mesh{}
	outer := transformAndLocalize(part.Points, srs, mapSRS, frame, makeECEF)
	mesh.Verts = append(mesh.Verts, outer...)
	mesh.Prims = append(mesh.Prims, Primitive{Mode: DrawLineLoop, First: 0, Count: len(outer)})

	outerSign := signedAreaXY(outer)
	contours := [][]r3.Vector{outer}
	offset := len(outer)
	for _, hole := range part.Holes {
		if !hole.IsValid() {
			continue
		}
		ring := transformAndLocalize(hole.Points, srs, mapSRS, frame, makeECEF)
		// A hole subtracts under the positive winding rule only when it
		// winds opposite the outer ring; source data often winds every
		// ring the same way.
		if outerSign*signedAreaXY(ring) > 0 {
			reverseRing(ring)
		}
		mesh.Verts = append(mesh.Verts, ring...)
		mesh.Prims = append(mesh.Prims, Primitive{Mode: DrawLineLoop, First: offset, Count: len(ring)})
		contours = append(contours, ring)
		offset += len(ring)
	}

	if !tessellate {
		return mesh
	}

	verts, indices, err := b.tessellator().Tessellate(contours)
	if err != nil {
		Logger().Warn("polygon tessellation failed, dropping part",
			"rings", len(contours), "err", err)
		return nil
	}
	mesh.Verts = verts
	mesh.Indices = indices
	mesh.Prims = []Primitive{{Mode: DrawTriangles, First: 0, Count: len(indices), Indexed: true}}
	return mesh
}

// signedAreaXY returns twice the signed area of the ring's XY projection.
// The sign encodes winding direction.
func signedAreaXY(ring []r3.Vector) float64 {
	var a float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

func reverseRing(ring []r3.Vector) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}
