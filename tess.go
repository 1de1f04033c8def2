package meshbuild

import (
	"github.com/golang/geo/r3"
	libtess2 "github.com/hajimehoshi/go-libtess2"
)

// Tessellator decomposes a polygon given as contours (outer ring first,
// then holes) into a triangle set. Implementations must resolve the
// outer-minus-holes region under the positive winding rule and may emit a
// vertex buffer of their own (tessellation can add or merge vertices).
type Tessellator interface {
	Tessellate(contours [][]r3.Vector) (verts []r3.Vector, indices []uint32, err error)
}

// LibtessTessellator is the default Tessellator, backed by the libtess2
// sweep-line algorithm. It handles concave outlines, holes, and
// self-touching contours, and runs per-contour (each input ring is an
// independent contour rather than one merged outline).
type LibtessTessellator struct{}

// Tessellate implements Tessellator.
func (LibtessTessellator) Tessellate(contours [][]r3.Vector) ([]r3.Vector, []uint32, error) {
	cs := make([]libtess2.Contour, 0, len(contours))
	for _, ring := range contours {
		c := make(libtess2.Contour, len(ring))
		for i, p := range ring {
			c[i] = libtess2.Vertex{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
		}
		cs = append(cs, c)
	}

	elements, vertices, err := libtess2.Tesselate(cs, libtess2.WindingRulePositive)
	if err != nil {
		return nil, nil, err
	}

	verts := make([]r3.Vector, len(vertices))
	for i, v := range vertices {
		verts[i] = r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
	}
	indices := make([]uint32, len(elements))
	for i, e := range elements {
		indices[i] = uint32(e)
	}
	return verts, indices, nil
}
