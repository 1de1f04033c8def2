package meshbuild

import "github.com/golang/geo/r3"

// DrawMode is the GPU primitive mode of a draw range.
type DrawMode int

const (
	// DrawPoints draws each vertex as a point.
	DrawPoints DrawMode = iota
	// DrawLineStrip draws a connected open polyline.
	DrawLineStrip
	// DrawLineLoop draws a closed polyline.
	DrawLineLoop
	// DrawTriangles draws independent triangles.
	DrawTriangles
)

// String returns the name of the draw mode.
func (m DrawMode) String() string {
	switch m {
	case DrawPoints:
		return "Points"
	case DrawLineStrip:
		return "LineStrip"
	case DrawLineLoop:
		return "LineLoop"
	case DrawTriangles:
		return "Triangles"
	default:
		return "Unknown"
	}
}

// Primitive is one draw range of a mesh. A non-indexed primitive covers
// Verts[First:First+Count]; an indexed one covers
// Indices[First:First+Count].
type Primitive struct {
	Mode    DrawMode
	First   int
	Count   int
	Indexed bool
}

// State carries the immutable fixed-function attributes a mesh is drawn
// with. Zero values mean renderer defaults.
type State struct {
	// LineWidth is the pixel width for line primitives.
	LineWidth float64

	// PointSize is the pixel size for point primitives.
	PointSize float64

	// StippleFactor and StipplePattern enable line stippling when the
	// factor is non-zero.
	StippleFactor  int
	StipplePattern uint16

	// DepthBias requests a depth/polygon offset so this mesh can sit
	// under later-drawn layers without z-fighting.
	DepthBias bool
}

// Bound is an axis-aligned box in the mesh's coordinate space.
type Bound struct {
	Min, Max r3.Vector
}

// Mesh is one renderable unit: a vertex buffer, optional index buffer,
// draw ranges, per-vertex colors, and draw state. Meshes are mutated only
// during construction and are immutable once appended to a Batch.
type Mesh struct {
	Verts   []r3.Vector
	Indices []uint32
	Prims   []Primitive
	Colors  []RGBA
	State   State

	// Name identifies the originating feature when the builder is
	// configured with a feature-name function. Named meshes are never
	// merged.
	Name string

	// Feature is the back-reference used for tagging and picking.
	Feature *Feature

	// ExplicitBound overrides the computed bound. Set for single-point
	// meshes whose zero extent would break culling.
	ExplicitBound *Bound
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Verts) }

// Bounds returns the explicit bound when set, otherwise the box enclosing
// all vertices. An empty mesh returns the zero bound.
func (m *Mesh) Bounds() Bound {
	if m.ExplicitBound != nil {
		return *m.ExplicitBound
	}
	if len(m.Verts) == 0 {
		return Bound{}
	}
	b := Bound{Min: m.Verts[0], Max: m.Verts[0]}
	for _, v := range m.Verts[1:] {
		if v.X < b.Min.X {
			b.Min.X = v.X
		}
		if v.Y < b.Min.Y {
			b.Min.Y = v.Y
		}
		if v.Z < b.Min.Z {
			b.Min.Z = v.Z
		}
		if v.X > b.Max.X {
			b.Max.X = v.X
		}
		if v.Y > b.Max.Y {
			b.Max.Y = v.Y
		}
		if v.Z > b.Max.Z {
			b.Max.Z = v.Z
		}
	}
	return b
}

// Triangles returns the vertex-index triples of an indexed triangle
// primitive, or nil for any other primitive kind. It is a convenience
// for callers that want triangles without decoding the index buffer.
func (m *Mesh) Triangles(p Primitive) [][3]uint32 {
	if p.Mode != DrawTriangles || !p.Indexed {
		return nil
	}
	tris := make([][3]uint32, 0, p.Count/3)
	for i := p.First; i+2 < p.First+p.Count; i += 3 {
		tris = append(tris, [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]})
	}
	return tris
}
