package meshbuild

// Batch is the accumulated output of one build invocation. It is owned
// exclusively by the builder until Build returns, then ownership passes
// to the caller; it is never mutated afterwards.
type Batch struct {
	Meshes []*Mesh
}

// append colors, tags, and stores a finished mesh. Colors are assigned
// per vertex rather than once per mesh so that meshes of differing color
// can later be merged into one draw batch without losing fidelity.
func (b *Batch) append(m *Mesh, color RGBA, f *Feature, tagger FeatureTagger) {
	colors := make([]RGBA, len(m.Verts))
	for i := range colors {
		colors[i] = color
	}
	m.Colors = colors
	m.Feature = f

	if tagger != nil {
		for _, prim := range m.Prims {
			tagger.Tag(m, prim, f)
		}
	}
	b.Meshes = append(b.Meshes, m)
}

// consolidate merges compatible meshes into the minimum number of draw
// batches and reorders triangle lists for vertex-cache locality. Named
// meshes and meshes with an explicit bound stay untouched.
func (b *Batch) consolidate() {
	type mergeKey struct {
		state   State
		indexed bool
	}

	groups := make(map[mergeKey][]*Mesh)
	var order []mergeKey
	var result []*Mesh

	for _, m := range b.Meshes {
		if m.Name != "" || m.ExplicitBound != nil || len(m.Verts) == 0 {
			result = append(result, m)
			continue
		}
		k := mergeKey{state: m.State, indexed: len(m.Indices) > 0}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], m)
	}

	merged := 0
	for _, k := range order {
		group := groups[k]
		if len(group) == 1 {
			result = append(result, group[0])
			continue
		}
		result = append(result, mergeMeshes(group))
		merged += len(group)
	}

	for _, m := range result {
		optimizeMesh(m)
	}

	if merged > 0 {
		Logger().Debug("consolidated batch",
			"input", len(b.Meshes), "output", len(result))
	}
	b.Meshes = result
}

// mergeMeshes concatenates meshes with identical draw state into one.
// Non-indexed ranges are rebased onto the combined vertex buffer; index
// buffers are offset and appended. The merged mesh keeps no single
// feature back-reference, which is why tagging happens before
// consolidation.
func mergeMeshes(group []*Mesh) *Mesh {
	out := &Mesh{State: group[0].State}
	for _, m := range group {
		vertBase := len(out.Verts)
		indexBase := len(out.Indices)
		out.Verts = append(out.Verts, m.Verts...)
		out.Colors = append(out.Colors, m.Colors...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, idx+uint32(vertBase))
		}
		for _, p := range m.Prims {
			if p.Indexed {
				p.First += indexBase
			} else {
				p.First += vertBase
			}
			out.Prims = append(out.Prims, p)
		}
	}

	// Adjacent triangle ranges over one index buffer collapse into a
	// single draw call.
	out.Prims = coalesceTrianglePrims(out.Prims)
	return out
}

// coalesceTrianglePrims folds back-to-back indexed triangle ranges into
// one range.
func coalesceTrianglePrims(prims []Primitive) []Primitive {
	var out []Primitive
	for _, p := range prims {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.Indexed && p.Indexed &&
				last.Mode == DrawTriangles && p.Mode == DrawTriangles &&
				last.First+last.Count == p.First {
				last.Count += p.Count
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// optimizeMesh applies the vertex-cache reorder to every indexed
// triangle range of the mesh.
func optimizeMesh(m *Mesh) {
	for _, p := range m.Prims {
		if !p.Indexed || p.Mode != DrawTriangles {
			continue
		}
		seg := m.Indices[p.First : p.First+p.Count]
		copy(seg, optimizeTriangleOrder(seg))
	}
}
