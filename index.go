package meshbuild

// FeatureTagger is an optional sink that records which primitive ranges
// were produced for which feature, enabling hit-testing and attribution
// later. The builder calls it but never owns it: lifetime and storage
// belong to the caller.
type FeatureTagger interface {
	// Tag associates one primitive range of the mesh with the feature
	// that produced it. Called once per primitive, before batch
	// consolidation.
	Tag(mesh *Mesh, prim Primitive, f *Feature)
}
