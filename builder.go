package meshbuild

import "math"

// Context describes the processing environment for one build: how input
// coordinates are georeferenced, the map's working reference, whether the
// output targets a geocentric globe, and the optional feature-index sink.
type Context struct {
	// Georeferenced marks the feature coordinates as geographic. When
	// false the input is treated as unprojected model space and passes
	// through untransformed.
	Georeferenced bool

	// FeatureSRS is the spatial reference of the input coordinates.
	FeatureSRS SpatialReference

	// MapSRS is the map's working reference. Nil means same as
	// FeatureSRS.
	MapSRS SpatialReference

	// Geocentric converts output vertices to ECEF for rendering on a
	// globe, and enables curvature subdivision.
	Geocentric bool

	// Tagger, when set, receives a callback per primitive range tying it
	// to the feature that produced it.
	Tagger FeatureTagger
}

// Result is the output of a successful build: the draw batch in local
// coordinates, the placement transform that delocalizes it into world
// space, and batch-level default draw state.
type Result struct {
	Batch *Batch

	// Transform is the local-to-world placement; applying it to the
	// batch's vertices reproduces world coordinates.
	Transform Affine

	// State carries the batch-wide defaults for line width and point
	// size resolved from the style.
	State State
}

// Builder compiles a feature list into a render batch. Configure it once
// and call Build; a builder must not be used from multiple goroutines
// concurrently, but may be reused across sequential builds.
type Builder struct {
	// Style is the base symbology; individual features may override it.
	Style Style

	// MaxAngle is the curvature subdivision threshold in degrees: no
	// mesh edge will subtend more than this angle at the globe center.
	// Default 1.
	MaxAngle float64

	// Interp is the default edge interpolation mode for subdivision,
	// overridable per feature. Default RhumbLine.
	Interp Interpolation

	// FeatureName, when set, names each mesh after its feature. Naming
	// forces one mesh per feature and disables batch consolidation.
	FeatureName func(*Feature) string

	// Tess overrides the polygon tessellation primitive. Nil uses
	// LibtessTessellator.
	Tess Tessellator

	frame          Frame
	batch          *Batch
	depthBiasPolys bool
}

// NewBuilder creates a builder with the given base style and default
// subdivision settings.
func NewBuilder(style Style) *Builder {
	return &Builder{
		Style:    style,
		MaxAngle: 1.0,
		Interp:   RhumbLine,
	}
}

func (b *Builder) tessellator() Tessellator {
	if b.Tess != nil {
		return b.Tess
	}
	return LibtessTessellator{}
}

// Build processes the feature list and returns the assembled batch. The
// boolean reports whether any geometry was produced; malformed parts are
// skipped silently and never abort the batch.
//
// When the base style carries both a polygon and a line symbol, Build
// runs two passes into the same batch — fills first, then outlines — so
// the stroke layers on top of the fill. The fill pass meshes are marked
// with a depth bias to keep the two layers from z-fighting.
func (b *Builder) Build(features []*Feature, ctx *Context) (*Result, bool) {
	if ctx == nil {
		ctx = &Context{}
	}
	b.batch = &Batch{}
	b.frame = computeFrame(features, ctx)

	if b.Style.Poly != nil && b.Style.Line != nil {
		b.depthBiasPolys = true
		b.process(features, ctx, b.Style.WithoutLine())
		b.depthBiasPolys = false
		b.process(features, ctx, b.Style.WithoutPoly())
	} else {
		b.process(features, ctx, b.Style)
	}

	if b.FeatureName == nil {
		b.batch.consolidate()
	}

	if len(b.batch.Meshes) == 0 {
		b.batch = nil
		return nil, false
	}
	res := &Result{
		Batch:     b.batch,
		Transform: b.frame.LocalToWorld,
		State:     b.batchState(),
	}
	b.batch = nil
	return res, true
}

// process runs one pass over the features with the given pass style.
func (b *Builder) process(features []*Feature, ctx *Context, passStyle Style) {
	makeECEF := false
	var featureSRS, mapSRS SpatialReference
	if ctx.Georeferenced {
		makeECEF = ctx.Geocentric
		featureSRS = ctx.FeatureSRS
		mapSRS = mapReference(ctx)
	}

	for _, feature := range features {
		style := passStyle
		if feature.Style != nil {
			style = *feature.Style
		}

		for _, part := range feature.Parts {
			if part.Size() == 0 {
				continue
			}

			kind := renderType(part, style)
			if kind == GeometryUnknown || !validForRender(kind, part) {
				continue
			}

			var mesh *Mesh
			if kind == GeometryPolygon {
				mesh = b.buildPolygon(part, featureSRS, mapSRS, b.frame, makeECEF, true)
			} else {
				mesh = b.buildLine(part, kind, featureSRS, mapSRS, b.frame, makeECEF, style)
			}
			if mesh == nil || len(mesh.Verts) == 0 {
				continue
			}

			if b.FeatureName != nil {
				mesh.Name = b.FeatureName(feature)
			}
			if b.depthBiasPolys && kind == GeometryPolygon {
				mesh.State.DepthBias = true
			}

			if makeECEF && kind != GeometryPointSet && !style.Line.subdivisionDisabled() {
				maxAngle := b.MaxAngle * math.Pi / 180
				Logger().Debug("running mesh subdivider", "maxAngleDeg", b.MaxAngle)
				s := &subdivider{
					frame:    b.frame,
					maxAngle: maxAngle,
					interp:   b.interpFor(feature),
				}
				s.run(mesh)
			}

			b.batch.append(mesh, primaryColor(style), feature, ctx.Tagger)
		}
	}
}

// interpFor resolves the interpolation mode for a feature: its own
// override, falling back to the builder default.
func (b *Builder) interpFor(f *Feature) Interpolation {
	if f.Interp != nil {
		return *f.Interp
	}
	return b.Interp
}

// batchState resolves batch-level draw defaults from the base style, so
// line and point primitives consolidated out of per-mesh state still
// draw at a sensible size.
func (b *Builder) batchState() State {
	st := State{LineWidth: 1}
	if b.Style.Line != nil && b.Style.Line.Stroke.Width > 1 && b.Style.Line.Stroke.WidthUnits == Pixels {
		st.LineWidth = b.Style.Line.Stroke.Width
	}
	if b.Style.Point != nil && b.Style.Point.Size > 0 {
		st.PointSize = b.Style.Point.Size
	}
	return st
}
