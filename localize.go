package meshbuild

import "github.com/golang/geo/r3"

// Frame is the local tangent-frame transform pair. All vertex math
// between construction and final delocalization happens in local space:
// world coordinates on a globe are ~6.4e6 meters from the origin, where
// float32 GPU vertices (and chained float64 ops) lose precision and
// geometry jitters.
type Frame struct {
	WorldToLocal Affine
	LocalToWorld Affine
}

// NewFrame creates a frame centered on the given world-space origin.
func NewFrame(origin r3.Vector) Frame {
	return Frame{
		WorldToLocal: TranslateAffine(origin.Mul(-1)),
		LocalToWorld: TranslateAffine(origin),
	}
}

// Localize maps a world-space point into the frame.
func (f Frame) Localize(p r3.Vector) r3.Vector { return f.WorldToLocal.Apply(p) }

// Delocalize maps a local-space point back to world space.
func (f Frame) Delocalize(p r3.Vector) r3.Vector { return f.LocalToWorld.Apply(p) }

// computeFrame derives the local frame from the aggregate extent of the
// feature list: the extent center, transformed into world coordinates,
// becomes the frame origin. With no georeferencing (or no points) the
// frame is the identity.
func computeFrame(features []*Feature, ctx *Context) Frame {
	if !ctx.Georeferenced {
		return Frame{WorldToLocal: IdentityAffine(), LocalToWorld: IdentityAffine()}
	}

	var (
		min, max r3.Vector
		any      bool
	)
	for _, f := range features {
		for _, part := range f.Parts {
			extendExtent(part, &min, &max, &any)
		}
	}
	if !any {
		return Frame{WorldToLocal: IdentityAffine(), LocalToWorld: IdentityAffine()}
	}

	center := min.Add(max).Mul(0.5)
	if ctx.FeatureSRS != nil {
		center = reproject(center, ctx.FeatureSRS, mapReference(ctx))
	}
	if ctx.Geocentric {
		if ctx.MapSRS != nil {
			center = ctx.MapSRS.ToGeographic(center)
		}
		center = geodeticToECEF(center)
	}
	return NewFrame(center)
}

func extendExtent(part *Part, min, max *r3.Vector, any *bool) {
	for _, p := range part.Points {
		if !*any {
			*min, *max = p, p
			*any = true
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	for _, h := range part.Holes {
		extendExtent(h, min, max, any)
	}
}

// mapReference returns the map-side reference of the context, falling
// back to the feature reference so a half-configured context still
// round-trips coordinates unchanged.
func mapReference(ctx *Context) SpatialReference {
	if ctx.MapSRS != nil {
		return ctx.MapSRS
	}
	return ctx.FeatureSRS
}
