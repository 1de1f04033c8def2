// Package meshbuild compiles geospatial vector features into renderable
// mesh primitives for a 3D globe pipeline.
//
// # Overview
//
// meshbuild takes features carrying points, lines, and polygons (with
// holes), decides how each geometry part should be rendered from the
// symbology attached to it, and produces GPU-friendly draw batches:
// tessellated triangle sets for polygons, ribbon meshes for world-width
// strokes, and plain line/point primitives otherwise. On a geocentric
// globe it subdivides long edges so straight segments in source data
// follow the curvature of the ellipsoid instead of cutting through it.
//
// # Quick Start
//
//	import "github.com/gogeo/meshbuild"
//
//	style := meshbuild.Style{Poly: &meshbuild.PolygonSymbol{Fill: meshbuild.RGB(0.2, 0.6, 0.2)}}
//	b := meshbuild.NewBuilder(style)
//
//	res, ok := b.Build(features, &meshbuild.Context{
//	    Georeferenced: true,
//	    FeatureSRS:    meshbuild.Geographic,
//	    MapSRS:        meshbuild.Geographic,
//	    Geocentric:    true,
//	})
//	if ok {
//	    upload(res.Batch, res.Transform)
//	}
//
// # Architecture
//
// The build runs as a sequential per-feature pipeline: classify the part
// by symbology, transform its vertices into a precision-safe local frame,
// build a polygon or line mesh, subdivide it against the globe, then
// color, tag, and append it to the batch. After all features the batch is
// consolidated into a minimal set of draw calls and handed back together
// with the local-to-world placement transform.
//
//   - Public API: Builder, Feature, Part, Style, Mesh, Batch
//   - Collaborator interfaces: SpatialReference, Tessellator, FeatureTagger
//   - Internal: ribbon (world-width stroke extrusion)
//
// # Coordinate Frames
//
// Input vertices are lon/lat degrees with height in meters (Geographic)
// or projected meters (WebMercator). In geocentric mode vertices are
// converted to ECEF meters. All mesh construction happens in a local
// tangent frame near the coordinate origin; Result.Transform places the
// batch back into world space.
//
// # Error Handling
//
// Malformed parts are dropped silently: one bad ring never aborts the
// batch. Build reports false only when no geometry at all was produced.
package meshbuild
