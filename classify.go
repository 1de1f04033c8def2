package meshbuild

// renderType resolves how a part should be rendered from the symbols the
// active style exposes. Symbology wins over the native geometry type:
// first a polygon symbol with a compatible part, then a line symbol
// (closed polygons become ring outlines), then a point symbol, and only
// then the part's own type.
func renderType(part *Part, style Style) GeometryType {
	switch {
	case style.Poly != nil && part.Type != GeometryPointSet && part.TotalPointCount() >= 3:
		return GeometryPolygon
	case style.Line != nil:
		if part.Type == GeometryPolygon {
			return GeometryRing
		}
		return part.Type
	case style.Point != nil:
		return GeometryPointSet
	default:
		return part.Type
	}
}

// validForRender checks the minimum point count for the resolved render
// type. Failing parts are filtered, not errors: dropping a degenerate
// ring must never abort the batch.
func validForRender(t GeometryType, part *Part) bool {
	switch t {
	case GeometryPolygon:
		return part.Size() >= 3
	case GeometryLineString, GeometryRing:
		return part.Size() >= 2
	case GeometryPointSet:
		return part.Size() >= 1
	default:
		return part.Size() >= 1
	}
}

// primaryColor resolves the color a mesh's vertices are painted with:
// polygon fill, then line stroke, then point fill, defaulting to opaque
// white.
func primaryColor(style Style) RGBA {
	switch {
	case style.Poly != nil:
		return style.Poly.Fill
	case style.Line != nil:
		return style.Line.Stroke.Color
	case style.Point != nil:
		return style.Point.Fill
	default:
		return White
	}
}
