package meshbuild

// Style is a capability bag of optional symbols. Which symbols are
// present — not the raw geometry type — decides how a part is rendered:
// a closed ring with only a line symbol renders as an outline even though
// its native type is polygon.
type Style struct {
	Point *PointSymbol
	Line  *LineSymbol
	Poly  *PolygonSymbol
}

// Empty returns true when the style exposes no symbol at all.
func (s Style) Empty() bool {
	return s.Point == nil && s.Line == nil && s.Poly == nil
}

// WithoutLine returns a copy of the style with the line symbol removed.
// Used for the polygon pass when a style carries both fill and stroke.
func (s Style) WithoutLine() Style {
	s.Line = nil
	return s
}

// WithoutPoly returns a copy of the style with the polygon symbol removed.
func (s Style) WithoutPoly() Style {
	s.Poly = nil
	return s
}

// PointSymbol renders point sets as screen-space points.
type PointSymbol struct {
	Fill RGBA

	// Size is the point size in pixels. Zero means renderer default.
	Size float64
}

// LineSymbol renders lines and ring outlines with a stroke.
type LineSymbol struct {
	Stroke Stroke

	// Tessellation, when set to zero, disables globe-conforming
	// subdivision for geometry rendered with this symbol. Nil leaves
	// subdivision enabled.
	Tessellation *int
}

// subdivisionDisabled reports an explicit tessellation opt-out.
func (l *LineSymbol) subdivisionDisabled() bool {
	return l != nil && l.Tessellation != nil && *l.Tessellation == 0
}

// PolygonSymbol renders polygon interiors as filled triangle sets.
type PolygonSymbol struct {
	Fill RGBA
}
