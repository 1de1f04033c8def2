package meshbuild

// Unit selects the space a stroke width is measured in.
type Unit int

const (
	// Pixels is a screen-space width: the line keeps the same apparent
	// thickness at any distance, drawn as a GPU line primitive.
	Pixels Unit = iota
	// Meters is a world-space width: the line is extruded into a ribbon
	// mesh with correct perspective thickness.
	Meters
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// CapButt specifies a flat line cap.
	CapButt LineCap = iota
	// CapSquare specifies a square cap extending half a width past the end.
	CapSquare
	// CapRound specifies a rounded line cap.
	CapRound
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter LineJoin = iota
	// JoinBevel specifies a beveled join.
	JoinBevel
	// JoinRound specifies a rounded join.
	JoinRound
)

// Stroke defines the visual style of a line.
// It encapsulates all stroke-related properties in a single struct.
type Stroke struct {
	// Color is the stroke color.
	Color RGBA

	// Width is the line width, measured in WidthUnits. Default: 1.0
	Width float64

	// WidthUnits selects screen-space or world-space width.
	// Default: Pixels
	WidthUnits Unit

	// Cap is the shape of line endpoints. Default: CapButt
	Cap LineCap

	// Join is the shape of line joins. Default: JoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 4.0 (common default, matches SVG)
	MiterLimit float64

	// StippleFactor and StipplePattern describe a stipple for pixel-width
	// lines, in the classic 16-bit GL pattern form. A zero factor means a
	// solid line.
	StippleFactor  int
	StipplePattern uint16
}

// DefaultStroke returns a Stroke with default settings: a solid white
// 1-pixel line with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Color:      White,
		Width:      1.0,
		WidthUnits: Pixels,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 4.0,
	}
}

// WithColor returns a copy of the Stroke with the given color.
func (s Stroke) WithColor(c RGBA) Stroke {
	s.Color = c
	return s
}

// WithWidth returns a copy of the Stroke with the given width in the
// given units.
func (s Stroke) WithWidth(w float64, u Unit) Stroke {
	s.Width = w
	s.WidthUnits = u
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(c LineCap) Stroke {
	s.Cap = c
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(j LineJoin) Stroke {
	s.Join = j
	return s
}

// WithStipple returns a copy of the Stroke with the given stipple.
func (s Stroke) WithStipple(factor int, pattern uint16) Stroke {
	s.StippleFactor = factor
	s.StipplePattern = pattern
	return s
}
