package meshbuild

// Interpolation selects how intermediate points on a long edge are placed
// on the globe during mesh subdivision.
type Interpolation int

const (
	// GreatCircle places midpoints on the geodesic between the endpoints.
	GreatCircle Interpolation = iota
	// RhumbLine places midpoints on the constant-bearing loxodrome.
	RhumbLine
)

// String returns the name of the interpolation mode.
func (i Interpolation) String() string {
	if i == RhumbLine {
		return "RhumbLine"
	}
	return "GreatCircle"
}

// Feature is one input record: an identifier, a multi-part geometry, and
// optional per-feature overrides for style and geo-interpolation.
// Features are owned by the caller and read-only to the builder.
type Feature struct {
	ID    uint64
	Parts []*Part

	// Style overrides the builder's base style for this feature when
	// non-nil.
	Style *Style

	// Interp overrides the builder's interpolation mode for this feature
	// when non-nil.
	Interp *Interpolation
}

// NewFeature creates a feature from geometry parts.
func NewFeature(id uint64, parts ...*Part) *Feature {
	return &Feature{ID: id, Parts: parts}
}
