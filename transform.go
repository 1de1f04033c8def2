package meshbuild

import "github.com/golang/geo/r3"

// transformAndLocalize maps input vertices into the local build frame:
// reproject from the feature reference into the map reference, optionally
// convert geodetic coordinates to geocentric ECEF, then subtract the
// frame origin. Pure and order-preserving; the output always has one
// point per input point.
func transformAndLocalize(pts []r3.Vector, srs, mapSRS SpatialReference, frame Frame, makeECEF bool) []r3.Vector {
	out := make([]r3.Vector, len(pts))
	for i, p := range pts {
		if makeECEF {
			// ECEF conversion wants geodetic lon/lat regardless of the
			// map's working projection.
			g := p
			if srs != nil {
				g = srs.ToGeographic(p)
			}
			out[i] = frame.Localize(geodeticToECEF(g))
			continue
		}
		out[i] = frame.Localize(reproject(p, srs, mapSRS))
	}
	return out
}
