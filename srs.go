package meshbuild

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// SpatialReference converts between a coordinate system and geographic
// lon/lat degrees. Height passes through unchanged in meters. Implement
// it to plug a custom projection into the builder; Geographic and
// WebMercator cover the common cases.
type SpatialReference interface {
	// Name returns a short identifier for log messages.
	Name() string

	// ToGeographic converts p (X=easting/lon, Y=northing/lat, Z=height)
	// to lon/lat degrees with unchanged height.
	ToGeographic(p r3.Vector) r3.Vector

	// FromGeographic converts a lon/lat-degree point into this reference.
	FromGeographic(p r3.Vector) r3.Vector
}

// Geographic is plain WGS84 lon/lat in degrees.
var Geographic SpatialReference = geographic{}

// WebMercator is EPSG:3857 spherical-mercator meters.
var WebMercator SpatialReference = webMercator{}

type geographic struct{}

func (geographic) Name() string { return "WGS84" }

func (geographic) ToGeographic(p r3.Vector) r3.Vector { return p }

func (geographic) FromGeographic(p r3.Vector) r3.Vector { return p }

type webMercator struct{}

func (webMercator) Name() string { return "WebMercator" }

func (webMercator) ToGeographic(p r3.Vector) r3.Vector {
	ll := project.Mercator.ToWGS84(orb.Point{p.X, p.Y})
	return r3.Vector{X: ll[0], Y: ll[1], Z: p.Z}
}

func (webMercator) FromGeographic(p r3.Vector) r3.Vector {
	m := project.WGS84.ToMercator(orb.Point{p.X, p.Y})
	return r3.Vector{X: m[0], Y: m[1], Z: p.Z}
}

// reproject converts p between two spatial references. A nil reference on
// either side means the coordinates are not georeferenced and pass
// through unchanged.
func reproject(p r3.Vector, from, to SpatialReference) r3.Vector {
	if from == nil || to == nil || from == to {
		return p
	}
	return to.FromGeographic(from.ToGeographic(p))
}

// WGS84 ellipsoid.
const (
	wgs84SemiMajor  = 6378137.0
	wgs84Flattening = 1.0 / 298.257223563
)

var wgs84Ecc2 = wgs84Flattening * (2 - wgs84Flattening)

// geodeticToECEF converts lon/lat degrees + height meters to
// Earth-Centered-Earth-Fixed meters on the WGS84 ellipsoid.
func geodeticToECEF(p r3.Vector) r3.Vector {
	lon := p.X * math.Pi / 180
	lat := p.Y * math.Pi / 180
	h := p.Z

	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	// Prime vertical radius of curvature.
	n := wgs84SemiMajor / math.Sqrt(1-wgs84Ecc2*sinLat*sinLat)

	return r3.Vector{
		X: (n + h) * cosLat * cosLon,
		Y: (n + h) * cosLat * sinLon,
		Z: (n*(1-wgs84Ecc2) + h) * sinLat,
	}
}
