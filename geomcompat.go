package meshbuild

import (
	"github.com/golang/geo/r3"
	geom "github.com/twpayne/go-geom"
)

// PartsFromGeom converts a go-geom geometry into builder parts, so
// features decoded from WKB/WKT/GeoJSON can feed the pipeline directly.
// XY layouts get a zero height; XYZ/XYZM layouts keep their Z. Polygon
// rings beyond the first become holes of the polygon part. Empty
// geometries yield no parts.
func PartsFromGeom(g geom.T) []*Part {
	if g == nil {
		return nil
	}

	switch g := g.(type) {
	case *geom.Point:
		pts := coordsToVectors(g.Layout(), []geom.Coord{g.Coords()})
		if len(pts) == 0 {
			return nil
		}
		return []*Part{{Type: GeometryPointSet, Points: pts}}

	case *geom.MultiPoint:
		pts := coordsToVectors(g.Layout(), g.Coords())
		if len(pts) == 0 {
			return nil
		}
		return []*Part{{Type: GeometryPointSet, Points: pts}}

	case *geom.LineString:
		pts := coordsToVectors(g.Layout(), g.Coords())
		if len(pts) == 0 {
			return nil
		}
		return []*Part{{Type: GeometryLineString, Points: pts}}

	case *geom.MultiLineString:
		var parts []*Part
		for _, line := range g.Coords() {
			if pts := coordsToVectors(g.Layout(), line); len(pts) > 0 {
				parts = append(parts, &Part{Type: GeometryLineString, Points: pts})
			}
		}
		return parts

	case *geom.LinearRing:
		pts := ringToVectors(g.Layout(), g.Coords())
		if len(pts) == 0 {
			return nil
		}
		return []*Part{{Type: GeometryRing, Points: pts}}

	case *geom.Polygon:
		if p := polygonToPart(g.Layout(), g.Coords()); p != nil {
			return []*Part{p}
		}
		return nil

	case *geom.MultiPolygon:
		var parts []*Part
		for _, rings := range g.Coords() {
			if p := polygonToPart(g.Layout(), rings); p != nil {
				parts = append(parts, p)
			}
		}
		return parts

	case *geom.GeometryCollection:
		var parts []*Part
		for _, sub := range g.Geoms() {
			parts = append(parts, PartsFromGeom(sub)...)
		}
		return parts
	}

	return nil
}

// polygonToPart builds a polygon part from a ring list; ring 0 is the
// outer boundary and the rest become holes.
func polygonToPart(layout geom.Layout, rings [][]geom.Coord) *Part {
	if len(rings) == 0 {
		return nil
	}
	outer := ringToVectors(layout, rings[0])
	if len(outer) == 0 {
		return nil
	}
	p := &Part{Type: GeometryPolygon, Points: outer}
	for _, hole := range rings[1:] {
		if pts := ringToVectors(layout, hole); len(pts) > 0 {
			p.Holes = append(p.Holes, &Part{Type: GeometryRing, Points: pts})
		}
	}
	return p
}

// ringToVectors converts ring coordinates, dropping the duplicated
// closing point that go-geom rings carry.
func ringToVectors(layout geom.Layout, ring []geom.Coord) []r3.Vector {
	pts := coordsToVectors(layout, ring)
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	return pts
}

func coordsToVectors(layout geom.Layout, coords []geom.Coord) []r3.Vector {
	if len(coords) == 0 {
		return nil
	}
	zi := layout.ZIndex()
	pts := make([]r3.Vector, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		v := r3.Vector{X: c[0], Y: c[1]}
		if zi >= 0 && len(c) > zi {
			v.Z = c[zi]
		}
		pts = append(pts, v)
	}
	return pts
}
