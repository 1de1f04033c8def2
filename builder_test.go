package meshbuild

import (
	"fmt"
	"testing"

	"github.com/golang/geo/r3"
)

func polyFeature(id uint64, ring []r3.Vector) *Feature {
	f := NewFeature(id)
	f.Parts = append(f.Parts, NewPart(GeometryPolygon, ring...))
	return f
}

func TestBuildEmptyInput(t *testing.T) {
	b := NewBuilder(Style{Poly: &PolygonSymbol{Fill: White}})
	if res, ok := b.Build(nil, nil); ok || res != nil {
		t.Errorf("Build(nil) = %v, %v; want nil, false", res, ok)
	}
}

func TestBuildSkipsMalformed(t *testing.T) {
	b := NewBuilder(Style{Poly: &PolygonSymbol{Fill: White}})
	bowtie := polyFeature(1, []r3.Vector{{}, {X: 10, Y: 10}, {X: 10}, {Y: 10}})
	degenerate := polyFeature(2, []r3.Vector{{}, {X: 1}})
	if res, ok := b.Build([]*Feature{bowtie, degenerate}, nil); ok || res != nil {
		t.Errorf("Build(malformed) = %v, %v; want nil, false", res, ok)
	}
}

func TestBuildPolygonFill(t *testing.T) {
	fill := RGB(0.2, 0.6, 0.2)
	b := NewBuilder(Style{Poly: &PolygonSymbol{Fill: fill}})
	res, ok := b.Build([]*Feature{polyFeature(1, square(0, 0, 10))}, nil)
	if !ok {
		t.Fatal("Build returned false")
	}
	if len(res.Batch.Meshes) != 1 {
		t.Fatalf("len(Meshes) = %d, want 1", len(res.Batch.Meshes))
	}
	m := res.Batch.Meshes[0]
	if got := triangleArea(m.Verts, m.Indices); got < 100-1e-2 || got > 100+1e-2 {
		t.Errorf("fill area = %v, want 100", got)
	}
	for i, c := range m.Colors {
		if c != fill {
			t.Fatalf("Colors[%d] = %v, want fill color", i, c)
		}
	}
	if !res.Transform.IsIdentity() {
		t.Errorf("Transform = %+v, want identity for ungeoreferenced input", res.Transform)
	}
}

func TestBuildTwoPassFillAndOutline(t *testing.T) {
	style := Style{
		Poly: &PolygonSymbol{Fill: RGB(0, 0.5, 0)},
		Line: &LineSymbol{Stroke: DefaultStroke().WithWidth(2, Pixels)},
	}
	b := NewBuilder(style)
	tagger := &recordingTagger{}
	f := polyFeature(9, square(0, 0, 10))

	res, ok := b.Build([]*Feature{f}, &Context{Tagger: tagger})
	if !ok {
		t.Fatal("Build returned false")
	}
	if len(res.Batch.Meshes) != 2 {
		t.Fatalf("len(Meshes) = %d, want fill + outline", len(res.Batch.Meshes))
	}

	var fills, outlines int
	for _, m := range res.Batch.Meshes {
		switch m.Prims[0].Mode {
		case DrawTriangles:
			fills++
			if !m.State.DepthBias {
				t.Error("fill mesh missing depth bias")
			}
		case DrawLineLoop:
			outlines++
			if m.State.DepthBias {
				t.Error("outline mesh has depth bias")
			}
			if m.State.LineWidth != 2 {
				t.Errorf("outline LineWidth = %v, want 2", m.State.LineWidth)
			}
		}
	}
	if fills != 1 || outlines != 1 {
		t.Errorf("fills/outlines = %d/%d, want 1/1", fills, outlines)
	}

	// Both passes tag back to the same feature.
	for i, tf := range tagger.features {
		if tf != f {
			t.Errorf("tag %d bound to %v, want feature 9", i, tf)
		}
	}
	if res.State.LineWidth != 2 {
		t.Errorf("batch State.LineWidth = %v, want 2", res.State.LineWidth)
	}
}

func TestBuildFeatureStyleOverride(t *testing.T) {
	base := Style{Poly: &PolygonSymbol{Fill: RGB(1, 0, 0)}}
	b := NewBuilder(base)

	blue := RGB(0, 0, 1)
	f := polyFeature(3, square(0, 0, 4))
	f.Style = &Style{Poly: &PolygonSymbol{Fill: blue}}

	res, ok := b.Build([]*Feature{f}, nil)
	if !ok {
		t.Fatal("Build returned false")
	}
	if c := res.Batch.Meshes[0].Colors[0]; c != blue {
		t.Errorf("color = %v, want feature override %v", c, blue)
	}
}

func TestBuildFeatureNameDisablesConsolidation(t *testing.T) {
	style := Style{Line: &LineSymbol{Stroke: DefaultStroke()}}
	b := NewBuilder(style)
	b.FeatureName = func(f *Feature) string { return fmt.Sprintf("feature-%d", f.ID) }

	mkLine := func(id uint64, x float64) *Feature {
		f := NewFeature(id)
		f.Parts = append(f.Parts, NewPart(GeometryLineString, []r3.Vector{{X: x}, {X: x + 1}}...))
		return f
	}
	res, ok := b.Build([]*Feature{mkLine(1, 0), mkLine(2, 10)}, nil)
	if !ok {
		t.Fatal("Build returned false")
	}
	if len(res.Batch.Meshes) != 2 {
		t.Fatalf("len(Meshes) = %d, want 2 (naming keeps meshes separate)", len(res.Batch.Meshes))
	}
	if res.Batch.Meshes[0].Name != "feature-1" || res.Batch.Meshes[1].Name != "feature-2" {
		t.Errorf("names = %q, %q", res.Batch.Meshes[0].Name, res.Batch.Meshes[1].Name)
	}
}

func TestBuildConsolidatesLines(t *testing.T) {
	style := Style{Line: &LineSymbol{Stroke: DefaultStroke()}}
	b := NewBuilder(style)

	mkLine := func(id uint64, x float64) *Feature {
		f := NewFeature(id)
		f.Parts = append(f.Parts, NewPart(GeometryLineString, []r3.Vector{{X: x}, {X: x + 1}}...))
		return f
	}
	res, ok := b.Build([]*Feature{mkLine(1, 0), mkLine(2, 10), mkLine(3, 20)}, nil)
	if !ok {
		t.Fatal("Build returned false")
	}
	if len(res.Batch.Meshes) != 1 {
		t.Errorf("len(Meshes) = %d, want 1 consolidated batch", len(res.Batch.Meshes))
	}
}

func TestBuildGeocentricSubdivides(t *testing.T) {
	style := Style{Line: &LineSymbol{Stroke: DefaultStroke()}}
	b := NewBuilder(style)
	b.Interp = GreatCircle

	f := NewFeature(1)
	f.Parts = append(f.Parts, NewPart(GeometryLineString, []r3.Vector{
		{X: 0, Y: 0}, {X: 20, Y: 0},
	}...))
	ctx := &Context{Georeferenced: true, FeatureSRS: Geographic, Geocentric: true}

	res, ok := b.Build([]*Feature{f}, ctx)
	if !ok {
		t.Fatal("Build returned false")
	}
	m := res.Batch.Meshes[0]
	if len(m.Verts) <= 2 {
		t.Errorf("len(Verts) = %d, want curvature-refined chain", len(m.Verts))
	}
	// The placement transform restores world ECEF coordinates.
	first := res.Transform.Apply(m.Verts[0])
	if !approxVec(first, geodeticToECEF(r3.Vector{}), 1e-5) {
		t.Errorf("delocalized first vertex = %v, want equator ECEF", first)
	}
}

func TestBuildSubdivisionDisabled(t *testing.T) {
	zero := 0
	style := Style{Line: &LineSymbol{Stroke: DefaultStroke(), Tessellation: &zero}}
	b := NewBuilder(style)

	f := NewFeature(1)
	f.Parts = append(f.Parts, NewPart(GeometryLineString, []r3.Vector{
		{X: 0, Y: 0}, {X: 20, Y: 0},
	}...))
	ctx := &Context{Georeferenced: true, FeatureSRS: Geographic, Geocentric: true}

	res, ok := b.Build([]*Feature{f}, ctx)
	if !ok {
		t.Fatal("Build returned false")
	}
	if n := len(res.Batch.Meshes[0].Verts); n != 2 {
		t.Errorf("len(Verts) = %d, want 2 with subdivision off", n)
	}
}
