package cubegl

import (
	"errors"
	"testing"
)

type sinkCall struct {
	op    string
	pts   int
	color Color
	width int
}

type recordSink struct {
	calls []sinkCall
}

func (s *recordSink) FillPolygon(pts []Point, c Color) {
	s.calls = append(s.calls, sinkCall{op: "fill", pts: len(pts), color: c})
}

func (s *recordSink) StrokePolygon(pts []Point, c Color, width int) {
	s.calls = append(s.calls, sinkCall{op: "stroke", pts: len(pts), color: c, width: width})
}

func cubeMesh() *Mesh {
	m := NewMesh(
		[]Vec3{
			V3(-1, -1, 1), V3(1, -1, 1), V3(1, 1, 1), V3(-1, 1, 1),
			V3(-1, -1, -1), V3(1, -1, -1), V3(1, 1, -1), V3(-1, 1, -1),
		},
		[]Face{{0, 1, 2, 3}, {1, 5, 6, 2}, {5, 4, 7, 6}, {4, 0, 3, 7}, {3, 2, 6, 7}, {1, 0, 4, 5}},
	)
	m.SetFaceColors([]Color{RGB(1, 0, 0), RGB(2, 0, 0), RGB(3, 0, 0), RGB(4, 0, 0), RGB(5, 0, 0), RGB(6, 0, 0)})
	return m
}

func TestSortBackToFront(t *testing.T) {
	items := []DrawItem{{Depth: 3}, {Depth: 1}, {Depth: 2}}
	SortBackToFront(items)
	for i, want := range []float64{3, 2, 1} {
		if items[i].Depth != want {
			t.Fatalf("items[%d].Depth = %g, want %g", i, items[i].Depth, want)
		}
	}
}

func TestSortBackToFrontStable(t *testing.T) {
	items := []DrawItem{{Depth: 1, Face: 0}, {Depth: 2, Face: 1}, {Depth: 1, Face: 2}}
	SortBackToFront(items)
	if items[1].Face != 0 || items[2].Face != 2 {
		t.Fatalf("ties reordered: %+v", items)
	}
}

func TestDrawCarriesPerFaceColor(t *testing.T) {
	s := NewScene([]*Mesh{cubeMesh(), cubeMesh()}, DefaultCamera())
	items := s.Draw(Orientation{Pitch: 20, Yaw: 30}, 640, 480)
	if len(items) != 12 {
		t.Fatalf("len(items) = %d, want 12", len(items))
	}
	for _, it := range items {
		if want := RGB(uint8(it.Face+1), 0, 0); it.Color != want {
			t.Fatalf("mesh %d face %d color = %v, want %v", it.Mesh, it.Face, it.Color, want)
		}
		if len(it.Polygon) != 5 || it.Polygon[0] != it.Polygon[4] {
			t.Fatalf("polygon not closed: %v", it.Polygon)
		}
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Depth < items[i].Depth {
			t.Fatalf("items not back to front at %d: %g < %g", i, items[i-1].Depth, items[i].Depth)
		}
	}
}

func TestDrawIdentityOrientation(t *testing.T) {
	s := NewScene([]*Mesh{cubeMesh()}, DefaultCamera())
	items := s.Draw(Orientation{}, 640, 480)
	// Larger z is farther from the viewer: the z=+1 face comes first.
	first := items[0]
	if first.Face != 0 || first.Depth != 1 {
		t.Fatalf("first = face %d depth %g, want face 0 depth 1", first.Face, first.Depth)
	}
	last := items[len(items)-1]
	if last.Face != 2 || last.Depth != -1 {
		t.Fatalf("last = face %d depth %g, want face 2 depth -1", last.Face, last.Depth)
	}
	// Vertex 2 of face 0 is (1,1,1).
	p := first.Polygon[2]
	if p.X < 378.18 || p.X > 378.19 || p.Y < 181.81 || p.Y > 181.82 {
		t.Fatalf("corner = %v", p)
	}
}

func TestDrawDoesNotMutateMeshes(t *testing.T) {
	m := cubeMesh()
	before := m.Vertices()
	s := NewScene([]*Mesh{m}, DefaultCamera())
	_ = s.Draw(Orientation{Pitch: 45, Yaw: 45, Roll: 45}, 320, 200)
	after := m.Vertices()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("vertex %d changed: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestDrawCullsFacesAtViewer(t *testing.T) {
	m := cubeMesh()
	m.Translate(V3(0, 0, -10))
	s := NewScene([]*Mesh{m}, DefaultCamera())
	items := s.Draw(Orientation{}, 640, 480)
	// Only faces that stay in front of the viewer remain: the z=-9 face.
	if len(items) != 1 || items[0].Face != 0 {
		t.Fatalf("items = %+v, want only face 0", items)
	}
}

func TestDrawFallbackColor(t *testing.T) {
	m := NewMesh(cubeMesh().Vertices(), cubeMesh().Faces())
	s := NewScene([]*Mesh{m}, DefaultCamera())
	for _, it := range s.Draw(Orientation{}, 100, 100) {
		if it.Color != Gray {
			t.Fatalf("color = %v, want fallback", it.Color)
		}
	}
}

func TestRenderFillsThenStrokes(t *testing.T) {
	items := []DrawItem{
		{Polygon: make([]Point, 5), Color: RGB(9, 9, 9)},
		{Polygon: make([]Point, 5), Color: RGB(7, 7, 7)},
	}
	var sink recordSink
	Render(&sink, items)
	want := []sinkCall{
		{op: "fill", pts: 5, color: RGB(9, 9, 9)},
		{op: "stroke", pts: 5, color: Black, width: OutlineWidth},
		{op: "fill", pts: 5, color: RGB(7, 7, 7)},
		{op: "stroke", pts: 5, color: Black, width: OutlineWidth},
	}
	if len(sink.calls) != len(want) {
		t.Fatalf("calls = %d, want %d", len(sink.calls), len(want))
	}
	for i := range want {
		if sink.calls[i] != want[i] {
			t.Fatalf("call %d = %+v, want %+v", i, sink.calls[i], want[i])
		}
	}
}

func TestCameraValidate(t *testing.T) {
	if err := DefaultCamera().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for _, c := range []Camera{{FOV: 0, Distance: 10}, {FOV: 180, Distance: 10}, {FOV: 60, Distance: 0}} {
		if err := c.Validate(); !errors.Is(err, ErrInvalidCamera) {
			t.Fatalf("Validate(%+v) = %v, want ErrInvalidCamera", c, err)
		}
	}
}
