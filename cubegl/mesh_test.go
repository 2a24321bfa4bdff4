package cubegl

import "testing"

func unitQuad(z float64) *Mesh {
	return NewMesh(
		[]Vec3{V3(0, 0, z), V3(1, 0, z), V3(1, 1, z), V3(0, 1, z)},
		[]Face{{0, 1, 2, 3}},
	)
}

func TestAverageDepthFlatFace(t *testing.T) {
	for _, z := range []float64{-3.25, 0, 0.1, 7} {
		m := unitQuad(z)
		got := m.AverageDepth(m.Vertices())
		if len(got) != 1 || got[0].Face != 0 || got[0].Depth != z {
			t.Fatalf("AverageDepth = %+v, want [{0 %g}]", got, z)
		}
	}
}

func TestAverageDepthUsesSuppliedVertices(t *testing.T) {
	m := unitQuad(0)
	other := []Vec3{V3(0, 0, 1), V3(0, 0, 2), V3(0, 0, 3), V3(0, 0, 6)}
	got := m.AverageDepth(other)
	if got[0].Depth != 3 {
		t.Fatalf("Depth = %g, want 3", got[0].Depth)
	}
}

func TestPolygonIsClosed(t *testing.T) {
	m := unitQuad(0)
	pts := m.Polygon(m.Face(0), m.Vertices())
	want := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	if len(pts) != len(want) {
		t.Fatalf("len = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestNewMeshCopiesInput(t *testing.T) {
	verts := []Vec3{V3(1, 2, 3), V3(4, 5, 6), V3(7, 8, 9), V3(0, 0, 0)}
	faces := []Face{{0, 1, 2, 3}}
	a := NewMesh(verts, faces)
	b := NewMesh(verts, faces)
	a.Translate(V3(1, 1, 1))
	verts[0] = Vec3{}
	faces[0] = Face{3, 2, 1, 0}

	if got := b.Vertices()[0]; got != V3(1, 2, 3) {
		t.Fatalf("b vertex 0 = %v, want (1, 2, 3)", got)
	}
	if got := a.Vertices()[0]; got != V3(2, 3, 4) {
		t.Fatalf("a vertex 0 = %v, want (2, 3, 4)", got)
	}
	if got := a.Face(0); got != (Face{0, 1, 2, 3}) {
		t.Fatalf("face = %v", got)
	}
}

func TestMeshTransformsKeepShape(t *testing.T) {
	m := unitQuad(0)
	m.Scale(V3(2, 2, 2))
	m.Rotate(90, AxisZ)
	m.Translate(V3(0, 0, 5))
	if m.NumVertices() != 4 || m.NumFaces() != 1 {
		t.Fatalf("shape = %d vertices, %d faces", m.NumVertices(), m.NumFaces())
	}
	if got := m.Vertices()[1]; !approxVec(got, V3(0, 2, 5), eps) {
		t.Fatalf("vertex 1 = %v, want (0, 2, 5)", got)
	}
}

func TestFaceColors(t *testing.T) {
	m := NewMesh(nil, []Face{{}, {}})
	if _, ok := m.FaceColor(0); ok {
		t.Fatal("FaceColor before assignment ok = true")
	}
	m.SetFaceColors([]Color{RGB(1, 2, 3), RGB(4, 5, 6), RGB(7, 8, 9)})
	if c, ok := m.FaceColor(1); !ok || c != RGB(4, 5, 6) {
		t.Fatalf("FaceColor(1) = %v, %v", c, ok)
	}
	if _, ok := m.FaceColor(2); ok {
		t.Fatal("FaceColor(2) ok = true for a mesh with two faces")
	}
}
