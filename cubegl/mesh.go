package cubegl

// Face is a planar quad given as indices into a mesh's vertex list.
type Face [4]int

// FaceDepth pairs a face index with the mean z of its vertices.
type FaceDepth struct {
	Face  int
	Depth float64
}

// Mesh is an independently transformable polyhedron with fixed face topology.
//
// The vertex count and face indices never change after construction; transforms
// replace the vertex values only.
type Mesh struct {
	vertices []Vec3
	faces    []Face
	colors   []Color
}

// NewMesh copies vertices and faces into a new mesh.
func NewMesh(vertices []Vec3, faces []Face) *Mesh {
	m := &Mesh{
		vertices: make([]Vec3, len(vertices)),
		faces:    make([]Face, len(faces)),
	}
	copy(m.vertices, vertices)
	copy(m.faces, faces)
	return m
}

func (m *Mesh) Rotate(angleDeg float64, axis Vec3) { m.vertices = RotateAll(m.vertices, angleDeg, axis) }
func (m *Mesh) Scale(s Vec3)                       { m.vertices = ScaleAll(m.vertices, s) }
func (m *Mesh) Translate(t Vec3)                   { m.vertices = TranslateAll(m.vertices, t) }

// Vertices returns a copy of the current object-space vertices.
func (m *Mesh) Vertices() []Vec3 {
	out := make([]Vec3, len(m.vertices))
	copy(out, m.vertices)
	return out
}

func (m *Mesh) NumVertices() int { return len(m.vertices) }
func (m *Mesh) NumFaces() int    { return len(m.faces) }
func (m *Mesh) Face(i int) Face  { return m.faces[i] }
func (m *Mesh) Faces() []Face    { return append([]Face(nil), m.faces...) }

// SetFaceColors assigns one color per face. Extra entries are ignored and faces past
// the end of colors have no color.
func (m *Mesh) SetFaceColors(colors []Color) {
	if len(colors) > len(m.faces) {
		colors = colors[:len(m.faces)]
	}
	m.colors = append([]Color(nil), colors...)
}

// FaceColor returns the color assigned to face i.
func (m *Mesh) FaceColor(i int) (Color, bool) {
	if i < 0 || i >= len(m.colors) {
		return Color{}, false
	}
	return m.colors[i], true
}

// AverageDepth returns the mean z of every face, looked up in vertices rather than
// the mesh's own vertex list.
func (m *Mesh) AverageDepth(vertices []Vec3) []FaceDepth {
	out := make([]FaceDepth, len(m.faces))
	for i, f := range m.faces {
		var sum float64
		for _, idx := range f {
			sum += vertices[idx].Z
		}
		out[i] = FaceDepth{Face: i, Depth: sum / float64(len(f))}
	}
	return out
}

// Polygon maps face through vertices into a closed point sequence; the first point
// is repeated at the end.
func (m *Mesh) Polygon(face Face, vertices []Vec3) []Point {
	pts := make([]Point, 0, len(face)+1)
	for _, idx := range face {
		pts = append(pts, Point{X: vertices[idx].X, Y: vertices[idx].Y})
	}
	return append(pts, pts[0])
}

// valid reports whether every face index is inside the vertex list.
func (m *Mesh) valid() bool {
	for _, f := range m.faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.vertices) {
				return false
			}
		}
	}
	return true
}
