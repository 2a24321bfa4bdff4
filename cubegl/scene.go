package cubegl

import (
	"errors"
	"fmt"
	"sort"
)

// OutlineWidth is the stroke width used for face outlines.
const OutlineWidth = 3

var ErrInvalidCamera = errors.New("invalid camera")

// Camera holds the fixed projection parameters.
type Camera struct {
	FOV      float64 // degrees
	Distance float64 // viewer distance, mesh units
}

func DefaultCamera() Camera { return Camera{FOV: 90, Distance: 10} }

func (c Camera) Validate() error {
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("%w: fov %g outside (0, 180)", ErrInvalidCamera, c.FOV)
	}
	if c.Distance <= 0 {
		return fmt.Errorf("%w: distance %g must be positive", ErrInvalidCamera, c.Distance)
	}
	return nil
}

// DrawItem is one projected face, ready for the sink.
type DrawItem struct {
	Polygon []Point
	Depth   float64
	Color   Color
	Mesh    int
	Face    int
}

// Scene is a fixed set of meshes viewed through one camera.
//
// The scene reads mesh vertices but never writes to meshes while drawing; the
// orientation is passed in per frame.
type Scene struct {
	Camera Camera

	// Fallback is used for faces without an assigned color.
	Fallback Color

	meshes []*Mesh
}

func NewScene(meshes []*Mesh, cam Camera) *Scene {
	return &Scene{
		Camera:   cam,
		Fallback: Gray,
		meshes:   append([]*Mesh(nil), meshes...),
	}
}

func (s *Scene) Meshes() []*Mesh { return s.meshes }

// Transform rotates vertices by o and projects them to a w×h screen. ok[i] reports
// whether vertex i could be projected.
func (s *Scene) Transform(vertices []Vec3, o Orientation, w, h int) ([]Vec3, []bool) {
	out := ApplyRotations(vertices, o.Rotations())
	ok := make([]bool, len(out))
	for i, v := range out {
		out[i], ok[i] = Project(v, w, h, s.Camera.FOV, s.Camera.Distance)
	}
	return out, ok
}

// Draw builds the frame's draw list sorted back to front.
func (s *Scene) Draw(o Orientation, w, h int) []DrawItem {
	if s == nil || w <= 0 || h <= 0 {
		return nil
	}
	var items []DrawItem
	for mi, m := range s.meshes {
		if m == nil || !m.valid() {
			continue
		}
		verts, ok := s.Transform(m.vertices, o, w, h)
		for _, fd := range m.AverageDepth(verts) {
			face := m.faces[fd.Face]
			if !projected(face, ok) {
				continue
			}
			c, has := m.FaceColor(fd.Face)
			if !has {
				c = s.Fallback
			}
			items = append(items, DrawItem{
				Polygon: m.Polygon(face, verts),
				Depth:   fd.Depth,
				Color:   c,
				Mesh:    mi,
				Face:    fd.Face,
			})
		}
	}
	SortBackToFront(items)
	return items
}

func projected(f Face, ok []bool) bool {
	for _, idx := range f {
		if !ok[idx] {
			return false
		}
	}
	return true
}

// SortBackToFront orders items by depth, farthest first. Equal depths keep their
// relative order.
func SortBackToFront(items []DrawItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Depth > items[j].Depth
	})
}

// Render paints items in order: each face is filled and then outlined.
func Render(sink Sink, items []DrawItem) {
	if sink == nil {
		return
	}
	for _, it := range items {
		sink.FillPolygon(it.Polygon, it.Color)
		sink.StrokePolygon(it.Polygon, Black, OutlineWidth)
	}
}
