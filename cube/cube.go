// Package cube builds the 3×3×3 composite body from one unit-cube template.
package cube

import (
	"errors"
	"fmt"

	"cubeview/cubegl"
)

var ErrBadTemplate = errors.New("bad cube template")

// Template face indices.
const (
	FaceFront  = iota // +z
	FaceRight         // +x
	FaceBack          // -z
	FaceLeft          // -x
	FaceTop           // +y
	FaceBottom        // -y
)

// Vertices is the unit-cube template spanning [-1,1] on every axis.
var Vertices = []cubegl.Vec3{
	{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
}

// Faces is the template topology, indexed by the Face* constants.
var Faces = []cubegl.Face{
	FaceFront:  {0, 1, 2, 3},
	FaceRight:  {1, 5, 6, 2},
	FaceBack:   {5, 4, 7, 6},
	FaceLeft:   {4, 0, 3, 7},
	FaceTop:    {3, 2, 6, 7},
	FaceBottom: {1, 0, 4, 5},
}

// ColorTable gives every template face its side color. All sub-cubes share it, so
// each side of the whole body shows one color.
var ColorTable = []cubegl.Color{
	FaceFront:  cubegl.RGB(255, 255, 0),   // yellow
	FaceRight:  cubegl.RGB(0, 0, 255),     // blue
	FaceBack:   cubegl.RGB(255, 255, 255), // white
	FaceLeft:   cubegl.RGB(0, 255, 0),     // green
	FaceTop:    cubegl.RGB(255, 165, 0),   // orange
	FaceBottom: cubegl.RGB(255, 0, 0),     // red
}

// Offsets places the 27 sub-cubes, layer by layer along z (0, +1, -1). Each layer
// lists its ring of eight counter-clockwise from (-1,-1) and then its center.
var Offsets = []cubegl.Vec3{
	{X: -1, Y: -1, Z: 0}, {X: 0, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 1, Y: 0, Z: 0},
	{X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0}, {X: -1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 0},

	{X: -1, Y: -1, Z: 1}, {X: 0, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 0, Z: 1},
	{X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: 1},

	{X: -1, Y: -1, Z: -1}, {X: 0, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 0, Z: -1},
	{X: 1, Y: 1, Z: -1}, {X: 0, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: 0, Z: -1},
	{X: 0, Y: 0, Z: -1},
}

// SubScale shrinks the template to half size before placement.
var SubScale = cubegl.V3(0.5, 0.5, 0.5)

// Body is the fixed arrangement of sub-meshes.
type Body struct {
	meshes []*cubegl.Mesh
}

// NewBody builds the standard 27-piece body.
func NewBody() *Body {
	b, err := NewBodyFrom(Vertices, Faces, Offsets, ColorTable)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBodyFrom builds one mesh per offset: each is a copy of the template scaled by
// SubScale and then translated by its offset. colors must have one entry per face.
func NewBodyFrom(vertices []cubegl.Vec3, faces []cubegl.Face, offsets []cubegl.Vec3, colors []cubegl.Color) (*Body, error) {
	if len(colors) != len(faces) {
		return nil, fmt.Errorf("%w: %d colors for %d faces", ErrBadTemplate, len(colors), len(faces))
	}
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("%w: face %d index %d out of range", ErrBadTemplate, i, idx)
			}
		}
	}

	b := &Body{meshes: make([]*cubegl.Mesh, 0, len(offsets))}
	for _, off := range offsets {
		m := cubegl.NewMesh(vertices, faces)
		m.Scale(SubScale)
		m.Translate(off)
		m.SetFaceColors(colors)
		b.meshes = append(b.meshes, m)
	}
	return b, nil
}

func (b *Body) Meshes() []*cubegl.Mesh { return b.meshes }
