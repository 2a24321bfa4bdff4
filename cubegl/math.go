package cubegl

import "math"

// Vec3 is a 3D vector. Operations return new values.
type Vec3 struct {
	X, Y, Z float64
}

// Point is a screen-space 2D point.
type Point struct {
	X, Y float64
}

var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}
)

// MinDepth is the smallest distance+z accepted by Project.
const MinDepth = 1e-6

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) float64 {
	return math.Sqrt(Dot(v, v))
}

func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Rotate rotates v by angleDeg degrees about axis (through the origin) using
// Rodrigues' formula. Positive angles are counter-clockwise looking down the axis.
// A zero axis leaves v unchanged.
func Rotate(v Vec3, angleDeg float64, axis Vec3) Vec3 {
	k := Normalize(axis)
	if k == (Vec3{}) {
		return v
	}
	sin, cos := math.Sincos(radians(angleDeg))
	return v.Mul(cos).
		Add(Cross(k, v).Mul(sin)).
		Add(k.Mul(Dot(k, v) * (1 - cos)))
}

// Scale multiplies v component-wise by s.
func Scale(v, s Vec3) Vec3 {
	return Vec3{v.X * s.X, v.Y * s.Y, v.Z * s.Z}
}

// Translate adds t to v.
func Translate(v, t Vec3) Vec3 { return v.Add(t) }

// Project maps v onto a w×h screen with the origin at the top-left corner.
// The returned z is v.Z unchanged, kept for depth ordering.
//
// ok is false when distance+v.Z <= MinDepth; the projection diverges there and the
// caller is expected to cull whatever uses the vertex.
func Project(v Vec3, w, h int, fovDeg, distance float64) (Vec3, bool) {
	den := distance + v.Z
	if den <= MinDepth {
		return Vec3{Z: v.Z}, false
	}
	fw := float64(w)
	factor := math.Tan(radians(fovDeg)/2) / den
	return Vec3{
		X: v.X*factor*fw + fw/2,
		Y: -v.Y*factor*fw + float64(h)/2,
		Z: v.Z,
	}, true
}

func RotateAll(vs []Vec3, angleDeg float64, axis Vec3) []Vec3 {
	out := make([]Vec3, len(vs))
	for i, v := range vs {
		out[i] = Rotate(v, angleDeg, axis)
	}
	return out
}

func ScaleAll(vs []Vec3, s Vec3) []Vec3 {
	out := make([]Vec3, len(vs))
	for i, v := range vs {
		out[i] = Scale(v, s)
	}
	return out
}

func TranslateAll(vs []Vec3, t Vec3) []Vec3 {
	out := make([]Vec3, len(vs))
	for i, v := range vs {
		out[i] = Translate(v, t)
	}
	return out
}
