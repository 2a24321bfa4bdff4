package cubegl

import "math"

// Orientation is the orbit state in degrees. Pitch turns about X, Yaw about Y and
// Roll about Z.
type Orientation struct {
	Pitch, Yaw, Roll float64
}

// AxisAngle is one rotation step in degrees.
type AxisAngle struct {
	Axis  Vec3
	Angle float64
}

// Rotations returns the orbit as an ordered rotation list: roll about Z first, then
// yaw about Y, then pitch about X. Changing this order changes how the view orbits.
func (o Orientation) Rotations() []AxisAngle {
	return []AxisAngle{
		{Axis: AxisZ, Angle: o.Roll},
		{Axis: AxisY, Angle: o.Yaw},
		{Axis: AxisX, Angle: o.Pitch},
	}
}

// ApplyRotations applies rots to vs in order and returns the result.
func ApplyRotations(vs []Vec3, rots []AxisAngle) []Vec3 {
	out := make([]Vec3, len(vs))
	copy(out, vs)
	for _, r := range rots {
		for i := range out {
			out[i] = Rotate(out[i], r.Angle, r.Axis)
		}
	}
	return out
}

// Delta is a per-frame orientation change. Roll is not driven by input.
type Delta struct {
	Pitch, Yaw float64
}

// PointerDelta converts pointer motion into an orientation change. Dragging right
// turns yaw negative and dragging down turns pitch negative.
func PointerDelta(dx, dy, sensitivity float64) Delta {
	return Delta{Pitch: -dy * sensitivity, Yaw: -dx * sensitivity}
}

// Advance returns o with d added. Angles are reduced modulo 360 so long drags keep
// the values small; the rendered rotation is unchanged.
func Advance(o Orientation, d Delta) Orientation {
	o.Pitch = math.Mod(o.Pitch+d.Pitch, 360)
	o.Yaw = math.Mod(o.Yaw+d.Yaw, 360)
	return o
}
