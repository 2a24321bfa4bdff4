// Package cubegl is a small software 3D pipeline for quad meshes.
//
// It is meant for visualization of a fixed set of meshes under an orbiting view.
// There is no GPU abstraction and no depth buffer.
//
// Pipeline (fixed):
//
//	Orientation → Rotations (Z, Y, X) → Projection → Face depth → Sort → Sink.
//
// Faces are composited back to front (painter's algorithm) using the mean z of each
// face as the sort key. Colors are per-face attributes carried through the draw list;
// meshes are never mutated while drawing.
//
// Projection policy: a vertex whose depth reaches the viewer (distance+z <= MinDepth)
// is reported as not projectable and every face touching it is culled from the frame.
package cubegl
