package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"cubeview/cube"
	"cubeview/cubegl"
)

func main() {
	var (
		outPath  = flag.String("out", "", "Output PNG file.")
		width    = flag.Int("width", 640, "Image width.")
		height   = flag.Int("height", 480, "Image height.")
		pitch    = flag.Float64("pitch", -25, "Pitch in degrees (about X).")
		yaw      = flag.Float64("yaw", 35, "Yaw in degrees (about Y).")
		roll     = flag.Float64("roll", 0, "Roll in degrees (about Z).")
		fov      = flag.Float64("fov", 90, "Field of view in degrees.")
		distance = flag.Float64("distance", 10, "Viewer distance.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: cubeshot -out cube.png [-width 640 -height 480] [-pitch -25 -yaw 35 -roll 0] [-fov 90 -distance 10]")
	}
	if *width <= 0 || *height <= 0 {
		fatalf("size out of range: %dx%d", *width, *height)
	}

	cam := cubegl.Camera{FOV: *fov, Distance: *distance}
	o := cubegl.Orientation{Pitch: *pitch, Yaw: *yaw, Roll: *roll}
	if err := render(*outPath, *width, *height, cam, o); err != nil {
		fatalf("render: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func render(path string, w, h int, cam cubegl.Camera, o cubegl.Orientation) error {
	if err := cam.Validate(); err != nil {
		return err
	}
	scene := cubegl.NewScene(cube.NewBody().Meshes(), cam)
	t := cubegl.NewRGBATarget(w, h)
	t.Clear(cubegl.Black)
	cubegl.Render(t, scene.Draw(o, w, h))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, t.Img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
