package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"cubeview/app"
	"cubeview/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var win hal.WindowConfig
	appCfg := app.DefaultConfig()

	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Float64Var(&cfg.SpinDX, "spin", 0, "Headless only: horizontal drag in pixels replayed every tick.")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Headless only: write the last frame to this PNG file.")
	flag.IntVar(&win.Width, "width", 640, "Framebuffer width.")
	flag.IntVar(&win.Height, "height", 480, "Framebuffer height.")
	flag.IntVar(&win.Scale, "scale", 1, "Window pixels per framebuffer pixel.")
	flag.Float64Var(&appCfg.Camera.FOV, "fov", appCfg.Camera.FOV, "Field of view in degrees.")
	flag.Float64Var(&appCfg.Camera.Distance, "distance", appCfg.Camera.Distance, "Viewer distance.")
	flag.Float64Var(&appCfg.Sensitivity, "sensitivity", appCfg.Sensitivity, "Degrees of orbit per pixel of drag.")
	flag.BoolVar(&appCfg.HUD, "hud", false, "Show orientation overlay.")
	flag.Parse()

	if err := appCfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		cfg.Width, cfg.Height = win.Width, win.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, win); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
