// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command frustumcull classifies a grid of cubes against a view frustum
// and prints how many are inside, intersecting and outside of it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/muesli/termenv"
	"github.com/rjobse/hifi/logx"
	"github.com/rjobse/hifi/viewfrustum"
)

var (
	settings = flag.String("settings", "", "the settings file (.toml, .yaml, .yml or .json)")
	fov      = flag.Float64("fov", viewfrustum.DefaultFieldOfView, "the vertical field of view in degrees")
	aspect   = flag.Float64("aspect", viewfrustum.DefaultAspectRatio, "the aspect ratio")
	near     = flag.Float64("near", viewfrustum.DefaultNearClip, "the near clip distance")
	far      = flag.Float64("far", 1000, "the far clip distance")
	pos      = flag.String("pos", "0,0,0", "the camera position as x,y,z")
	yaw      = flag.Float64("yaw", 0, "the camera rotation around +Y in degrees")
	pitch    = flag.Float64("pitch", 0, "the camera rotation around +X in degrees")
	keyhole  = flag.Bool("keyhole", false, "include the sphere around the camera")
	grid     = flag.Int("grid", 16, "the number of cubes along each axis")
	spacing  = flag.Float64("spacing", 4, "the distance between cube corners")
	size     = flag.Float64("size", 1, "the cube size")
	watch    = flag.Bool("watch", false, "classify again whenever the settings file changes")
	vv       = flag.Bool("vv", false, "debug logging")
	v        = flag.Bool("v", false, "verbose logging")
	q        = flag.Bool("q", false, "only log errors")
)

func main() {
	flag.Usage = Usage
	flag.Parse()
	if *vv || *v || *q {
		logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	}
	logx.SetDefaultLogger()

	cfg := &Config{
		Settings:    *settings,
		FieldOfView: float32(*fov),
		AspectRatio: float32(*aspect),
		NearClip:    float32(*near),
		FarClip:     float32(*far),
		Position:    *pos,
		Yaw:         float32(*yaw),
		Pitch:       float32(*pitch),
		Keyhole:     *keyhole,
		Grid:        *grid,
		Spacing:     float32(*spacing),
		Size:        float32(*size),
		Watch:       *watch,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := Run(ctx, cfg, termenv.NewOutput(os.Stdout)); err != nil {
		slog.Error("frustumcull", "err", err)
		os.Exit(1)
	}
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Frustumcull classifies a grid of cubes against a view frustum.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "\tfrustumcull [flags]\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
