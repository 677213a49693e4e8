// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rjobse/hifi/cull"
	"github.com/rjobse/hifi/math32"
	"github.com/rjobse/hifi/viewfrustum"
)

// Config is the configuration of one run of the command.
type Config struct {

	// Settings is the settings file; empty uses the default settings.
	Settings string

	FieldOfView float32
	AspectRatio float32
	NearClip    float32
	FarClip     float32

	// Position is the camera position as x,y,z.
	Position string

	// Yaw and Pitch are the camera rotations in degrees around +Y and +X.
	Yaw, Pitch float32

	Keyhole bool

	// Grid is the number of cubes along each axis, centered on the origin.
	Grid int

	Spacing float32
	Size    float32

	Watch bool
}

// LoadSettings returns the settings from the settings file, or the defaults.
func (cfg *Config) LoadSettings() (viewfrustum.Settings, error) {
	if cfg.Settings == "" {
		return viewfrustum.DefaultSettings(), nil
	}
	return viewfrustum.OpenSettings(cfg.Settings)
}

// Frustum returns the calculated frustum for the configuration and settings.
func (cfg *Config) Frustum(s viewfrustum.Settings) (*viewfrustum.ViewFrustum, error) {
	p, err := parseVector3(cfg.Position)
	if err != nil {
		return nil, err
	}
	vf := viewfrustum.New()
	var proj math32.Matrix4
	proj.SetPerspective(cfg.FieldOfView, cfg.AspectRatio, cfg.NearClip, cfg.FarClip)
	vf.SetProjection(&proj)
	vf.SetPosition(p)
	yaw := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(cfg.Yaw))
	pitch := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(cfg.Pitch))
	vf.SetOrientation(yaw.Mul(pitch))
	s.Apply(vf)
	vf.Calculate()
	return vf, nil
}

// Cubes returns the grid of cubes.
func (cfg *Config) Cubes() []math32.Cube {
	n := cfg.Grid
	cubes := make([]math32.Cube, 0, n*n*n)
	start := -0.5 * float32(n) * cfg.Spacing
	for x := range n {
		for y := range n {
			for z := range n {
				corner := math32.Vec3(float32(x), float32(y), float32(z)).MulScalar(cfg.Spacing).AddScalar(start)
				cubes = append(cubes, math32.NewCube(corner, cfg.Size))
			}
		}
	}
	return cubes
}

func parseVector3(s string) (math32.Vector3, error) {
	fs := strings.Split(s, ",")
	if len(fs) != 3 {
		return math32.Vector3{}, fmt.Errorf("invalid vector %q: expected x,y,z", s)
	}
	var v [3]float32
	for i, f := range fs {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return math32.Vector3{}, fmt.Errorf("invalid vector %q: %w", s, err)
		}
		v[i] = float32(x)
	}
	return math32.Vec3(v[0], v[1], v[2]), nil
}

// Run classifies the cubes and writes the counts to out, and then, if
// cfg.Watch is set, does so again on every change of the settings file
// until ctx is done.
func Run(ctx context.Context, cfg *Config, out *termenv.Output) error {
	cubes := cfg.Cubes()
	classify := func() error {
		s, err := cfg.LoadSettings()
		if err != nil {
			return err
		}
		vf, err := cfg.Frustum(s)
		if err != nil {
			return err
		}
		slog.Debug("frustumcull: classifying", "frustum", vf, "cubes", len(cubes))
		results, err := cull.Classify(ctx, vf, cubes, cull.Options{Keyhole: cfg.Keyhole})
		if err != nil {
			return err
		}
		Report(out, cull.Count(results))
		return nil
	}
	if err := classify(); err != nil {
		return err
	}
	if !cfg.Watch || cfg.Settings == "" {
		return nil
	}
	sw, err := newSettingsWatcher(cfg.Settings)
	if err != nil {
		return err
	}
	defer sw.Close()
	sw.run(ctx, func() {
		if err := classify(); err != nil {
			slog.Error("frustumcull: reload", "err", err)
		}
	})
	return nil
}

// Report writes the counts to out, colored if out supports it.
func Report(out *termenv.Output, counts [3]int) {
	in := out.String("inside", strconv.Itoa(counts[viewfrustum.Inside])).Foreground(out.Color("2"))
	is := out.String("intersect", strconv.Itoa(counts[viewfrustum.Intersect])).Foreground(out.Color("3"))
	ou := out.String("outside", strconv.Itoa(counts[viewfrustum.Outside])).Faint()
	fmt.Fprintf(out, "%s  %s  %s\n", in, is, ou)
}
