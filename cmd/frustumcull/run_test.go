// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/rjobse/hifi/math32"
	"github.com/rjobse/hifi/viewfrustum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		FieldOfView: 90,
		AspectRatio: 1,
		NearClip:    0.1,
		FarClip:     100,
		Position:    "0,0,0",
		Grid:        8,
		Spacing:     4,
		Size:        1,
	}
}

func plainOutput(buf *bytes.Buffer) *termenv.Output {
	return termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
}

func TestParseVector3(t *testing.T) {
	p, err := parseVector3("1, 2.5,-3")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(1, 2.5, -3), p)

	_, err = parseVector3("1,2")
	assert.ErrorContains(t, err, "expected x,y,z")
	_, err = parseVector3("1,a,3")
	assert.Error(t, err)
}

func TestConfigFrustum(t *testing.T) {
	cfg := testConfig()
	cfg.Position = "1,2,3"
	cfg.Yaw = 90
	vf, err := cfg.Frustum(viewfrustum.DefaultSettings())
	require.NoError(t, err)
	assert.True(t, vf.IsCalculated())
	assert.Equal(t, math32.Vec3(1, 2, 3), vf.Position())
	assert.InDelta(t, -1, vf.Direction().X, 1e-6)
	assert.InDelta(t, 90, vf.FieldOfView(), 0.01)

	cfg.Position = "nowhere"
	_, err = cfg.Frustum(viewfrustum.DefaultSettings())
	assert.Error(t, err)
}

func TestConfigCubes(t *testing.T) {
	cfg := testConfig()
	cubes := cfg.Cubes()
	require.Len(t, cubes, 512)
	assert.Equal(t, math32.Vec3(-16, -16, -16), cubes[0].Corner())
	assert.Equal(t, math32.Vec3(12, 12, 12), cubes[511].Corner())
	assert.Equal(t, float32(1), cubes[0].Scale())
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), testConfig(), plainOutput(&buf)))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "inside "))
	assert.Contains(t, out, "intersect ")
	assert.Contains(t, out, "outside ")
}

func TestRunSettingsError(t *testing.T) {
	cfg := testConfig()
	cfg.Settings = filepath.Join(t.TempDir(), "missing.toml")
	var buf bytes.Buffer
	assert.ErrorIs(t, Run(context.Background(), cfg, plainOutput(&buf)), os.ErrNotExist)
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(plainOutput(&buf), [3]int{7, 2, 3})
	assert.Equal(t, "inside 3  intersect 2  outside 7\n", buf.String())
}

func TestRunWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "frustum.toml")
	require.NoError(t, os.WriteFile(fn, []byte("center_sphere_radius = 1.0\n"), 0o644))

	sw, err := newSettingsWatcher(fn)
	require.NoError(t, err)
	defer sw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		sw.run(ctx, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
		close(done)
	}()

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(fn, []byte("center_sphere_radius = 2.0\n"), 0o644))
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for the settings file")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
