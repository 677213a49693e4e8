// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cull

import (
	"context"
	"testing"

	"github.com/rjobse/hifi/math32"
	"github.com/rjobse/hifi/viewfrustum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrustum() *viewfrustum.ViewFrustum {
	vf := viewfrustum.New()
	var proj math32.Matrix4
	proj.SetPerspective(90, 1, 0.1, 100)
	vf.SetProjection(&proj)
	vf.Calculate()
	return vf
}

// testGrid returns a grid of unit cubes around the camera. The corners are
// aligned with the depths, so some cubes sit on the x = ±z and y = ±z planes.
func testGrid() []math32.Cube {
	var cubes []math32.Cube
	for x := float32(-28); x < 30; x += 4 {
		for y := float32(-28); y < 30; y += 4 {
			for z := float32(-120); z < 20; z += 4 {
				cubes = append(cubes, math32.NewCube(math32.Vec3(x, y, z), 1))
			}
		}
	}
	return cubes
}

func TestClassify(t *testing.T) {
	vf := testFrustum()
	cubes := testGrid()
	for _, opts := range []Options{{}, {Workers: 1, Chunk: 1}, {Workers: 3, Chunk: 7}, {Keyhole: true, Chunk: 50}} {
		results, err := Classify(context.Background(), vf, cubes, opts)
		require.NoError(t, err)
		require.Len(t, results, len(cubes))
		for i, cube := range cubes {
			assert.Equal(t, opts.ClassifyCube(vf, cube), results[i])
		}
	}
}

func TestClassifyKeyhole(t *testing.T) {
	vf := testFrustum()
	cubes := []math32.Cube{math32.NewCube(math32.Vec3(-0.5, -0.5, 0.5), 1)}
	results, err := Classify(context.Background(), vf, cubes, Options{})
	require.NoError(t, err)
	assert.Equal(t, viewfrustum.Outside, results[0])

	results, err = Classify(context.Background(), vf, cubes, Options{Keyhole: true})
	require.NoError(t, err)
	assert.Equal(t, viewfrustum.Inside, results[0])
}

func TestClassifyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Classify(ctx, testFrustum(), testGrid(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestCount(t *testing.T) {
	n := Count([]viewfrustum.Intersection{viewfrustum.Inside, viewfrustum.Outside, viewfrustum.Inside, viewfrustum.Intersect})
	assert.Equal(t, 1, n[viewfrustum.Outside])
	assert.Equal(t, 1, n[viewfrustum.Intersect])
	assert.Equal(t, 2, n[viewfrustum.Inside])

	cubes := []math32.Cube{
		math32.NewCube(math32.Vec3(-1, -1, -11), 2),
		math32.NewCube(math32.Vec3(-10, -1, -11), 2),
		math32.NewCube(math32.Vec3(-1, -1, 5), 2),
	}
	results, err := Classify(context.Background(), testFrustum(), cubes, Options{})
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 1, 1}, Count(results))

	results, err = Classify(context.Background(), testFrustum(), testGrid(), Options{})
	require.NoError(t, err)
	n = Count(results)
	assert.Equal(t, len(results), n[0]+n[1]+n[2])
	assert.Positive(t, n[viewfrustum.Inside])
	assert.Positive(t, n[viewfrustum.Outside])
	assert.Positive(t, n[viewfrustum.Intersect])
}
