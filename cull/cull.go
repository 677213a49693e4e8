// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cull classifies batches of cubes against a calculated
// view frustum snapshot, in parallel, and caches the result while
// the camera stays similar.
package cull

import (
	"context"
	"runtime"

	"github.com/rjobse/hifi/math32"
	"github.com/rjobse/hifi/viewfrustum"
	"golang.org/x/sync/errgroup"
)

// DefaultChunk is the number of cubes classified by one task.
const DefaultChunk = 256

// Options configure [Classify].
type Options struct {

	// Keyhole classifies against the frustum united with the center
	// sphere instead of the frustum alone.
	Keyhole bool

	// Workers is the max number of concurrent tasks; 0 uses GOMAXPROCS.
	Workers int

	// Chunk is the number of cubes per task; 0 uses DefaultChunk.
	Chunk int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) chunk() int {
	if o.Chunk > 0 {
		return o.Chunk
	}
	return DefaultChunk
}

// ClassifyCube classifies one cube against the snapshot.
func (o Options) ClassifyCube(vf *viewfrustum.ViewFrustum, cube math32.Cube) viewfrustum.Intersection {
	if o.Keyhole {
		return vf.CubeKeyholeIntersection(cube)
	}
	return vf.CubeFrustumIntersection(cube)
}

// Classify returns the classification of each cube against the snapshot,
// which must have been calculated and must not be modified until Classify
// returns. It stops early with the context error if ctx is done.
func Classify(ctx context.Context, vf *viewfrustum.ViewFrustum, cubes []math32.Cube, opts Options) ([]viewfrustum.Intersection, error) {
	results := make([]viewfrustum.Intersection, len(cubes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	chunk := opts.chunk()
	for start := 0; start < len(cubes); start += chunk {
		end := min(start+chunk, len(cubes))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				results[i] = opts.ClassifyCube(vf, cubes[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Count returns the number of results equal to each [viewfrustum.Intersection],
// indexed by it.
func Count(results []viewfrustum.Intersection) [3]int {
	var n [3]int
	for _, r := range results {
		n[r]++
	}
	return n
}
