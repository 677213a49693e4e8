// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cull

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rjobse/hifi/math32"
	"github.com/rjobse/hifi/viewfrustum"
)

// Cache keeps the classification of the last batch of cubes together with
// a snapshot of the frustum it was computed for, and returns it again as
// long as new frusta are similar to that snapshot. The cached batch is
// identified only by its length: call [Cache.Reset] when the content changes.
type Cache struct {

	// Options for classification.
	Options Options

	// Tolerances for reuse; the zero value uses viewfrustum.DefaultTolerances.
	Tolerances viewfrustum.Tolerances

	// Logger receives debug messages on reuse decisions; nil uses slog.Default.
	Logger *slog.Logger

	mu       sync.Mutex
	snapshot *viewfrustum.ViewFrustum
	results  []viewfrustum.Intersection
}

func (c *Cache) tolerances() viewfrustum.Tolerances {
	if c.Tolerances == (viewfrustum.Tolerances{}) {
		return viewfrustum.DefaultTolerances()
	}
	return c.Tolerances
}

func (c *Cache) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Classify returns the classification of the cubes against vf, reusing the
// cached results if vf is similar to the cached snapshot. reused reports
// whether the cached results were returned. The returned slice must not be
// modified.
func (c *Cache) Classify(ctx context.Context, vf *viewfrustum.ViewFrustum, cubes []math32.Cube) (results []viewfrustum.Intersection, reused bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && len(c.results) == len(cubes) {
		if c.snapshot.LogDifferences(c.logger(), vf, c.tolerances()) {
			c.logger().Debug("cull: reusing cached results", "cubes", len(cubes))
			return c.results, true, nil
		}
	}
	results, err = Classify(ctx, vf, cubes, c.Options)
	if err != nil {
		return nil, false, err
	}
	c.snapshot = vf.Clone()
	c.results = results
	return results, false, nil
}

// Reset drops the cached results.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.snapshot = nil
	c.results = nil
	c.mu.Unlock()
}
