// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlane(t *testing.T) {
	// counter-clockwise seen from +Z
	var pl Plane
	pl.SetFromCoplanarPoints(Vec3(0, 0, 2), Vec3(1, 0, 2), Vec3(0, 1, 2))
	tolAssertEqualVector(t, Vec3(0, 0, 1), pl.Normal())
	assert.InDelta(t, 3, pl.DistanceToPoint(Vec3(5, 5, 5)), 1e-6)
	assert.InDelta(t, -2, pl.DistanceToPoint(Vec3(0, 0, 0)), 1e-6)
	assert.InDelta(t, 4, pl.DistanceToSphere(Sphere{Vec3(0, 0, 5), 1}), 1e-6)
	// a sphere crossing the plane from behind
	assert.InDelta(t, 0.5, pl.DistanceToSphere(Sphere{Vec3(0, 0, 0), 2.5}), 1e-6)
	assert.Less(t, pl.DistanceToSphere(Sphere{Vec3(0, 0, 0), 1}), float32(0))

	// reversed winding flips the normal
	var rev Plane
	rev.SetFromCoplanarPoints(Vec3(0, 0, 2), Vec3(0, 1, 2), Vec3(1, 0, 2))
	tolAssertEqualVector(t, Vec3(0, 0, -1), rev.Normal())

	pl.Invalidate()
	assert.Equal(t, Vector3{}, pl.Normal())
	assert.Less(t, pl.DistanceToSphere(Sphere{Vec3(0, 0, 0), MaxFloat32}), float32(0))
	assert.Less(t, pl.DistanceToPoint(Vec3(0, 0, 0)), float32(-MaxFloat32))
	assert.Less(t, pl.DistanceToPoint(Vec3(1e30, -1e30, 1e30)), float32(-1e30))
}

func TestSphere(t *testing.T) {
	s := Sphere{Vec3(1, 0, 0), 2}
	assert.True(t, s.IntersectSphere(Sphere{Vec3(4, 0, 0), 1}))
	assert.True(t, s.IntersectSphere(Sphere{Vec3(1, 0, 0), 0}))
	assert.False(t, s.IntersectSphere(Sphere{Vec3(5, 0, 0), 1}))
	// a negative radius sum never intersects, even at the same center
	assert.False(t, s.IntersectSphere(Sphere{Vec3(1, 0, 0), -3}))
}
