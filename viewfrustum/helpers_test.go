// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewfrustum

import (
	"testing"

	"github.com/rjobse/hifi/math32"
	"github.com/stretchr/testify/assert"
)

func TestComputePickRay(t *testing.T) {
	vf := newTestFrustum()
	r := vf.ComputePickRay(0, 0)
	assertVector(t, vf.WorldCorner(TopLeftNear), r.Origin, 1e-6)
	assertVector(t, math32.Vec3(-1, 1, -1).Normal(), r.Direction, 1e-5)

	r = vf.ComputePickRay(1, 1)
	assertVector(t, vf.WorldCorner(BottomRightNear), r.Origin, 1e-6)

	r = vf.ComputePickRay(0.5, 0.5)
	assertVector(t, math32.Vec3(0, 0, -0.1), r.Origin, 1e-5)
	assertVector(t, math32.Vec3(0, 0, -1), r.Direction, 1e-5)
	assertVector(t, math32.Vec3(0, 0, -10.1), r.PointAt(10), 1e-4)
}

func TestComputeOffAxisFrustum(t *testing.T) {
	vf := New()
	var proj math32.Matrix4
	proj.SetFrustum(-0.2, 0.1, -0.05, 0.15, 0.1, 100)
	vf.SetProjection(&proj)
	vf.SetFocalLength(0.1)
	vf.Calculate()

	oa := vf.ComputeOffAxisFrustum()
	assert.InDelta(t, -0.2, oa.Left, 1e-5)
	assert.InDelta(t, 0.1, oa.Right, 1e-5)
	assert.InDelta(t, -0.05, oa.Bottom, 1e-5)
	assert.InDelta(t, 0.15, oa.Top, 1e-5)
	assert.InDelta(t, 0.1, oa.Near, 1e-5)
	assert.InDelta(t, 100, oa.Far, 1e-3)

	assert.InDelta(t, 0, oa.NearClipPlane.X, 1e-6)
	assert.InDelta(t, -1, oa.NearClipPlane.Z, 1e-6)
	assert.InDelta(t, -0.1, oa.NearClipPlane.W, 1e-5)
	assert.InDelta(t, 1, oa.FarClipPlane.Z, 1e-6)
	assert.InDelta(t, 100, oa.FarClipPlane.W, 1e-3)

	m := oa.ProjectionMatrix()
	for i := range m {
		assert.InDelta(t, proj[i], m[i], 1e-3, "element %d", i)
	}
}

func TestComputeOffAxisFrustumSymmetric(t *testing.T) {
	vf := newTestFrustum()
	oa := vf.ComputeOffAxisFrustum()
	assert.InDelta(t, -0.1, oa.Left, 1e-5)
	assert.InDelta(t, 0.1, oa.Right, 1e-5)
	assert.InDelta(t, -0.1, oa.Bottom, 1e-5)
	assert.InDelta(t, 0.1, oa.Top, 1e-5)
}

func TestComputeOffAxisFrustumNearClamp(t *testing.T) {
	vf := New()
	var proj math32.Matrix4
	proj.SetPerspective(90, 1, 0.001, 100)
	vf.SetProjection(&proj)
	vf.Calculate()
	oa := vf.ComputeOffAxisFrustum()
	assert.Equal(t, float32(MinOffAxisNear), oa.Near)
}

func TestFurthestPointFromCamera(t *testing.T) {
	vf := newTestFrustum()
	cube := math32.NewCube(math32.Vec3(1, 1, -5), 2)
	assert.Equal(t, math32.Vec3(3, 3, -5), vf.FurthestPointFromCamera(cube))

	vf.SetPosition(math32.Vec3(10, -10, -10))
	assert.Equal(t, math32.Vec3(1, 3, -3), vf.FurthestPointFromCamera(cube))
}

func TestCornersAtDepth(t *testing.T) {
	vf := newTestFrustum()
	dc := vf.CornersAtDepth(10)
	assertVector(t, math32.Vec3(-10, 10, -10), dc.TopLeft, 1e-3)
	assertVector(t, math32.Vec3(10, 10, -10), dc.TopRight, 1e-3)
	assertVector(t, math32.Vec3(-10, -10, -10), dc.BottomLeft, 1e-3)
	assertVector(t, math32.Vec3(10, -10, -10), dc.BottomRight, 1e-3)
}
