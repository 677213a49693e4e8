// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewfrustum

import "github.com/rjobse/hifi/math32"

// MinOffAxisNear is the smallest near value returned by
// [ViewFrustum.ComputeOffAxisFrustum].
const MinOffAxisNear = 0.01

// PickRay is a ray from the near plane away from the camera.
type PickRay struct {
	Origin    math32.Vector3
	Direction math32.Vector3
}

// PointAt returns the point at distance t along the ray.
func (r PickRay) PointAt(t float32) math32.Vector3 {
	return r.Origin.Add(r.Direction.MulScalar(t))
}

// ComputePickRay returns the ray through the normalized screen position x, y,
// where 0, 0 is the top left and 1, 1 the bottom right of the near plane.
func (vf *ViewFrustum) ComputePickRay(x, y float32) PickRay {
	tln := vf.cornersWorld[TopLeftNear]
	origin := tln.Add(vf.cornersWorld[TopRightNear].Sub(tln).MulScalar(x)).
		Add(vf.cornersWorld[BottomLeftNear].Sub(tln).MulScalar(y))
	return PickRay{Origin: origin, Direction: origin.Sub(vf.position).Normal()}
}

// OffAxisFrustum holds the extents of an asymmetric frustum at the focal
// length, as used to build the per-eye projections of stereo rendering.
type OffAxisFrustum struct {
	Left, Right, Bottom, Top float32

	// Near and Far are the min and max depth of all corners.
	Near, Far float32

	// NearClipPlane and FarClipPlane are plane equations (a, b, c, d)
	// in the camera frame.
	NearClipPlane math32.Vector4
	FarClipPlane  math32.Vector4
}

// ProjectionMatrix returns the projection matrix for the off-axis extents.
func (oa OffAxisFrustum) ProjectionMatrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetFrustum(oa.Left, oa.Right, oa.Bottom, oa.Top, oa.Near, oa.Far)
	return m
}

// ComputeOffAxisFrustum returns the left, right, bottom and top extents
// at z = -near of the frustum sliced at the focal length.
func (vf *ViewFrustum) ComputeOffAxisFrustum() OffAxisFrustum {
	oa := OffAxisFrustum{Near: math32.MaxFloat32, Far: -math32.MaxFloat32}
	for i := range vf.corners {
		oa.Near = math32.Min(oa.Near, -vf.corners[i].Z)
		oa.Far = math32.Max(oa.Far, -vf.corners[i].Z)
	}
	oa.Near = math32.Max(MinOffAxisNear, oa.Near)

	normal := math32.Vec4(0, 0, 1, 0)
	oa.NearClipPlane = math32.Vec4(-normal.X, -normal.Y, -normal.Z, normal.Dot(vf.corners[BottomLeftNear]))
	oa.FarClipPlane = math32.Vec4(normal.X, normal.Y, normal.Z, -normal.Dot(vf.corners[BottomLeftFar]))

	// 0 at the near clip, 1 at the far clip
	focal := (vf.focalLength - vf.nearClip) / (vf.farClip - vf.nearClip)

	oa.Left, oa.Bottom = math32.MaxFloat32, math32.MaxFloat32
	oa.Right, oa.Top = -math32.MaxFloat32, -math32.MaxFloat32
	for i := BottomLeftNear; i <= TopLeftNear; i++ {
		corner := vf.corners[i].Lerp(vf.corners[i+4], focal)
		p := corner.MulScalar(-oa.Near / corner.Z)
		oa.Left = math32.Min(oa.Left, p.X)
		oa.Right = math32.Max(oa.Right, p.X)
		oa.Bottom = math32.Min(oa.Bottom, p.Y)
		oa.Top = math32.Max(oa.Top, p.Y)
	}
	return oa
}

// FurthestPointFromCamera returns the vertex of the cube furthest from the
// camera, choosing the far face on each axis by comparing the camera position
// with the cube center.
func (vf *ViewFrustum) FurthestPointFromCamera(cube math32.Cube) math32.Vector3 {
	corner := cube.Corner()
	scale := cube.Scale()
	half := scale * 0.5
	furthest := corner
	if vf.position.X < corner.X+half {
		furthest.X = corner.X + scale
	}
	if vf.position.Y < corner.Y+half {
		furthest.Y = corner.Y + scale
	}
	if vf.position.Z < corner.Z+half {
		furthest.Z = corner.Z + scale
	}
	return furthest
}

// DepthCorners are the four corners of a slice of the frustum
// perpendicular to the view direction.
type DepthCorners struct {
	TopLeft     math32.Vector3
	TopRight    math32.Vector3
	BottomLeft  math32.Vector3
	BottomRight math32.Vector3
}

// CornersAtDepth returns the corners of the frustum slice
// at the given distance along the view direction.
func (vf *ViewFrustum) CornersAtDepth(depth float32) DepthCorners {
	normal := vf.direction.Normal()
	corner := func(near, far Corners) math32.Vector3 {
		dir := vf.cornersWorld[near].Sub(vf.cornersWorld[far]).Normal()
		factor := depth / dir.Dot(normal)
		return vf.position.Add(dir.MulScalar(factor))
	}
	return DepthCorners{
		TopLeft:     corner(TopLeftNear, TopLeftFar),
		TopRight:    corner(TopRightNear, TopRightFar),
		BottomLeft:  corner(BottomLeftNear, BottomLeftFar),
		BottomRight: corner(BottomRightNear, BottomRightFar),
	}
}
