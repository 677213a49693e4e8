// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewfrustum

import "github.com/rjobse/hifi/math32"

// Volume is an axis-aligned volume that can be tested against the planes.
// It is implemented by [math32.Box3] and [math32.Cube].
type Volume interface {
	FarthestVertex(dir math32.Vector3) math32.Vector3
	NearestVertex(dir math32.Vector3) math32.Vector3
	TouchesSphere(center math32.Vector3, radius float32) bool
}

// CubeFrustumIntersection classifies the cube against the frustum only.
// A cube rejected by any plane is [Outside], even if an earlier plane
// was straddled.
func (vf *ViewFrustum) CubeFrustumIntersection(cube math32.Cube) Intersection {
	return vf.volumeFrustumIntersection(cube)
}

func (vf *ViewFrustum) volumeFrustumIntersection(vol Volume) Intersection {
	result := Inside
	for i := range vf.planes {
		pl := &vf.planes[i]
		normal := pl.Normal()
		if pl.DistanceToPoint(vol.FarthestVertex(normal)) < 0 {
			return Outside
		}
		if pl.DistanceToPoint(vol.NearestVertex(normal)) < 0 {
			// straddles this plane, but a later one may still reject it
			result = Intersect
		}
	}
	return result
}

// CubeKeyholeIntersection classifies the cube against the keyhole: the
// frustum united with the sphere of [ViewFrustum.CenterSphereRadius]
// around the camera. The result is never more restrictive than
// [ViewFrustum.CubeFrustumIntersection].
func (vf *ViewFrustum) CubeKeyholeIntersection(cube math32.Cube) Intersection {
	sphereResult := vf.cubeSphereIntersection(cube)
	if sphereResult == Inside {
		return Inside
	}
	frustumResult := vf.CubeFrustumIntersection(cube)
	if frustumResult == Outside {
		return sphereResult
	}
	return frustumResult
}

// cubeSphereIntersection classifies the cube against the center sphere alone.
func (vf *ViewFrustum) cubeSphereIntersection(cube math32.Cube) Intersection {
	radius := vf.centerSphereRadius
	if radius < 0 {
		return Outside
	}
	offset := cube.Center().Sub(vf.position)
	distance := offset.Length()
	if distance > epsilon {
		vertex := cube.FarthestVertex(offset).Sub(vf.position)
		if vertex.Dot(offset) <= radius*distance {
			// the most outward vertex is inside the sphere
			return Inside
		}
	} else if radius > cube.BoundingRadius() {
		// centered on the camera with the bounding radius inside the sphere
		return Inside
	}
	if !cube.TouchesSphere(vf.position, radius) {
		return Outside
	}
	return Intersect
}

// PointIntersectsFrustum returns whether the point is inside or on every plane.
func (vf *ViewFrustum) PointIntersectsFrustum(point math32.Vector3) bool {
	for i := range vf.planes {
		if vf.planes[i].DistanceToPoint(point) < 0 {
			return false
		}
	}
	return true
}

// SphereIntersectsFrustum returns false if the sphere lies entirely
// outside of any plane.
func (vf *ViewFrustum) SphereIntersectsFrustum(center math32.Vector3, radius float32) bool {
	sphere := math32.Sphere{Center: center, Radius: radius}
	for i := range vf.planes {
		if vf.planes[i].DistanceToSphere(sphere) < 0 {
			return false
		}
	}
	return true
}

// BoxIntersectsFrustum returns false if the box lies entirely outside of any
// plane. Unlike [ViewFrustum.CubeFrustumIntersection] it does not
// distinguish straddling from containment.
func (vf *ViewFrustum) BoxIntersectsFrustum(box math32.Box3) bool {
	return vf.volumeIntersectsPlanes(box)
}

func (vf *ViewFrustum) volumeIntersectsPlanes(vol Volume) bool {
	for i := range vf.planes {
		pl := &vf.planes[i]
		if pl.DistanceToPoint(vol.FarthestVertex(pl.Normal())) < 0 {
			return false
		}
	}
	return true
}

// SphereIntersectsKeyhole returns true if the sphere touches the center
// sphere or is not rejected by any frustum plane.
func (vf *ViewFrustum) SphereIntersectsKeyhole(center math32.Vector3, radius float32) bool {
	keyhole := math32.Sphere{Center: vf.position, Radius: vf.centerSphereRadius}
	if vf.centerSphereRadius >= 0 && keyhole.IntersectSphere(math32.Sphere{Center: center, Radius: radius}) {
		return true
	}
	return vf.SphereIntersectsFrustum(center, radius)
}

// CubeIntersectsKeyhole returns true if the cube touches the center
// sphere or is not rejected by any frustum plane.
func (vf *ViewFrustum) CubeIntersectsKeyhole(cube math32.Cube) bool {
	return vf.volumeIntersectsKeyhole(cube)
}

// BoxIntersectsKeyhole returns true if the box touches the center
// sphere or is not rejected by any frustum plane.
func (vf *ViewFrustum) BoxIntersectsKeyhole(box math32.Box3) bool {
	return vf.volumeIntersectsKeyhole(box)
}

func (vf *ViewFrustum) volumeIntersectsKeyhole(vol Volume) bool {
	if vol.TouchesSphere(vf.position, vf.centerSphereRadius) {
		return true
	}
	return vf.volumeIntersectsPlanes(vol)
}

// DistanceToCamera returns the distance from the camera position to the point.
func (vf *ViewFrustum) DistanceToCamera(point math32.Vector3) float32 {
	return vf.position.DistanceTo(point)
}
