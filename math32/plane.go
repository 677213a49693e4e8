// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit view frustum culling.

package math32

// Plane represents a plane in 3D space by its normal vector and a constant offset.
// When the the normal vector is the unit vector the offset is the distance from the origin.
// Points for which [Plane.DistanceToPoint] is >= 0 lie on the side the normal points to.
type Plane struct {
	Norm Vector3
	Off  float32
}

// SetFromNormalAndCoplanarPoint sets this plane from a normal vector and a point on the plane.
func (p *Plane) SetFromNormalAndCoplanarPoint(normal Vector3, point Vector3) {
	p.Norm = normal
	p.Off = -point.Dot(p.Norm)
}

// SetFromCoplanarPoints sets this plane from three coplanar points.
// The normal is (b-a) x (c-a), normalized: it points towards an observer
// who sees a, b, c in counter-clockwise order.
func (p *Plane) SetFromCoplanarPoints(a, b, c Vector3) {
	norm := b.Sub(a).Cross(c.Sub(a))
	p.SetFromNormalAndCoplanarPoint(norm.Normal(), b)
}

// Normal returns the plane normal vector.
func (p Plane) Normal() Vector3 {
	return p.Norm
}

// DistanceToPoint returns the signed distance from this plane to the specified point.
func (p Plane) DistanceToPoint(point Vector3) float32 {
	return p.Norm.Dot(point) + p.Off
}

// DistanceToSphere returns the signed distance from this plane to the point
// of the sphere farthest along the normal. It is negative only if the whole
// sphere lies behind the plane.
func (p Plane) DistanceToSphere(sphere Sphere) float32 {
	return p.DistanceToPoint(sphere.Center) + sphere.Radius
}

// Invalidate sets the plane to a degenerate state for which every
// finite point is at a distance of -Infinity.
func (p *Plane) Invalidate() {
	p.Norm = Vector3{}
	p.Off = -Infinity
}
