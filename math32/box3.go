// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit view frustum culling.

package math32

// Box3 represents a 3D axis-aligned bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// SetFromPoints sets this bounding box from the specified array of points.
func (b *Box3) SetFromPoints(points []Vector3) {
	b.SetEmpty()
	for i := 0; i < len(points); i++ {
		b.ExpandByPoint(points[i])
	}
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// Center returns the center of the bounding box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ClampPoint returns a new point which is the specified point clamped inside this box.
func (b Box3) ClampPoint(point Vector3) Vector3 {
	point.Clamp(b.Min, b.Max)
	return point
}

// FarthestVertex returns the box vertex farthest along the given direction:
// on each axis the max coordinate is chosen where dir is positive.
func (b Box3) FarthestVertex(dir Vector3) Vector3 {
	v := b.Min
	if dir.X > 0 {
		v.X = b.Max.X
	}
	if dir.Y > 0 {
		v.Y = b.Max.Y
	}
	if dir.Z > 0 {
		v.Z = b.Max.Z
	}
	return v
}

// NearestVertex returns the box vertex nearest along the given direction,
// i.e., the [Box3.FarthestVertex] for the opposite direction.
func (b Box3) NearestVertex(dir Vector3) Vector3 {
	v := b.Min
	if dir.X < 0 {
		v.X = b.Max.X
	}
	if dir.Y < 0 {
		v.Y = b.Max.Y
	}
	if dir.Z < 0 {
		v.Z = b.Max.Z
	}
	return v
}

// TouchesSphere returns true if the box and the sphere with the given center
// and radius have at least one point in common. A negative radius never touches.
func (b Box3) TouchesSphere(center Vector3, radius float32) bool {
	if radius < 0 {
		return false
	}
	return b.ClampPoint(center).DistanceToSquared(center) <= radius*radius
}
