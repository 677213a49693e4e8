// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit view frustum culling.

package math32

// Sphere represents a 3D sphere defined by its center point and a radius
type Sphere struct {
	Center Vector3 // center of the sphere
	Radius float32 // radius of the sphere
}

// IntersectSphere returns if other sphere intersects this one.
// Spheres whose radii sum to less than zero never intersect.
func (s Sphere) IntersectSphere(other Sphere) bool {
	radiusSum := s.Radius + other.Radius
	if radiusSum < 0 {
		return false
	}
	return other.Center.DistanceToSquared(s.Center) <= (radiusSum * radiusSum)
}
