// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Cube is an axis-aligned cube given by its minimum corner
// and the length of its edges.
type Cube struct {
	Min  Vector3
	Size float32
}

// NewCube returns a new [Cube] with the given minimum corner and edge length.
func NewCube(corner Vector3, size float32) Cube {
	return Cube{corner, size}
}

// Corner returns the minimum corner of the cube.
func (c Cube) Corner() Vector3 {
	return c.Min
}

// Scale returns the edge length of the cube.
func (c Cube) Scale() float32 {
	return c.Size
}

// Center returns the center of the cube.
func (c Cube) Center() Vector3 {
	return c.Min.AddScalar(c.Size * 0.5)
}

// Box returns the cube as a [Box3].
func (c Cube) Box() Box3 {
	return Box3{c.Min, c.Min.AddScalar(c.Size)}
}

// BoundingRadius returns the radius of the sphere around the center
// containing the cube.
func (c Cube) BoundingRadius() float32 {
	return HalfSqrt3 * c.Size
}

// FarthestVertex returns the cube vertex farthest along dir.
func (c Cube) FarthestVertex(dir Vector3) Vector3 {
	return c.Box().FarthestVertex(dir)
}

// NearestVertex returns the cube vertex nearest along dir.
func (c Cube) NearestVertex(dir Vector3) Vector3 {
	return c.Box().NearestVertex(dir)
}

// TouchesSphere returns true if the cube and the given sphere overlap.
// A negative radius never touches.
func (c Cube) TouchesSphere(center Vector3, radius float32) bool {
	return c.Box().TouchesSphere(center, radius)
}
