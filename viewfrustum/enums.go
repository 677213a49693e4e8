// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewfrustum

//go:generate stringer -type=Intersection
//go:generate stringer -type=Corners
//go:generate stringer -type=Planes

// Intersection is the result of classifying a volume against
// the frustum or the keyhole.
type Intersection int32

const (
	// Outside means the volume is entirely outside.
	Outside Intersection = iota

	// Intersect means the volume straddles the boundary.
	Intersect

	// Inside means the volume is entirely inside.
	Inside
)

// Corners enumerates the eight frustum corners. The order is relied
// upon by the plane windings and the near/far pairing (i, i+4).
type Corners int32

const (
	BottomLeftNear Corners = iota
	BottomRightNear
	TopRightNear
	TopLeftNear
	BottomLeftFar
	BottomRightFar
	TopRightFar
	TopLeftFar
)

// CornersN is the number of frustum corners.
const CornersN = 8

// Planes enumerates the six frustum planes.
type Planes int32

const (
	TopPlane Planes = iota
	BottomPlane
	LeftPlane
	RightPlane
	NearPlane
	FarPlane
)

// PlanesN is the number of frustum planes.
const PlanesN = 6
