// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewfrustum computes a camera view frustum from a pose and a
// projection, and classifies points, spheres, boxes and cubes against it,
// and against the "keyhole": the frustum united with a sphere around the
// camera, which keeps nearby content visible while the camera turns.
//
// A ViewFrustum is configured with the setters and then computed with
// [ViewFrustum.Calculate]. Setters never recompute the planes, so
// Calculate must be called after any of them and before any query.
// Once calculated, a frustum is a read-only snapshot: queries are pure
// and may run concurrently, and [ViewFrustum.Clone] makes a copy to hand
// off to other goroutines while the original is reconfigured.
package viewfrustum

import (
	"log/slog"

	"github.com/rjobse/hifi/math32"
)

// Defaults for a new [ViewFrustum]. The default projection is stored in
// float32, so the far clip recovered from it by [New] is about 16368,
// within 0.2% of DefaultFarClip.
const (
	DefaultCenterSphereRadius = 3.0
	DefaultFieldOfView        = 45.0
	DefaultAspectRatio        = 16.0 / 9.0
	DefaultNearClip           = 0.08
	DefaultFarClip            = 16384.0
	DefaultFocalLength        = 0.25
)

// InvalidCenterSphereRadius is the center sphere radius set by
// [ViewFrustum.Invalidate]; any negative radius disables the keyhole sphere.
const InvalidCenterSphereRadius = -1.0e6

// Canonical camera axes, before rotation by the orientation.
var (
	IdentityRight = math32.Vec3(1, 0, 0)
	IdentityUp    = math32.Vec3(0, 1, 0)
	IdentityFront = math32.Vec3(0, 0, -1)
)

// ndcCorners are the normalized device coordinate cube corners, in [Corners] order.
var ndcCorners = [CornersN]math32.Vector4{
	{X: -1, Y: -1, Z: -1, W: 1},
	{X: 1, Y: -1, Z: -1, W: 1},
	{X: 1, Y: 1, Z: -1, W: 1},
	{X: -1, Y: 1, Z: -1, W: 1},
	{X: -1, Y: -1, Z: 1, W: 1},
	{X: 1, Y: -1, Z: 1, W: 1},
	{X: 1, Y: 1, Z: 1, W: 1},
	{X: -1, Y: 1, Z: 1, W: 1},
}

// ViewFrustum is the viewing volume of a camera.
type ViewFrustum struct {
	position    math32.Vector3
	orientation math32.Quat

	// camera basis, derived from orientation
	right     math32.Vector3
	up        math32.Vector3
	direction math32.Vector3

	view          math32.Matrix4
	projection    math32.Matrix4
	invProjection math32.Matrix4

	// corners in the camera frame, unprojected through the inverse projection
	corners [CornersN]math32.Vector4

	// corners in world space, computed by Calculate
	cornersWorld [CornersN]math32.Vector3

	// planes with normals pointing to the inside, computed by Calculate
	planes [PlanesN]math32.Plane

	nearClip           float32
	farClip            float32
	aspectRatio        float32
	fieldOfView        float32
	focalLength        float32
	centerSphereRadius float32

	calculated bool
}

// New returns a new [ViewFrustum] at the origin looking down -Z, with a
// default perspective projection. Its planes are invalid until
// [ViewFrustum.Calculate] is called.
func New() *ViewFrustum {
	vf := &ViewFrustum{
		focalLength:        DefaultFocalLength,
		centerSphereRadius: DefaultCenterSphereRadius,
	}
	vf.SetOrientation(math32.QuatIdentity())
	var proj math32.Matrix4
	proj.SetPerspective(DefaultFieldOfView, DefaultAspectRatio, DefaultNearClip, DefaultFarClip)
	vf.SetProjection(&proj)
	for i := range vf.planes {
		vf.planes[i].Invalidate()
	}
	return vf
}

// Clone returns an independent copy of the frustum.
func (vf *ViewFrustum) Clone() *ViewFrustum {
	nf := *vf
	return &nf
}

// SetOrientation sets the camera orientation, which must be a unit quaternion,
// and updates the right, up and direction vectors and the view matrix.
func (vf *ViewFrustum) SetOrientation(q math32.Quat) {
	vf.orientation = q
	vf.right = IdentityRight.MulQuat(q)
	vf.up = IdentityUp.MulQuat(q)
	vf.direction = IdentityFront.MulQuat(q)
	vf.updateView()
}

// SetPosition sets the camera position and updates the view matrix.
func (vf *ViewFrustum) SetPosition(p math32.Vector3) {
	vf.position = p
	vf.updateView()
}

func (vf *ViewFrustum) updateView() {
	vf.view.MulMatrices(math32.Translation4(vf.position), math32.Rotation4(vf.orientation))
	vf.calculated = false
}

// SetProjection sets the projection matrix, unprojects the clip cube corners
// into the camera frame and derives the near and far clip, the aspect ratio
// and the vertical field of view from them. The projection must be invertible.
func (vf *ViewFrustum) SetProjection(proj *math32.Matrix4) {
	vf.projection = *proj
	up := math32.NewUnprojector(proj)
	vf.invProjection = up.Inverse()
	for i := range vf.corners {
		vf.corners[i] = up.Unproject(ndcCorners[i])
	}
	bln := vf.corners[BottomLeftNear]
	trn := vf.corners[TopRightNear]
	vf.nearClip = -bln.Z
	vf.farClip = -vf.corners[BottomLeftFar].Z
	vf.aspectRatio = (trn.X - bln.X) / (trn.Y - bln.Y)

	top := up.Unproject(math32.Vec4(0, 1, -1, 1)).Vector3()
	vf.fieldOfView = math32.Abs(math32.RadToDeg(2 * IdentityFront.AngleTo(top.Normal())))
	vf.calculated = false
}

// SetFocalLength sets the distance of the stereo convergence plane
// used by [ViewFrustum.ComputeOffAxisFrustum].
func (vf *ViewFrustum) SetFocalLength(length float32) {
	vf.focalLength = length
	vf.calculated = false
}

// SetCenterSphereRadius sets the radius of the keyhole sphere around the camera.
// A negative radius disables the sphere, leaving only the frustum.
func (vf *ViewFrustum) SetCenterSphereRadius(radius float32) {
	vf.centerSphereRadius = radius
	vf.calculated = false
}

// Calculate computes the world space corners and the six planes from the
// current pose and projection. It must be called after any setter and
// before any intersection query.
func (vf *ViewFrustum) Calculate() {
	world := math32.Matrix4FromBasis(vf.right, vf.up, vf.direction.Negate(), vf.position)
	for i := range vf.corners {
		vf.cornersWorld[i] = vf.corners[i].MulMatrix4(world).PerspDiv()
	}

	// Each plane is set from three corners that are counter-clockwise when
	// seen from inside the frustum facing the plane, so the normal points inward.
	cw := &vf.cornersWorld
	vf.planes[TopPlane].SetFromCoplanarPoints(cw[TopRightNear], cw[TopLeftNear], cw[TopLeftFar])
	vf.planes[BottomPlane].SetFromCoplanarPoints(cw[BottomLeftNear], cw[BottomRightNear], cw[BottomRightFar])
	vf.planes[LeftPlane].SetFromCoplanarPoints(cw[BottomLeftNear], cw[BottomLeftFar], cw[TopLeftFar])
	vf.planes[RightPlane].SetFromCoplanarPoints(cw[BottomRightFar], cw[BottomRightNear], cw[TopRightFar])
	vf.planes[NearPlane].SetFromCoplanarPoints(cw[BottomRightNear], cw[BottomLeftNear], cw[TopLeftNear])
	vf.planes[FarPlane].SetFromCoplanarPoints(cw[BottomLeftFar], cw[BottomRightFar], cw[TopRightFar])
	vf.calculated = true
}

// IsCalculated returns whether [ViewFrustum.Calculate] has been called
// since the last setter.
func (vf *ViewFrustum) IsCalculated() bool {
	return vf.calculated
}

// Invalidate makes every subsequent intersection query report nothing visible,
// until the next [ViewFrustum.Calculate] and [ViewFrustum.SetCenterSphereRadius].
func (vf *ViewFrustum) Invalidate() {
	for i := range vf.planes {
		vf.planes[i].Invalidate()
	}
	vf.centerSphereRadius = InvalidCenterSphereRadius
	vf.calculated = false
}

// Position returns the camera position.
func (vf *ViewFrustum) Position() math32.Vector3 { return vf.position }

// Orientation returns the camera orientation.
func (vf *ViewFrustum) Orientation() math32.Quat { return vf.orientation }

// Direction returns the unit view direction.
func (vf *ViewFrustum) Direction() math32.Vector3 { return vf.direction }

// Up returns the unit up vector.
func (vf *ViewFrustum) Up() math32.Vector3 { return vf.up }

// Right returns the unit right vector.
func (vf *ViewFrustum) Right() math32.Vector3 { return vf.right }

// NearClip returns the distance of the near clip plane.
func (vf *ViewFrustum) NearClip() float32 { return vf.nearClip }

// FarClip returns the distance of the far clip plane.
func (vf *ViewFrustum) FarClip() float32 { return vf.farClip }

// AspectRatio returns the width over height ratio of the near plane.
func (vf *ViewFrustum) AspectRatio() float32 { return vf.aspectRatio }

// FieldOfView returns the vertical field of view in degrees.
func (vf *ViewFrustum) FieldOfView() float32 { return vf.fieldOfView }

// FocalLength returns the stereo focal length.
func (vf *ViewFrustum) FocalLength() float32 { return vf.focalLength }

// CenterSphereRadius returns the keyhole sphere radius.
func (vf *ViewFrustum) CenterSphereRadius() float32 { return vf.centerSphereRadius }

// View returns the view matrix: translation by position, then rotation by orientation.
func (vf *ViewFrustum) View() math32.Matrix4 { return vf.view }

// Projection returns the projection matrix.
func (vf *ViewFrustum) Projection() math32.Matrix4 { return vf.projection }

// InverseProjection returns the inverse of the projection matrix.
func (vf *ViewFrustum) InverseProjection() math32.Matrix4 { return vf.invProjection }

// ClipCorner returns the given corner in the camera frame.
func (vf *ViewFrustum) ClipCorner(c Corners) math32.Vector4 { return vf.corners[c] }

// WorldCorner returns the given corner in world space.
func (vf *ViewFrustum) WorldCorner(c Corners) math32.Vector3 { return vf.cornersWorld[c] }

// PlaneAt returns the given frustum plane.
func (vf *ViewFrustum) PlaneAt(p Planes) math32.Plane { return vf.planes[p] }

// BoundingBox returns the axis-aligned box around the world space corners.
func (vf *ViewFrustum) BoundingBox() math32.Box3 {
	var b math32.Box3
	b.SetFromPoints(vf.cornersWorld[:])
	return b
}

// LogValue implements [slog.LogValuer], reporting the pose and projection.
func (vf *ViewFrustum) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("position", vf.position.String()),
		slog.String("direction", vf.direction.String()),
		slog.String("up", vf.up.String()),
		slog.String("right", vf.right.String()),
		slog.Float64("fieldOfView", float64(vf.fieldOfView)),
		slog.Float64("aspectRatio", float64(vf.aspectRatio)),
		slog.Float64("centerSphereRadius", float64(vf.centerSphereRadius)),
		slog.Float64("nearClip", float64(vf.nearClip)),
		slog.Float64("farClip", float64(vf.farClip)),
		slog.Float64("focalLength", float64(vf.focalLength)),
		slog.Bool("calculated", vf.calculated),
	)
}
