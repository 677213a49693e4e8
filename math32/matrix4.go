// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit view frustum culling.

package math32

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Matrix4 is 4x4 matrix organized internally as column matrix.
// It has the same memory layout as [mgl32.Mat4], which is used
// for the projection builders and products.
type Matrix4 [16]float32

// Translation4 returns a new translation matrix for the given offset.
func Translation4(v Vector3) *Matrix4 {
	m := Matrix4(mgl32.Translate3D(v.X, v.Y, v.Z))
	return &m
}

// Rotation4 returns a new rotation matrix from the given unit quaternion.
func Rotation4(q Quat) *Matrix4 {
	m := Matrix4(mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}.Mat4())
	return &m
}

// Matrix4FromBasis returns the affine matrix whose first three columns
// are x, y and z and whose translation is pos.
func Matrix4FromBasis(x, y, z, pos Vector3) *Matrix4 {
	return &Matrix4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		pos.X, pos.Y, pos.Z, 1,
	}
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4(mgl32.Ident4())
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := Matrix4(mgl32.Mat4(*m).Mul4(mgl32.Mat4(*other)))
	return &nm
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a*b).
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	*m = Matrix4(mgl32.Mat4(*a).Mul4(mgl32.Mat4(*b)))
}

// SetInverse sets this matrix to the inverse of the src matrix.
// If the src matrix cannot be inverted, this is set to the identity.
// The inverse is computed in float64.
func (m *Matrix4) SetInverse(src *Matrix4) {
	inv, ok := inverse64(src)
	if !ok {
		m.SetIdentity()
		return
	}
	for i := range m {
		m[i] = float32(inv[i])
	}
}

// Inverse returns the inverse of this matrix, or the identity if it is singular.
func (m *Matrix4) Inverse() *Matrix4 {
	nm := &Matrix4{}
	nm.SetInverse(m)
	return nm
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width/height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	*m = Matrix4(mgl32.Perspective(DegToRad(fov), aspect, near, far))
}

// SetFrustum sets this matrix to a projection frustum matrix bounded
// by the specified planes.
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) {
	*m = Matrix4(mgl32.Frustum(left, right, bottom, top, near, far))
}

// SetOrthographic sets this matrix to an orthographic projection matrix
// of the given width and height centered on the view axis.
func (m *Matrix4) SetOrthographic(width, height, near, far float32) {
	w, h := width/2, height/2
	*m = Matrix4(mgl32.Ortho(-w, w, -h, h, near, far))
}

func inverse64(src *Matrix4) (mgl64.Mat4, bool) {
	var m64 mgl64.Mat4
	for i, v := range src {
		m64[i] = float64(v)
	}
	if m64.Det() == 0 {
		return m64, false
	}
	return m64.Inv(), true
}

// Unprojector maps homogeneous clip coordinates back through the inverse
// of a projection matrix. The inverse and the products are kept in float64:
// far-plane corners of a perspective projection otherwise lose several
// digits to cancellation in the w component.
type Unprojector struct {
	inv mgl64.Mat4
}

// NewUnprojector returns an [Unprojector] for the given projection matrix.
// A singular projection unprojects through the identity.
func NewUnprojector(proj *Matrix4) Unprojector {
	inv, ok := inverse64(proj)
	if !ok {
		inv = mgl64.Ident4()
	}
	return Unprojector{inv: inv}
}

// Inverse returns the inverse projection matrix in float32.
func (u Unprojector) Inverse() Matrix4 {
	var m Matrix4
	for i, v := range u.inv {
		m[i] = float32(v)
	}
	return m
}

// Unproject returns v multiplied by the inverse projection
// and divided by the resulting w, so that W is 1.
func (u Unprojector) Unproject(v Vector4) Vector4 {
	r := u.inv.Mul4x1(mgl64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)})
	r = r.Mul(1 / r[3])
	return Vec4(float32(r[0]), float32(r[1]), float32(r[2]), 1)
}
