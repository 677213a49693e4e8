// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewfrustum

import (
	"fmt"
	"log/slog"

	"github.com/rjobse/hifi/math32"
)

// epsilon is the margin of error for scalar comparisons.
const epsilon = 1.0e-6

// Tolerances are the bounds within which two frusta are considered
// similar enough to reuse culling results computed for one of them.
type Tolerances struct {

	// Position is the maximum distance between the camera positions.
	Position float32

	// Orientation is the maximum relative rotation angle, in degrees.
	Orientation float32

	// Scalar is the maximum difference of the field of view, aspect ratio,
	// near and far clip and focal length.
	Scalar float32
}

// DefaultTolerances returns the tolerances used by [ViewFrustum.IsVerySimilar]:
// 5 units of distance, 10 degrees, and 1e-6 for the projection scalars.
func DefaultTolerances() Tolerances {
	return Tolerances{Position: 5, Orientation: 10, Scalar: epsilon}
}

// Difference describes one similarity check between two frusta.
type Difference struct {

	// Name of the compared quantity.
	Name string

	// Value of this frustum, or the measured delta for position
	// and orientation.
	Value float32

	// Other is the value of the compared frustum, or 0 for deltas.
	Other float32

	// Similar is whether the check passed.
	Similar bool
}

func (d Difference) String() string {
	verdict := "IS SIMILAR ENOUGH"
	if !d.Similar {
		verdict = "IS NOT SIMILAR ENOUGH"
	}
	return fmt.Sprintf("%s -- %s=%g other=%g", verdict, d.Name, d.Value, d.Other)
}

// IsVerySimilar reports whether the other frustum is within the
// [DefaultTolerances] of this one.
func (vf *ViewFrustum) IsVerySimilar(other *ViewFrustum) bool {
	return vf.IsSimilar(other, DefaultTolerances())
}

// IsSimilar reports whether every check of [ViewFrustum.Differences] passes.
func (vf *ViewFrustum) IsSimilar(other *ViewFrustum, tol Tolerances) bool {
	for _, d := range vf.Differences(other, tol) {
		if !d.Similar {
			return false
		}
	}
	return true
}

// OrientationDelta returns the angle in degrees of the rotation between
// the two orientations. A NaN angle, from a relative rotation numerically
// indistinguishable from the identity, is reported as 0.
func (vf *ViewFrustum) OrientationDelta(other *ViewFrustum) float32 {
	if vf.orientation.IsEqual(other.orientation) {
		return 0
	}
	delta := vf.orientation.Mul(other.orientation.Inverse())
	angle := math32.RadToDeg(delta.Angle())
	if math32.IsNaN(angle) {
		return 0
	}
	return angle
}

// Differences returns each similarity check between this frustum and other,
// in a fixed order: position, orientation, field of view, aspect ratio,
// near clip, far clip and focal length.
func (vf *ViewFrustum) Differences(other *ViewFrustum, tol Tolerances) []Difference {
	pos := vf.position.DistanceTo(other.position)
	angle := vf.OrientationDelta(other)
	scalar := func(name string, a, b float32) Difference {
		return Difference{Name: name, Value: a, Other: b, Similar: math32.Abs(a-b) <= tol.Scalar}
	}
	return []Difference{
		{Name: "positionDistance", Value: pos, Similar: pos <= tol.Position},
		{Name: "angleOrientation", Value: angle, Similar: angle <= tol.Orientation},
		scalar("fieldOfView", vf.fieldOfView, other.fieldOfView),
		scalar("aspectRatio", vf.aspectRatio, other.aspectRatio),
		scalar("nearClip", vf.nearClip, other.nearClip),
		scalar("farClip", vf.farClip, other.farClip),
		scalar("focalLength", vf.focalLength, other.focalLength),
	}
}

// LogDifferences logs the failing similarity checks at debug level.
// It logs nothing and returns true if the frusta are similar.
func (vf *ViewFrustum) LogDifferences(logger *slog.Logger, other *ViewFrustum, tol Tolerances) bool {
	similar := true
	for _, d := range vf.Differences(other, tol) {
		if d.Similar {
			continue
		}
		similar = false
		logger.Debug("view frustum is not similar", "check", d.Name, "value", d.Value, "other", d.Other)
	}
	return similar
}
