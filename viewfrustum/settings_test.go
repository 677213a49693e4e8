// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewfrustum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSettings(t *testing.T) {
	tests := []struct {
		ext  string
		data string
	}{
		{".toml", "center_sphere_radius = 5.0\nposition_tolerance = 2.0\n"},
		{".yaml", "center_sphere_radius: 5\nposition_tolerance: 2\n"},
		{"yml", "center_sphere_radius: 5\nposition_tolerance: 2\n"},
		{".json", `{"center_sphere_radius": 5, "position_tolerance": 2}`},
		{".TOML", "center_sphere_radius = 5.0\nposition_tolerance = 2.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			s, err := ReadSettings([]byte(tt.data), tt.ext)
			require.NoError(t, err)
			assert.Equal(t, float32(5), s.CenterSphereRadius)
			assert.Equal(t, float32(2), s.PositionTolerance)
			// unset fields keep their defaults
			assert.Equal(t, float32(DefaultFocalLength), s.FocalLength)
			assert.Equal(t, float32(10), s.OrientationTolerance)
			assert.Equal(t, float32(epsilon), s.ScalarTolerance)
		})
	}
}

func TestReadSettingsErrors(t *testing.T) {
	s, err := ReadSettings([]byte("center_sphere_radius = 5"), ".ini")
	assert.ErrorContains(t, err, "unsupported settings format")
	assert.Equal(t, DefaultSettings(), s)

	_, err = ReadSettings([]byte("{not json"), ".json")
	assert.Error(t, err)
}

func TestOpenSettings(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "frustum.toml")
	require.NoError(t, os.WriteFile(fn, []byte("focal_length = 0.5\norientation_tolerance = 4.0\n"), 0o644))

	s, err := OpenSettings(fn)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), s.FocalLength)
	assert.Equal(t, float32(DefaultCenterSphereRadius), s.CenterSphereRadius)
	tol := s.Tolerances()
	assert.Equal(t, float32(4), tol.Orientation)
	assert.Equal(t, float32(5), tol.Position)

	bad := filepath.Join(dir, "frustum.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("focal_length: [1, 2"), 0o644))
	_, err = OpenSettings(bad)
	assert.ErrorContains(t, err, "frustum.yaml")

	s, err = OpenSettings(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettingsApply(t *testing.T) {
	vf := newTestFrustum()
	s := DefaultSettings()
	s.CenterSphereRadius = 7
	s.FocalLength = 1.5
	s.Apply(vf)
	assert.False(t, vf.IsCalculated())
	assert.Equal(t, float32(7), vf.CenterSphereRadius())
	assert.Equal(t, float32(1.5), vf.FocalLength())
}
