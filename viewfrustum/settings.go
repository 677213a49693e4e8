// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewfrustum

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the tunable parameters of the frustum and of the
// similarity used to reuse culling results. Zero fields in a settings
// file keep their default value.
type Settings struct {

	// CenterSphereRadius is the radius of the keyhole sphere around the camera.
	CenterSphereRadius float32 `toml:"center_sphere_radius" yaml:"center_sphere_radius" json:"center_sphere_radius"`

	// FocalLength is the stereo focal length.
	FocalLength float32 `toml:"focal_length" yaml:"focal_length" json:"focal_length"`

	// PositionTolerance is the max camera movement for similar frusta.
	PositionTolerance float32 `toml:"position_tolerance" yaml:"position_tolerance" json:"position_tolerance"`

	// OrientationTolerance is the max camera rotation, in degrees, for similar frusta.
	OrientationTolerance float32 `toml:"orientation_tolerance" yaml:"orientation_tolerance" json:"orientation_tolerance"`

	// ScalarTolerance is the max difference of the projection scalars for similar frusta.
	ScalarTolerance float32 `toml:"scalar_tolerance" yaml:"scalar_tolerance" json:"scalar_tolerance"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	tol := DefaultTolerances()
	return Settings{
		CenterSphereRadius:   DefaultCenterSphereRadius,
		FocalLength:          DefaultFocalLength,
		PositionTolerance:    tol.Position,
		OrientationTolerance: tol.Orientation,
		ScalarTolerance:      tol.Scalar,
	}
}

// Tolerances returns the similarity tolerances of the settings.
func (s Settings) Tolerances() Tolerances {
	return Tolerances{Position: s.PositionTolerance, Orientation: s.OrientationTolerance, Scalar: s.ScalarTolerance}
}

// Apply sets the center sphere radius and focal length of the frustum.
// [ViewFrustum.Calculate] must be called afterwards.
func (s Settings) Apply(vf *ViewFrustum) {
	vf.SetCenterSphereRadius(s.CenterSphereRadius)
	vf.SetFocalLength(s.FocalLength)
}

// OpenSettings reads settings from the given .toml, .yaml, .yml or .json file,
// on top of [DefaultSettings].
func OpenSettings(filename string) (Settings, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return DefaultSettings(), err
	}
	s, err := ReadSettings(b, filepath.Ext(filename))
	if err != nil {
		return s, fmt.Errorf("viewfrustum.OpenSettings: %s: %w", filename, err)
	}
	return s, nil
}

// ReadSettings decodes settings in the format given by the file extension ext,
// on top of [DefaultSettings].
func ReadSettings(b []byte, ext string) (Settings, error) {
	s := DefaultSettings()
	var read Settings
	var err error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		err = toml.Unmarshal(b, &read)
	case "yaml", "yml":
		err = yaml.Unmarshal(b, &read)
	case "json":
		err = json.Unmarshal(b, &read)
	default:
		return s, fmt.Errorf("unsupported settings format %q", ext)
	}
	if err != nil {
		return s, err
	}
	if err := copier.CopyWithOption(&s, &read, copier.Option{IgnoreEmpty: true}); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}
