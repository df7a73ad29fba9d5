// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package layout implements the core layout algorithm: combining a resolved
// horizontal alignment, an optional vertical profile and an optional TIN
// surface with a set of dimensional Parameters into a fully resolved
// model.WallLayout.
package layout

import "github.com/levipl123-crypto/gdot-soundwall/config"

// Parameters carries every dimensional constant and construction choice the
// engine needs, each defaulted by DefaultParameters to the GDOT nominal
// values in spec.md §6's table.
type Parameters struct {
	WallType       config.WallType
	WallHeight     float64
	FoundationType config.FoundationType
	PostSpacingMax float64

	// StartStation/EndStation: nil selects the alignment's own bounds
	StartStation *float64
	EndStation   *float64

	Offset float64

	PanelHeight    float64
	PanelThickness float64
	PanelMaxWidth  float64

	CapHeight   float64
	CapOverhang float64

	ExpansionJointSpacing   float64
	ExpansionJointGap       float64
	ContractionJointSpacing float64

	DrainageSpacing float64
	DrainageWidth   float64
	DrainageHeight  float64

	CaissonDiameter float64
	CaissonDepth    float64

	SpreadLength float64
	SpreadWidth  float64
	SpreadDepth  float64

	ContinuousWidth float64
	ContinuousDepth float64

	MSEHeight float64
}

// DefaultParameters returns a Parameters value populated with the GDOT
// nominal defaults from spec.md §4.G / §6
func DefaultParameters() Parameters {
	return Parameters{
		WallType:       config.Precast,
		WallHeight:     config.DefaultWallHeight,
		FoundationType: config.Caisson,
		PostSpacingMax: config.PostSpacingMax,

		Offset: 0.0,

		PanelHeight:    config.PanelHeight,
		PanelThickness: config.PanelThickness,
		PanelMaxWidth:  config.PanelWidthMax,

		CapHeight:   config.CapHeight,
		CapOverhang: config.CapOverhang,

		ExpansionJointSpacing:   config.ExpansionJointSpacing,
		ExpansionJointGap:       config.ExpansionJointGap,
		ContractionJointSpacing: config.ContractionJointSpacing,

		DrainageSpacing: config.DrainageSlotSpacing,
		DrainageWidth:   config.DrainageSlotWidth,
		DrainageHeight:  config.DrainageSlotHeight,

		CaissonDiameter: config.CaissonDiameter,
		CaissonDepth:    config.CaissonDepth,

		SpreadLength: config.SpreadLength,
		SpreadWidth:  config.SpreadWidth,
		SpreadDepth:  config.SpreadDepth,

		ContinuousWidth: config.ContinuousWidth,
		ContinuousDepth: config.ContinuousDepth,

		MSEHeight: config.MSEBodyHeight,
	}
}
