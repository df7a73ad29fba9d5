// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/levipl123-crypto/gdot-soundwall/config"

// PrecastPanel is a single precast PAAC panel stacked within a bay
type PrecastPanel struct {
	BayIndex        int
	StackIndex      int // vertical position, 0 = bottom
	StationStart    float64
	StationEnd      float64
	E               float64
	N               float64
	BottomElevation float64
	Bearing         float64
	Width           float64
	Height          float64
	Thickness       float64
	HasDrainageSlot bool
}

// NewPrecastPanel builds a PrecastPanel with the standard panel height and
// thickness from config
func NewPrecastPanel(bayIndex, stackIndex int, stationStart, stationEnd, e, n, bottomElevation, bearing, width float64, hasDrainageSlot bool) PrecastPanel {
	return PrecastPanel{
		BayIndex:        bayIndex,
		StackIndex:      stackIndex,
		StationStart:    stationStart,
		StationEnd:      stationEnd,
		E:               e,
		N:               n,
		BottomElevation: bottomElevation,
		Bearing:         bearing,
		Width:           width,
		Height:          config.PanelHeight,
		Thickness:       config.PanelThickness,
		HasDrainageSlot: hasDrainageSlot,
	}
}

// TopElevation is BottomElevation + Height
func (p PrecastPanel) TopElevation() float64 {
	return p.BottomElevation + p.Height
}

// CenterElevation is the vertical midpoint of the panel
func (p PrecastPanel) CenterElevation() float64 {
	return p.BottomElevation + p.Height/2.0
}
