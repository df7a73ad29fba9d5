// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/levipl123-crypto/gdot-soundwall/config"

// Cap is the cap/coping element spanning a bay above its panel stack
type Cap struct {
	BayIndex        int
	StationStart    float64
	StationEnd      float64
	E               float64
	N               float64
	BottomElevation float64
	Bearing         float64
	Width           float64 // along wall direction (bay span)
	Depth           float64
	Height          float64
}

// NewCap builds a Cap with the standard depth (panel thickness + 2*overhang)
// and height from config
func NewCap(bayIndex int, stationStart, stationEnd, e, n, bottomElevation, bearing, width float64) Cap {
	return Cap{
		BayIndex:        bayIndex,
		StationStart:    stationStart,
		StationEnd:      stationEnd,
		E:               e,
		N:               n,
		BottomElevation: bottomElevation,
		Bearing:         bearing,
		Width:           width,
		Depth:           config.PanelThickness + 2*config.CapOverhang,
		Height:          config.CapHeight,
	}
}

// TopElevation is BottomElevation + Height
func (c Cap) TopElevation() float64 {
	return c.BottomElevation + c.Height
}
