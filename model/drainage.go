// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/levipl123-crypto/gdot-soundwall/config"

// DrainageSlot is a drainage slot cut through a bay's bottom panel
type DrainageSlot struct {
	PanelBayIndex int
	Station       float64
	E             float64
	N             float64
	Elevation     float64 // center of slot elevation
	Width         float64
	Height        float64
}

// NewDrainageSlot builds a DrainageSlot with the standard width/height
func NewDrainageSlot(panelBayIndex int, station, e, n, elevation float64) DrainageSlot {
	return DrainageSlot{
		PanelBayIndex: panelBayIndex,
		Station:       station,
		E:             e,
		N:             n,
		Elevation:     elevation,
		Width:         config.DrainageSlotWidth,
		Height:        config.DrainageSlotHeight,
	}
}
