// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package model holds the layout entities produced by the layout engine:
// Post, Panel, Footing, Cap, Joint, DrainageSlot, Bay, MSESegment and the
// owning WallLayout. All values are immutable once the engine returns them.
package model

import "github.com/levipl123-crypto/gdot-soundwall/config"

// SteelPost is a single steel H-post in the sound wall
type SteelPost struct {
	Index            int
	Station          float64
	E                float64
	N                float64
	GroundElevation  float64
	TopElevation     float64
	Bearing          float64
	Height           float64

	Section          string
	FlangeWidth      float64
	Depth            float64
	WebThickness     float64
	FlangeThickness  float64
}

// NewSteelPost builds a SteelPost with the standard W6x20 section
// dimensions from config
func NewSteelPost(index int, station, e, n, groundElevation, topElevation, bearing, height float64) SteelPost {
	return SteelPost{
		Index:           index,
		Station:         station,
		E:               e,
		N:               n,
		GroundElevation: groundElevation,
		TopElevation:    topElevation,
		Bearing:         bearing,
		Height:          height,
		Section:         config.PostSection,
		FlangeWidth:     config.PostFlangeWidth,
		Depth:           config.PostDepth,
		WebThickness:    config.PostWebThickness,
		FlangeThickness: config.PostFlangeThickness,
	}
}

// TotalLength is the post's total length including embedment in the footing
func (p SteelPost) TotalLength() float64 {
	return p.Height + config.PostEmbedFromBottom
}

// BottomElevation is the bottom of the post, within the footing
func (p SteelPost) BottomElevation() float64 {
	return p.GroundElevation - config.PostEmbedFromBottom
}
