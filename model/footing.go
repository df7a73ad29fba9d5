// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/levipl123-crypto/gdot-soundwall/config"

// Footing is the foundation beneath a single post
type Footing struct {
	PostIndex      int
	FoundationType config.FoundationType
	Station        float64
	E              float64
	N              float64
	TopElevation   float64
	Bearing        float64

	Width    float64 // spread/continuous only
	Length   float64 // spread/continuous only
	Depth    float64
	Diameter float64 // caisson only
}

// BottomElevation is TopElevation - Depth
func (f Footing) BottomElevation() float64 {
	return f.TopElevation - f.Depth
}

// NewCaissonFooting builds a drilled-shaft footing with the GDOT default
// diameter and depth
func NewCaissonFooting(postIndex int, station, e, n, topElevation, bearing float64) Footing {
	return Footing{
		PostIndex:      postIndex,
		FoundationType: config.Caisson,
		Station:        station,
		E:              e,
		N:              n,
		TopElevation:   topElevation,
		Bearing:        bearing,
		Diameter:       config.CaissonDiameter,
		Depth:          config.CaissonDepth,
	}
}

// NewSpreadFooting builds a pad footing with the GDOT default dimensions
func NewSpreadFooting(postIndex int, station, e, n, topElevation, bearing float64) Footing {
	return Footing{
		PostIndex:      postIndex,
		FoundationType: config.SpreadFooting,
		Station:        station,
		E:              e,
		N:              n,
		TopElevation:   topElevation,
		Bearing:        bearing,
		Width:          config.SpreadWidth,
		Length:         config.SpreadLength,
		Depth:          config.SpreadDepth,
	}
}

// NewContinuousFooting builds a strip footing under a post; length is the
// strip length along the wall, supplied by the caller (the layout engine
// passes one nominal bay length, its maximum post spacing)
func NewContinuousFooting(postIndex int, station, e, n, topElevation, bearing, length float64) Footing {
	return Footing{
		PostIndex:      postIndex,
		FoundationType: config.ContinuousFooting,
		Station:        station,
		E:              e,
		N:              n,
		TopElevation:   topElevation,
		Bearing:        bearing,
		Width:          config.ContinuousWidth,
		Length:         length,
		Depth:          config.ContinuousDepth,
	}
}
