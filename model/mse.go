// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"

	"github.com/levipl123-crypto/gdot-soundwall/config"
)

// MSESegment is one Mechanically Stabilized Earth (MSE) wall segment: a
// reinforced-soil body with a concrete facing, a traffic barrier and coping
// on top, capped by a noise barrier (the precast posts/panels laid out
// separately over it).
type MSESegment struct {
	Index          int
	StationStart   float64
	StationEnd     float64
	EStart         float64
	NStart         float64
	EEnd           float64
	NEnd           float64
	BaseElevation  float64
	TopElevation   float64
	Bearing        float64

	WallHeight float64 // height of the MSE body itself
	TopWidth   float64
	BaseWidth  float64
	Batter     float64 // face batter, radians

	FacingThickness   float64
	FacingPanelHeight float64
	FacingPanelWidth  float64

	BarrierHeight    float64
	BarrierBaseWidth float64
	BarrierTopWidth  float64

	CopingHeight float64
	CopingWidth  float64
}

// NewMSESegment builds an MSESegment with the standard GDOT MSE body,
// facing, traffic barrier and coping dimensions
func NewMSESegment(index int, stationStart, stationEnd, eStart, nStart, eEnd, nEnd, baseElevation, topElevation, bearing float64) MSESegment {
	return MSESegment{
		Index:             index,
		StationStart:      stationStart,
		StationEnd:        stationEnd,
		EStart:            eStart,
		NStart:            nStart,
		EEnd:              eEnd,
		NEnd:              nEnd,
		BaseElevation:     baseElevation,
		TopElevation:      topElevation,
		Bearing:           bearing,
		WallHeight:        config.MSEBodyHeight,
		TopWidth:          config.MSETopWidth,
		BaseWidth:         config.MSEBaseWidth,
		FacingThickness:   config.MSEPanelThickness,
		FacingPanelHeight: config.MSEPanelHeight,
		FacingPanelWidth:  config.MSEPanelWidth,
		BarrierHeight:     config.TrafficBarrierHeight,
		BarrierBaseWidth:  config.TrafficBarrierBaseWidth,
		BarrierTopWidth:   config.TrafficBarrierTopWidth,
		CopingHeight:      config.CopingHeight,
		CopingWidth:       config.CopingWidth,
	}
}

// Length is StationEnd - StationStart
func (m MSESegment) Length() float64 {
	return m.StationEnd - m.StationStart
}

// TotalHeight is TopElevation - BaseElevation
func (m MSESegment) TotalHeight() float64 {
	return m.TopElevation - m.BaseElevation
}

// NumFacingRows is the number of stacked facing-panel rows needed to cover
// the MSE body height
func (m MSESegment) NumFacingRows() int {
	n := int(math.Ceil(m.WallHeight / m.FacingPanelHeight))
	if n < 1 {
		return 1
	}
	return n
}
