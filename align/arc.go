// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"math"

	"github.com/levipl123-crypto/gdot-soundwall/geom"
)

// ArcSegment is a circular arc segment, right-turning (clockwise) unless
// IsClockwise is false
type ArcSegment struct {
	Endpoints
	Radius       float64
	CenterE      float64
	CenterN      float64
	IsClockwise  bool
	StartBearing float64
	EndBearing   float64
}

// NewArcSegment builds an ArcSegment
func NewArcSegment(ep Endpoints, radius, centerE, centerN float64, clockwise bool, startBearing, endBearing float64) *ArcSegment {
	return &ArcSegment{
		Endpoints:    ep,
		Radius:       radius,
		CenterE:      centerE,
		CenterN:      centerN,
		IsClockwise:  clockwise,
		StartBearing: startBearing,
		EndBearing:   endBearing,
	}
}

// DeltaAngle is the central angle subtended by the arc
func (s *ArcSegment) DeltaAngle() float64 {
	if math.Abs(s.Radius) < 1e-10 {
		return 0.0
	}
	return s.Length() / s.Radius
}

// PointAtStation implements Segment.
//
// The start radial azimuth is always derived from the center/start
// geometry, never from the stored StartBearing field — if a caller
// populates StartBearing inconsistently with the center/start geometry
// (a data error), that mismatch is silently ignored here, per spec.md §9.
func (s *ArcSegment) PointAtStation(station float64) (e, n, bearing float64) {
	dist := station - s.StartStation
	angleTraveled := dist / s.Radius

	startRadial := math.Atan2(s.StartE-s.CenterE, s.StartN-s.CenterN)

	var radial float64
	if s.IsClockwise {
		radial = startRadial + angleTraveled
		bearing = geom.NormalizeAngle(radial + math.Pi/2)
	} else {
		radial = startRadial - angleTraveled
		bearing = geom.NormalizeAngle(radial - math.Pi/2)
	}

	e = s.CenterE + s.Radius*math.Sin(radial)
	n = s.CenterN + s.Radius*math.Cos(radial)
	return e, n, bearing
}

// Bounds implements Segment
func (s *ArcSegment) Bounds() (float64, float64) {
	return s.StartStation, s.EndStation
}
