// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"math"

	"github.com/levipl123-crypto/gdot-soundwall/geom"
)

// spiralStepMax is the maximum trapezoidal integration step (meters) used
// to approximate the Euler clothoid position, per spec.md §4.B
const spiralStepMax = 0.5

// SpiralSegment is an Euler spiral (clothoid) transition: curvature varies
// linearly with arclength between StartRadius and EndRadius (either may be
// +Inf for a tangent end)
type SpiralSegment struct {
	Endpoints
	StartRadius  float64 // may be math.Inf(1)
	EndRadius    float64 // may be math.Inf(1)
	StartBearing float64
	IsClockwise  bool
}

// NewSpiralSegment builds a SpiralSegment
func NewSpiralSegment(ep Endpoints, startRadius, endRadius, startBearing float64, clockwise bool) *SpiralSegment {
	return &SpiralSegment{
		Endpoints:    ep,
		StartRadius:  startRadius,
		EndRadius:    endRadius,
		StartBearing: startBearing,
		IsClockwise:  clockwise,
	}
}

func curvature(radius float64) float64 {
	if math.IsInf(radius, 1) || math.IsInf(radius, -1) {
		return 0.0
	}
	return 1.0 / radius
}

// PointAtStation implements Segment, integrating curvature numerically with
// trapezoidal sub-steps of at most spiralStepMax meters, per spec.md §4.B.
// The returned bearing uses the average-curvature closed-form approximation
// rather than the integrated one, matching the original implementation.
func (s *SpiralSegment) PointAtStation(station float64) (e, n, bearing float64) {
	dist := station - s.StartStation
	length := s.Length()

	var t float64
	if length > 0 {
		t = dist / length
	}

	kStart := curvature(s.StartRadius)
	kEnd := curvature(s.EndRadius)
	k := kStart + t*(kEnd-kStart)

	avgK := (kStart + k) / 2.0
	deltaBearing := avgK * dist
	if !s.IsClockwise {
		deltaBearing = -deltaBearing
	}
	bearing = geom.NormalizeAngle(s.StartBearing + deltaBearing)

	nSteps := int(math.Ceil(dist / spiralStepMax))
	if nSteps < 10 {
		nSteps = 10
	}
	step := dist / float64(nSteps)

	e, n = s.StartE, s.StartN
	b := s.StartBearing
	sign := 1.0
	if !s.IsClockwise {
		sign = -1.0
	}
	for i := 0; i < nSteps; i++ {
		sMid := (float64(i) + 0.5) * step
		var frac float64
		if length > 0 {
			frac = sMid / length
		}
		ki := kStart + frac*(kEnd-kStart)
		db := ki * step * sign
		bMid := b + db/2.0
		e += step * math.Sin(bMid)
		n += step * math.Cos(bMid)
		b += db
	}

	return e, n, bearing
}

// Bounds implements Segment
func (s *SpiralSegment) Bounds() (float64, float64) {
	return s.StartStation, s.EndStation
}
