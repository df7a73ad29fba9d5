// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"math"

	"github.com/levipl123-crypto/gdot-soundwall/geom"
)

// LineSegment is a tangent (straight) segment
type LineSegment struct {
	Endpoints
	Bearing float64 // azimuth, radians, CW from +N
}

// NewLineSegment builds a LineSegment; if bearing is 0 it is derived from
// the endpoints (matching the original's "bearing defaults to azimuth of
// the chord when not given" behavior)
func NewLineSegment(ep Endpoints, bearing float64) *LineSegment {
	if bearing == 0.0 {
		bearing = geom.AzimuthFromPoints(ep.StartE, ep.StartN, ep.EndE, ep.EndN)
	}
	return &LineSegment{Endpoints: ep, Bearing: bearing}
}

// PointAtStation implements Segment
func (s *LineSegment) PointAtStation(station float64) (e, n, bearing float64) {
	dist := station - s.StartStation
	e = s.StartE + dist*math.Sin(s.Bearing)
	n = s.StartN + dist*math.Cos(s.Bearing)
	return e, n, s.Bearing
}

// Bounds implements Segment
func (s *LineSegment) Bounds() (float64, float64) {
	return s.StartStation, s.EndStation
}
