// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solve combines the horizontal alignment and vertical profile into
// a single station+offset -> 3D point resolver, and samples ground
// elevation from a TIN with profile fallback.
package solve

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/levipl123-crypto/gdot-soundwall/align"
	"github.com/levipl123-crypto/gdot-soundwall/geom"
	"github.com/levipl123-crypto/gdot-soundwall/profile"
)

// StationPoint is a resolved 3D point at a station along the alignment
type StationPoint struct {
	Station   float64
	E         float64
	N         float64
	Elevation float64
	Bearing   float64
}

// offsetEps is the threshold below which an offset is treated as zero, per
// spec.md §4.E
const offsetEps = 1e-6

// StationSolver resolves (station, offset) to (E, N, elevation, bearing)
type StationSolver struct {
	Alignment *align.HorizontalAlignment
	Profile   *profile.VerticalProfile
}

// NewStationSolver builds a StationSolver; vprofile may be nil
func NewStationSolver(alignment *align.HorizontalAlignment, vprofile *profile.VerticalProfile) *StationSolver {
	return &StationSolver{Alignment: alignment, Profile: vprofile}
}

// Solve resolves station and offset to a StationPoint, per spec.md §4.E
func (s *StationSolver) Solve(station, offset float64) StationPoint {
	e, n, bearing := s.Alignment.PointAtStation(station)

	if math.Abs(offset) > offsetEps {
		e, n = geom.OffsetPoint(e, n, bearing, offset)
	}

	var elevation float64
	if s.Profile != nil && len(s.Profile.PVIs) > 0 {
		elevation = s.Profile.ElevationAtStation(station)
	}

	return StationPoint{Station: station, E: e, N: n, Elevation: elevation, Bearing: bearing}
}

// SolveRange samples stations at regular intervals from s0 to s1 inclusive,
// per spec.md §4.E. Station values themselves come from gosl/utl.LinSpace,
// the same evenly-spaced-samples helper the teacher uses throughout
// (ana/pressurised_cylinder.go, mreten/plot.go).
func (s *StationSolver) SolveRange(s0, s1, delta, offset float64) []StationPoint {
	if s1 <= s0 || delta <= 0 {
		return []StationPoint{s.Solve(s0, offset)}
	}

	n := int(math.Ceil((s1-s0)/delta)) + 1
	stations := utl.LinSpace(s0, s1, n)

	points := make([]StationPoint, len(stations))
	for i, sta := range stations {
		points[i] = s.Solve(sta, offset)
	}
	return points
}
