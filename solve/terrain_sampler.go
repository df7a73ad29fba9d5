// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import "github.com/levipl123-crypto/gdot-soundwall/surface"

// TerrainSampler samples ground elevation from a TIN surface, falling back
// to the vertical profile elevation when the query point falls outside the
// TIN's coverage (spec.md §4.F). A nil Surface always falls back.
type TerrainSampler struct {
	Surface *surface.TerrainSurface
}

// NewTerrainSampler builds a TerrainSampler; surf may be nil
func NewTerrainSampler(surf *surface.TerrainSurface) *TerrainSampler {
	return &TerrainSampler{Surface: surf}
}

// Sample queries the TIN directly at (e, n); ok is false if there is no
// surface or the point falls outside its coverage
func (t *TerrainSampler) Sample(e, n float64) (elevation float64, ok bool) {
	if t.Surface == nil {
		return 0, false
	}
	return t.Surface.ElevationAt(e, n)
}

// SampleAtStation resolves (station, offset) via solver, then returns the
// TIN elevation if available, else the profile elevation. Never fails: a
// TIN miss is not an error, per spec.md §4.F and §7.
func (t *TerrainSampler) SampleAtStation(solver *StationSolver, station, offset float64) float64 {
	point := solver.Solve(station, offset)

	if t.Surface != nil {
		if elev, ok := t.Surface.ElevationAt(point.E, point.N); ok {
			return elev
		}
	}

	return point.Elevation
}
