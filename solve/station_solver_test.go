// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/levipl123-crypto/gdot-soundwall/align"
	"github.com/levipl123-crypto/gdot-soundwall/profile"
	"github.com/levipl123-crypto/gdot-soundwall/surface"
)

func straightAlignment() *align.HorizontalAlignment {
	return &align.HorizontalAlignment{
		Segments: []align.Segment{
			align.NewLineSegment(align.Endpoints{
				StartStation: 0, EndStation: 100,
				StartE: 1000, StartN: 2000,
				EndE: 1000, EndN: 2100,
			}, 0),
		},
	}
}

func Test_solve01(tst *testing.T) {
	a := straightAlignment()
	v := &profile.VerticalProfile{
		PVIs: []profile.PVI{
			{Station: 0, Elevation: 100.0},
			{Station: 100, Elevation: 105.0},
		},
	}
	solver := NewStationSolver(a, v)

	pt := solver.Solve(50, 2.0)
	// offset 2m to the right (east) of a due-north line
	chk.AnaNum(tst, "offset e", 1e-9, 1002, pt.E, chk.Verbose)
	chk.AnaNum(tst, "offset n", 1e-9, 2050, pt.N, chk.Verbose)
	chk.AnaNum(tst, "profile elev", 1e-9, 102.5, pt.Elevation, chk.Verbose)
}

func Test_solve_range01(tst *testing.T) {
	a := straightAlignment()
	solver := NewStationSolver(a, nil)

	pts := solver.SolveRange(0, 100, 25, 0)
	if len(pts) != 5 {
		tst.Errorf("expected 5 sample points, got %d", len(pts))
	}
	chk.AnaNum(tst, "last sample station", 1e-9, 100, pts[len(pts)-1].Station, chk.Verbose)
}

func Test_terrain_sampler01(tst *testing.T) {
	a := straightAlignment()
	tin := &surface.TerrainSurface{
		Vertices: []surface.Vertex{
			{E: 990, N: 1990, Z: 50.0},
			{E: 1010, N: 1990, Z: 50.0},
			{E: 1000, N: 2110, Z: 55.0},
		},
		Triangles: [][3]int{{0, 1, 2}},
	}
	v := &profile.VerticalProfile{
		PVIs: []profile.PVI{
			{Station: 0, Elevation: 999.0},
			{Station: 100, Elevation: 999.0},
		},
	}
	solver := NewStationSolver(a, v)
	sampler := NewTerrainSampler(tin)

	elev := sampler.SampleAtStation(solver, 50, 0)
	// should hit the TIN, not fall back to the (deliberately wrong) profile
	if elev == 999.0 {
		tst.Errorf("expected TIN elevation, got profile fallback")
	}

	// a nil-surface sampler always falls back
	fallback := NewTerrainSampler(nil)
	elev = fallback.SampleAtStation(solver, 50, 0)
	chk.AnaNum(tst, "fallback elevation", 1e-9, 999.0, elev, chk.Verbose)
}
