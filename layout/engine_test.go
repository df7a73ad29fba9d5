// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/levipl123-crypto/gdot-soundwall/align"
	"github.com/levipl123-crypto/gdot-soundwall/config"
	"github.com/levipl123-crypto/gdot-soundwall/profile"
)

func flatAlignment(length float64) *align.HorizontalAlignment {
	return &align.HorizontalAlignment{
		Segments: []align.Segment{
			align.NewLineSegment(align.Endpoints{
				StartStation: 0, EndStation: length,
				StartE: 0, StartN: 0,
				EndE: 0, EndN: length,
			}, 0),
		},
	}
}

func flatProfile(length, elevation float64) *profile.VerticalProfile {
	return &profile.VerticalProfile{
		PVIs: []profile.PVI{
			{Station: 0, Elevation: elevation},
			{Station: length, Elevation: elevation},
		},
	}
}

func Test_engine_precast01(tst *testing.T) {
	a := flatAlignment(100)
	v := flatProfile(100, 100.0)
	engine := NewEngine(a, v, nil, DefaultParameters())

	out, err := engine.Compute()
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
	}

	// 100m / 3.048m max spacing -> 33 bays, 34 posts
	chk.AnaNum(tst, "num bays", 1e-12, 33, float64(out.NumBays()), chk.Verbose)
	if len(out.Posts) != out.NumBays()+1 {
		tst.Errorf("expected posts = bays+1, got %d posts, %d bays", len(out.Posts), out.NumBays())
	}
	if len(out.Footings) != len(out.Posts) {
		tst.Errorf("expected one footing per post")
	}
	if len(out.Panels) == 0 {
		tst.Errorf("expected at least one panel")
	}
	if len(out.Caps) != out.NumBays() {
		tst.Errorf("expected one cap per bay")
	}

	// every post should be on the flat ground/top elevation
	for _, p := range out.Posts {
		chk.AnaNum(tst, "post ground elev", 1e-6, 100.0, p.GroundElevation, chk.Verbose)
		chk.AnaNum(tst, "post top elev", 1e-6, 100.0+config.DefaultWallHeight, p.TopElevation, chk.Verbose)
	}
}

func Test_engine_mse01(tst *testing.T) {
	a := flatAlignment(150)
	v := flatProfile(150, 100.0)
	params := DefaultParameters()
	params.WallType = config.MSEComposite

	engine := NewEngine(a, v, nil, params)
	out, err := engine.Compute()
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
	}
	if len(out.MSESegments) == 0 {
		tst.Errorf("expected at least one MSE segment")
	}
	if len(out.Posts) == 0 {
		tst.Errorf("expected the noise barrier posts to still be laid out")
	}
}

func Test_engine_errors01(tst *testing.T) {
	a := flatAlignment(100)
	params := DefaultParameters()
	reversedStart := 50.0
	params.StartStation = &reversedStart
	reversedEnd := 0.0
	params.EndStation = &reversedEnd

	engine := NewEngine(a, nil, nil, params)
	if _, err := engine.Compute(); err == nil {
		tst.Errorf("expected an error for a reversed station range")
	}

	empty := 50.0
	params2 := DefaultParameters()
	params2.StartStation = &empty
	params2.EndStation = &empty
	engine2 := NewEngine(a, nil, nil, params2)
	if _, err := engine2.Compute(); err == nil {
		tst.Errorf("expected an error for an empty station range")
	}
}

func Test_footing_factory01(tst *testing.T) {
	p := DefaultParameters()
	p.FoundationType = config.SpreadFooting
	f := makeFooting(p, 0, 0, 0, 0, 100, 0)
	if f.FoundationType != config.SpreadFooting {
		tst.Errorf("expected spread footing, got %v", f.FoundationType)
	}

	p.FoundationType = config.FoundationType(99) // unknown -> caisson fallback
	f = makeFooting(p, 0, 0, 0, 0, 100, 0)
	if f.FoundationType != config.Caisson {
		tst.Errorf("expected caisson fallback, got %v", f.FoundationType)
	}
}
