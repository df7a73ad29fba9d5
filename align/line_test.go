// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_line01(tst *testing.T) {
	seg := NewLineSegment(Endpoints{
		StartStation: 0, EndStation: 100,
		StartE: 1000, StartN: 2000,
		EndE: 1000, EndN: 2100,
	}, 0)

	// bearing should default to due north from the chord
	chk.AnaNum(tst, "line bearing", 1e-12, 0, seg.Bearing, chk.Verbose)

	e, n, bearing := seg.PointAtStation(50)
	chk.AnaNum(tst, "line e@50", 1e-9, 1000, e, chk.Verbose)
	chk.AnaNum(tst, "line n@50", 1e-9, 2050, n, chk.Verbose)
	chk.AnaNum(tst, "line bearing@50", 1e-12, 0, bearing, chk.Verbose)
}

func Test_alignment01(tst *testing.T) {
	a := &HorizontalAlignment{
		Segments: []Segment{
			NewLineSegment(Endpoints{
				StartStation: 0, EndStation: 50,
				StartE: 0, StartN: 0,
				EndE: 0, EndN: 50,
			}, 0),
			NewLineSegment(Endpoints{
				StartStation: 50, EndStation: 100,
				StartE: 0, StartN: 50,
				EndE: 50, EndN: 50,
			}, 0),
		},
	}

	chk.AnaNum(tst, "alignment start", 1e-12, 0, a.StartStation(), chk.Verbose)
	chk.AnaNum(tst, "alignment end", 1e-12, 100, a.EndStation(), chk.Verbose)
	chk.AnaNum(tst, "alignment length", 1e-12, 100, a.TotalLength(), chk.Verbose)

	// query past the end clamps to the last segment's end point
	e, n, _ := a.PointAtStation(150)
	chk.AnaNum(tst, "clamped e", 1e-9, 50, e, chk.Verbose)
	chk.AnaNum(tst, "clamped n", 1e-9, 50, n, chk.Verbose)

	// query before the start clamps to the first segment's start point
	e, n, _ = a.PointAtStation(-10)
	chk.AnaNum(tst, "pre-start e", 1e-9, 0, e, chk.Verbose)
	chk.AnaNum(tst, "pre-start n", 1e-9, 0, n, chk.Verbose)
}
