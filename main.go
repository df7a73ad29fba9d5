// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// command soundwall-demo builds a tiny hard-coded straight alignment and
// prints a summary of the computed layout. It exists only as a manual smoke
// check for the layout engine; LandXML ingestion, IFC emission and drawing
// export are separate, external collaborators not implemented here.
package main

import (
	"github.com/cpmech/gosl/io"

	"github.com/levipl123-crypto/gdot-soundwall/align"
	"github.com/levipl123-crypto/gdot-soundwall/layout"
	"github.com/levipl123-crypto/gdot-soundwall/profile"
)

func main() {
	io.Pfwhite("\nGDOT Sound Wall -- Layout Engine demo\n\n")

	alignment := &align.HorizontalAlignment{
		Name: "demo-100m-tangent",
		Segments: []align.Segment{
			align.NewLineSegment(align.Endpoints{
				StartStation: 0, EndStation: 100,
				StartE: 1000, StartN: 2000,
				EndE: 1000, EndN: 2100,
			}, 0),
		},
	}

	vprofile := &profile.VerticalProfile{
		Name: "demo-flat-100",
		PVIs: []profile.PVI{
			{Station: 0, Elevation: 100.0},
			{Station: 100, Elevation: 100.0},
		},
	}

	params := layout.DefaultParameters()
	engine := layout.NewEngine(alignment, vprofile, nil, params)

	result, err := engine.Compute()
	if err != nil {
		io.Pfred("ERROR: %v\n", err)
		return
	}

	io.Pfcyan("wall type       = %v\n", result.WallType)
	io.Pfcyan("station range   = [%.3f, %.3f]\n", result.StartStation, result.EndStation)
	io.Pfcyan("posts           = %d\n", len(result.Posts))
	io.Pfcyan("bays            = %d\n", result.NumBays())
	io.Pfcyan("panels          = %d\n", len(result.Panels))
	io.Pfcyan("caps            = %d\n", len(result.Caps))
	io.Pfcyan("footings        = %d\n", len(result.Footings))
	io.Pfcyan("joints          = %d\n", len(result.Joints))
	io.Pfcyan("drainage slots  = %d\n", len(result.DrainageSlots))
}
