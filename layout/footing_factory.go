// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/levipl123-crypto/gdot-soundwall/config"
	"github.com/levipl123-crypto/gdot-soundwall/model"
)

// footingMaker builds a Footing under a post at the given station/position,
// using the dimensions carried in Parameters. Grounded on the teacher's
// model-by-key allocator pattern (msolid/rod.go's rodallocators map keyed by
// model name; mreten's retention-model lookup) — here keyed by
// config.FoundationType instead of a string, since the set is fixed.
type footingMaker func(p Parameters, postIndex int, station, e, n, topElevation, bearing float64) model.Footing

var footingMakers = map[config.FoundationType]footingMaker{
	config.Caisson: func(p Parameters, postIndex int, station, e, n, topElevation, bearing float64) model.Footing {
		f := model.NewCaissonFooting(postIndex, station, e, n, topElevation, bearing)
		f.Diameter = p.CaissonDiameter
		f.Depth = p.CaissonDepth
		return f
	},
	config.SpreadFooting: func(p Parameters, postIndex int, station, e, n, topElevation, bearing float64) model.Footing {
		f := model.NewSpreadFooting(postIndex, station, e, n, topElevation, bearing)
		f.Width = p.SpreadWidth
		f.Length = p.SpreadLength
		f.Depth = p.SpreadDepth
		return f
	},
	config.ContinuousFooting: func(p Parameters, postIndex int, station, e, n, topElevation, bearing float64) model.Footing {
		f := model.NewContinuousFooting(postIndex, station, e, n, topElevation, bearing, p.PostSpacingMax)
		f.Width = p.ContinuousWidth
		f.Depth = p.ContinuousDepth
		return f
	},
}

// makeFooting dispatches to the footingMaker registered for
// p.FoundationType; unrecognized types fall back to caisson, a safe default
// rather than a panic, since foundation type is caller-controlled
// configuration, not alignment data.
func makeFooting(p Parameters, postIndex int, station, e, n, topElevation, bearing float64) model.Footing {
	maker, ok := footingMakers[p.FoundationType]
	if !ok {
		maker = footingMakers[config.Caisson]
	}
	return maker(p, postIndex, station, e, n, topElevation, bearing)
}
