// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"

	"github.com/levipl123-crypto/gdot-soundwall/config"
	"github.com/levipl123-crypto/gdot-soundwall/geom"
	"github.com/levipl123-crypto/gdot-soundwall/model"
)

// computePrecast implements the post-and-panel precast algorithm of
// spec.md §4.G.1: posts at uniform spacing, one footing per post, bays of
// stacked panels and a cap between consecutive posts, then expansion and
// contraction joints walked in station order.
func (e *Engine) computePrecast(out *model.WallLayout) {
	stations := e.postStations()

	// Step 2: posts
	for i, station := range stations {
		point := e.solver.Solve(station, e.Params.Offset)
		groundElev := e.groundElevationAt(station)
		post := model.NewSteelPost(i, station, point.E, point.N, groundElev, groundElev+e.Params.WallHeight, point.Bearing, e.Params.WallHeight)
		out.Posts = append(out.Posts, post)
	}

	// Step 3: footings, one per post
	for _, post := range out.Posts {
		footing := makeFooting(e.Params, post.Index, post.Station, post.E, post.N, post.GroundElevation, post.Bearing)
		out.Footings = append(out.Footings, footing)
	}

	// Step 4: bays
	for i := 0; i < len(out.Posts)-1; i++ {
		bay := e.makeBay(i, out.Posts[i], out.Posts[i+1], out)
		out.Bays = append(out.Bays, bay)
	}

	// Step 5: joints
	e.computeJoints(out)

	// Step 6: flatten panels, caps and drainage slots from bays
	for _, bay := range out.Bays {
		out.Panels = append(out.Panels, bay.Panels...)
		if bay.Cap != nil {
			out.Caps = append(out.Caps, *bay.Cap)
		}
		out.DrainageSlots = append(out.DrainageSlots, bay.DrainageSlots...)
	}
}

// makeBay builds the Bay between two adjacent posts: a stack of panels from
// ground to (top - cap height), a cap above the stack, a drainage slot on
// the bottom panel when the asymmetric spacing predicate fires, and the
// bordering footing indices.
func (e *Engine) makeBay(index int, left, right model.SteelPost, out *model.WallLayout) model.Bay {
	bay := model.NewBay(index, left.Index, right.Index)

	midE := (left.E + right.E) / 2.0
	midN := (left.N + right.N) / 2.0
	width := geom.Distance2D(left.E, left.N, right.E, right.N)

	groundElev := math.Min(left.GroundElevation, right.GroundElevation)
	topElev := math.Max(left.TopElevation, right.TopElevation)
	wallH := topElev - groundElev - e.Params.CapHeight

	numPanels := int(math.Ceil(wallH / e.Params.PanelHeight))
	if numPanels < 1 {
		numPanels = 1
	}

	bearing := left.Bearing
	bayStation := (left.Station + right.Station) / 2.0

	for s := 0; s < numPanels; s++ {
		bottomElev := groundElev + float64(s)*e.Params.PanelHeight

		// Drainage slot predicate is intentionally asymmetric: intent is
		// "roughly every drainage_spacing along the wall", but the modulo
		// test below can place a slot in several consecutive bays, or
		// none, near a spacing boundary. Preserved exactly per spec.md §9
		// — do not "fix" this.
		hasDrainage := false
		if s == 0 {
			distFromStart := bayStation - e.startStation
			if math.Mod(distFromStart, e.Params.DrainageSpacing) < e.Params.PostSpacingMax {
				hasDrainage = true
			}
		}

		panel := model.NewPrecastPanel(index, s, left.Station, right.Station, midE, midN, bottomElev, bearing, width, hasDrainage)
		panel.Height = e.Params.PanelHeight
		panel.Thickness = e.Params.PanelThickness
		bay.Panels = append(bay.Panels, panel)

		if hasDrainage {
			slot := model.NewDrainageSlot(index, bayStation, midE, midN, bottomElev+e.Params.DrainageHeight/2.0)
			slot.Width = e.Params.DrainageWidth
			slot.Height = e.Params.DrainageHeight
			bay.DrainageSlots = append(bay.DrainageSlots, slot)
		}
	}

	capBottom := groundElev + float64(numPanels)*e.Params.PanelHeight
	cap := model.NewCap(index, left.Station, right.Station, midE, midN, capBottom, bearing, width)
	cap.Height = e.Params.CapHeight
	cap.Depth = e.Params.PanelThickness + 2*e.Params.CapOverhang
	bay.Cap = &cap

	if len(out.Footings) > 0 {
		bay.FootingLeftIndex = left.Index
		if right.Index < len(out.Footings) {
			bay.FootingRightIndex = right.Index
		}
	}

	return bay
}

// computeJoints walks bays in station order accumulating distance since the
// last expansion and contraction joint, per spec.md §4.G.1 step 5. An
// expansion joint resets both counters; a contraction joint resets only its
// own.
func (e *Engine) computeJoints(out *model.WallLayout) {
	distSinceExpansion := 0.0
	distSinceContraction := 0.0

	for i := 0; i < len(out.Posts)-1; i++ {
		left := out.Posts[i]
		right := out.Posts[i+1]
		bayLength := right.Station - left.Station

		distSinceExpansion += bayLength
		distSinceContraction += bayLength

		switch {
		case distSinceExpansion >= e.Params.ExpansionJointSpacing:
			joint := model.NewJoint(config.Expansion, right.Station, right.E, right.N, right.GroundElevation, right.TopElevation, right.Bearing, i)
			joint.GapWidth = e.Params.ExpansionJointGap
			out.Joints = append(out.Joints, joint)
			if i < len(out.Bays) {
				out.Bays[i].Joints = append(out.Bays[i].Joints, joint)
			}
			distSinceExpansion = 0.0
			distSinceContraction = 0.0

		case distSinceContraction >= e.Params.ContractionJointSpacing:
			joint := model.NewJoint(config.Contraction, right.Station, right.E, right.N, right.GroundElevation, right.TopElevation, right.Bearing, i)
			out.Joints = append(out.Joints, joint)
			if i < len(out.Bays) {
				out.Bays[i].Joints = append(out.Bays[i].Joints, joint)
			}
			distSinceContraction = 0.0
		}
	}
}
