// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/levipl123-crypto/gdot-soundwall/config"

// noIndex marks an absent weak reference in a Bay (no footing on that side,
// or a footing array shorter than the post array)
const noIndex = -1

// Bay is the span between two adjacent posts. It holds only indices into
// its owning WallLayout's Posts/Footings arrays — never owning pointers or
// copies — so a Bay is a view, not a second owner, mirroring how the
// teacher's FEM elements reference shared mesh nodes by ID rather than by
// independent allocation (fem/element.go's Elem interface operates on
// indices into a shared Domain, never a private copy of node data).
type Bay struct {
	Index            int
	PostLeftIndex    int
	PostRightIndex   int
	FootingLeftIndex int // noIndex if absent
	FootingRightIndex int // noIndex if absent

	Panels        []PrecastPanel
	Cap           *Cap
	Joints        []Joint
	DrainageSlots []DrainageSlot
}

// NewBay builds an empty Bay referencing the given post indices; footing
// indices default to absent
func NewBay(index, postLeftIndex, postRightIndex int) Bay {
	return Bay{
		Index:             index,
		PostLeftIndex:     postLeftIndex,
		PostRightIndex:    postRightIndex,
		FootingLeftIndex:  noIndex,
		FootingRightIndex: noIndex,
	}
}

// WallLayout is the complete computed layout for a sound wall. It
// exclusively owns its posts, panels, footings, caps, joints, drainage
// slots, bays and MSE segments: every other reference into these
// collections (e.g. a Bay's post/footing indices) is a weak, non-owning
// reference resolved through the accessor methods below.
type WallLayout struct {
	WallType       config.WallType
	StartStation   float64
	EndStation     float64
	WallHeight     float64
	FoundationType config.FoundationType

	Posts         []SteelPost
	Panels        []PrecastPanel
	Footings      []Footing
	Caps          []Cap
	Joints        []Joint
	DrainageSlots []DrainageSlot
	Bays          []Bay
	MSESegments   []MSESegment
}

// NumBays is len(Bays)
func (w *WallLayout) NumBays() int {
	return len(w.Bays)
}

// TotalLength is EndStation - StartStation
func (w *WallLayout) TotalLength() float64 {
	return w.EndStation - w.StartStation
}

// Post resolves a Bay's weak post reference; ok is false for an out-of-range
// index
func (w *WallLayout) Post(index int) (SteelPost, bool) {
	if index < 0 || index >= len(w.Posts) {
		return SteelPost{}, false
	}
	return w.Posts[index], true
}

// Footing resolves a Bay's weak footing reference; ok is false if the index
// is absent (noIndex) or out of range
func (w *WallLayout) Footing(index int) (Footing, bool) {
	if index < 0 || index >= len(w.Footings) {
		return Footing{}, false
	}
	return w.Footings[index], true
}
