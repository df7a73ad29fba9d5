// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/levipl123-crypto/gdot-soundwall/config"

// Joint is an expansion or contraction joint in the sound wall
type Joint struct {
	JointType       config.JointType
	Station         float64
	E               float64
	N               float64
	GroundElevation float64
	TopElevation    float64
	Bearing         float64
	BayIndex        int
	GapWidth        float64
}

// NewJoint builds a Joint; Expansion joints carry the standard preformed-
// filler gap width, Contraction joints a zero gap (sealant, no gap)
func NewJoint(jointType config.JointType, station, e, n, groundElevation, topElevation, bearing float64, bayIndex int) Joint {
	gap := 0.0
	if jointType == config.Expansion {
		gap = config.ExpansionJointGap
	}
	return Joint{
		JointType:       jointType,
		Station:         station,
		E:               e,
		N:               n,
		GroundElevation: groundElevation,
		TopElevation:    topElevation,
		Bearing:         bearing,
		BayIndex:        bayIndex,
		GapWidth:        gap,
	}
}

// Height is TopElevation - GroundElevation
func (j Joint) Height() float64 {
	return j.TopElevation - j.GroundElevation
}

// FillerMaterial names the joint filler used for this joint type
func (j Joint) FillerMaterial() string {
	if j.JointType == config.Expansion {
		return "Preformed Joint Filler"
	}
	return "Sealant"
}
