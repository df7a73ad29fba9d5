// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "math"

// StepTransition reports a height change between adjacent posts large
// enough that the panel stack count would need to change.
type StepTransition struct {
	Station          float64
	BayIndex         int
	HeightChange     float64 // positive = step up, negative = step down
	NumPanelsBefore  int
	NumPanelsAfter   int
}

// ComputeStepTransitions is the wall-on-slopes step-down helper ported from
// the original implementation's geometry/step_transitions.py. It is not
// called from Engine.Compute: computePrecast/makeBay already resolve a
// per-bay panel count from the bay's own ground/top elevations, so this
// coarser pairwise comparison never feeds the main algorithm. Preserved as
// a vestigial, informational helper per spec.md §9.
func ComputeStepTransitions(groundElevations, stations []float64, wallHeight, panelHeight float64) []StepTransition {
	if len(groundElevations) < 2 {
		return nil
	}

	var transitions []StepTransition

	for i := 1; i < len(groundElevations); i++ {
		elevPrev := groundElevations[i-1]
		elevCurr := groundElevations[i]

		nPrev := panelsFor(wallHeight, panelHeight)
		nCurr := nPrev

		groundDiff := elevCurr - elevPrev
		if math.Abs(groundDiff) > panelHeight*0.5 {
			effectiveHeight := wallHeight - groundDiff
			if groundDiff < 0 {
				effectiveHeight = wallHeight + math.Abs(groundDiff)
			}
			nCurr = panelsFor(effectiveHeight, panelHeight)

			if nCurr != nPrev {
				transitions = append(transitions, StepTransition{
					Station:         stations[i],
					BayIndex:        i - 1,
					HeightChange:    groundDiff,
					NumPanelsBefore: nPrev,
					NumPanelsAfter:  nCurr,
				})
			}
		}
	}

	return transitions
}

func panelsFor(height, panelHeight float64) int {
	n := int(math.Ceil(height / panelHeight))
	if n < 1 {
		return 1
	}
	return n
}
