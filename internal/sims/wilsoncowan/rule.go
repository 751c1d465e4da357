package wilsoncowan

import "wilson-ca/pkg/core"

// Cell is the mutable state of one unit. Parameters live in the shared Rule.
type Cell struct {
	Pos        Position
	Active     bool
	Refractory int
}

// Rule is the per-cell transition shared by the whole grid.
type Rule struct {
	SpontaneousRate  float64
	Threshold        int
	RefractoryPeriod int
}

// Transition advances one cell given its refractory counter and the number of
// neighbours that were active in the previous step.
//
// A refractory cell (counter > 0) stays silent and counts down without
// drawing randomness. An excitable cell fires when input reaches the
// threshold and becomes refractory for RefractoryPeriod steps; otherwise it
// fires with probability SpontaneousRate and stays excitable.
func (r Rule) Transition(counter, input int, rng core.Bernoulli) (active bool, next int) {
	if counter > 0 {
		return false, counter - 1
	}
	if input >= r.Threshold {
		return true, r.RefractoryPeriod
	}
	return rng.Bernoulli(r.SpontaneousRate), 0
}

// Initial draws the t=0 activity of a cell. Initial cells are excitable.
func (r Rule) Initial(rng core.Bernoulli) bool {
	return rng.Bernoulli(r.SpontaneousRate)
}
