package algo

import "github.com/elektrokombinacija/jumper-router/internal/core"

// FallbackVariants returns the parameter perturbations the fallback runs
// after a failed solve, in order: a wider rip budget, an admissible
// heuristic weight, a greedier weight with far-first ordering.
func FallbackVariants(base Parameters) []Parameters {
	wideRip := base
	wideRip.RipCost = base.RipCost / 2
	wideRip.BaseMaxIterations = base.BaseMaxIterations * 2

	admissible := base
	admissible.GreedyMultiplier = 1

	farFirst := base
	farFirst.GreedyMultiplier = base.GreedyMultiplier * 1.5
	farFirst.ConnectionOrder = OrderFarFirst

	return []Parameters{wideRip, admissible, farFirst}
}

// SolveWithFallback runs the engine on the problem and, on failure,
// reruns it on a fresh clone of the graph for each parameter variant,
// adopting the first successful run. Connections carry no mutable state
// and are shared across attempts; each retry routes on its own graph
// clone, so the problem's graph is only mutated by the first attempt.
func SolveWithFallback(p *core.Problem, params Parameters, variants []Parameters) *Engine {
	pristine := p.Graph.Clone() // Taken before the first attempt dirties rip counters

	e := NewFromProblem(p, params)
	e.Solve()
	if e.Solved {
		return e
	}

	for _, v := range variants {
		clone := pristine.Clone()
		retry := NewWithPolicy(clone, p.Connections, v, NewJumperPolicy(clone, v), p.TargetCrossings)
		retry.Solve()
		if retry.Solved {
			return retry
		}
	}
	return e // All attempts failed; report the base run
}
