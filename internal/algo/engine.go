package algo

import (
	"fmt"
	"math"
	"sort"

	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/geom"
)

// Engine drains connections one at a time through the A* loop, installing
// a route for each and ripping up conflicting prior routes as needed. It
// is single-threaded; each Step pops one candidate and either finalizes a
// route or expands. The graph's mutable fields and the connection queue
// are owned exclusively by the engine during a solve.
type Engine struct {
	graph  *core.Graph
	params Parameters
	policy Policy

	input           []*core.Connection // Original order, for ConstructorParams
	unprocessed     []*core.Connection
	current         *core.Connection
	queue           *CandidateQueue
	visited         map[core.PortID]float64 // Port id -> best g, per connection
	maxIterations   int
	targetCrossings int

	// Observables.
	SolvedRoutes  []*core.Route
	Iterations    int
	Rips          int
	Solved        bool
	Failed        bool
	Err           error
	LastCandidate *Candidate

	// OnRouteSolved fires after each route is installed.
	OnRouteSolved func(*core.Route)
}

// ConstructorParams is a serializable reconstruction input for an engine.
type ConstructorParams struct {
	Graph           *core.SerializedGraph       `json:"graph"`
	Connections     []core.SerializedConnection `json:"connections"`
	Parameters      Parameters                  `json:"parameters"`
	TargetCrossings int                         `json:"targetCrossings"`
}

// New constructs an engine with the jumper policy, computes the heuristic
// tables and enqueues the first connection.
func New(g *core.Graph, connections []*core.Connection, params Parameters) *Engine {
	return NewWithPolicy(g, connections, params, NewJumperPolicy(g, params), 0)
}

// NewFromProblem is New plus the problem's crossing metadata, which feeds
// the iteration budget.
func NewFromProblem(p *core.Problem, params Parameters) *Engine {
	return NewWithPolicy(p.Graph, p.Connections, params, NewJumperPolicy(p.Graph, params), p.TargetCrossings)
}

// NewWithPolicy constructs an engine with an explicit policy.
func NewWithPolicy(g *core.Graph, connections []*core.Connection, params Parameters, policy Policy, targetCrossings int) *Engine {
	dests := make([]core.RegionID, 0, len(connections))
	for _, c := range connections {
		dests = append(dests, c.EndRegion)
	}
	ComputeHopTables(g, dests)

	e := &Engine{
		graph:           g,
		params:          params,
		policy:          policy,
		input:           append([]*core.Connection(nil), connections...),
		unprocessed:     orderConnections(g, connections, params.ConnectionOrder),
		queue:           NewCandidateQueue(),
		maxIterations:   params.MaxIterations(len(connections), targetCrossings),
		targetCrossings: targetCrossings,
	}
	if !e.nextConnection() {
		e.Solved = true
	}
	return e
}

// orderConnections applies the configured connection ordering. Sorting is
// stable so equal-distance connections keep input order.
func orderConnections(g *core.Graph, connections []*core.Connection, order ConnectionOrder) []*core.Connection {
	out := append([]*core.Connection(nil), connections...)
	if order == OrderInput {
		return out
	}
	span := func(c *core.Connection) float64 {
		return geom.Dist(g.Region(c.StartRegion).Center(), g.Region(c.EndRegion).Center())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order == OrderNearFirst {
			return span(out[i]) < span(out[j])
		}
		return span(out[i]) > span(out[j])
	})
	return out
}

// Current returns the connection being routed, nil between connections.
func (e *Engine) Current() *core.Connection { return e.current }

// Pending returns the number of connections not yet routed, excluding the
// current one.
func (e *Engine) Pending() int { return len(e.unprocessed) }

// PeekCandidates returns up to k best queued candidates for inspection.
func (e *Engine) PeekCandidates(k int) []*Candidate { return e.queue.PeekK(k) }

// Graph returns the engine's graph.
func (e *Engine) Graph() *core.Graph { return e.graph }

// ConstructorParams returns a serializable input that reconstructs an
// equivalent engine.
func (e *Engine) ConstructorParams() ConstructorParams {
	conns := make([]core.SerializedConnection, len(e.input))
	for i, c := range e.input {
		conns[i] = c.ToSerialized()
	}
	return ConstructorParams{
		Graph:           e.graph.ToSerialized(),
		Connections:     conns,
		Parameters:      e.params,
		TargetCrossings: e.targetCrossings,
	}
}

// Solve repeats Step until the engine reaches a terminal state.
func (e *Engine) Solve() error {
	for !e.Solved && !e.Failed {
		e.Step()
	}
	return e.Err
}

// Step advances one search step: pop the minimum-f candidate past the
// revisit filter, then finalize or expand. No-op in a terminal state.
func (e *Engine) Step() {
	if e.Solved || e.Failed {
		return
	}

	e.Iterations++
	if e.Iterations > e.maxIterations {
		e.fail(fmt.Errorf("%w: %d steps", ErrBudgetExhausted, e.maxIterations))
		return
	}

	cand := e.queue.Pop()
	for cand != nil {
		best, ok := e.visited[cand.Port]
		if !ok || cand.G < best {
			break
		}
		cand = e.queue.Pop() // Revisit with no better g: skip and pop again
	}
	if cand == nil {
		e.fail(fmt.Errorf("%w: connection %d", ErrNoRouteFound, e.current.ID))
		return
	}

	e.LastCandidate = cand
	e.visited[cand.Port] = cand.G

	if cand.NextRegion == e.current.EndRegion {
		e.finalize(cand)
		return
	}
	e.expand(cand)
}

// nextConnection pops the next unprocessed connection and seeds the queue
// with a root candidate per start-region port.
func (e *Engine) nextConnection() bool {
	if len(e.unprocessed) == 0 {
		e.current = nil
		return false
	}
	e.current = e.unprocessed[0]
	e.unprocessed = e.unprocessed[1:]

	e.queue.Clear()
	e.visited = make(map[core.PortID]float64)

	// Root candidates carry g = h = f = 0.
	start := e.graph.Region(e.current.StartRegion)
	for _, pid := range start.Ports {
		p := e.graph.Port(pid)
		ripRequired := p.Assignment != nil && p.Assignment.Connection.Net != e.current.Net
		if ripRequired && !e.params.RippingEnabled {
			continue // Conflicting root and no way to rip it
		}
		e.queue.Push(&Candidate{
			Port:        pid,
			LastPort:    core.NoPort,
			LastRegion:  start.ID,
			NextRegion:  p.OtherRegion(start.ID),
			RipRequired: ripRequired,
		})
	}
	return true
}

// expand enumerates every port of the candidate's next region other than
// its own port, groups the expansions by the region they would enter, and
// enqueues the survivors with their g/h/f.
func (e *Engine) expand(cand *Candidate) {
	next := e.graph.Region(cand.NextRegion)

	grouped := make(map[core.RegionID][]*Candidate)
	var order []core.RegionID
	for _, pid := range next.Ports {
		if pid == cand.Port {
			continue
		}
		p := e.graph.Port(pid)
		ripRequired := p.Assignment != nil && p.Assignment.Connection.Net != e.current.Net
		if ripRequired && !e.params.RippingEnabled {
			continue // No expansion; never an error
		}
		entering := p.OtherRegion(next.ID)
		if _, ok := grouped[entering]; !ok {
			order = append(order, entering)
		}
		grouped[entering] = append(grouped[entering], &Candidate{
			Port:        pid,
			Parent:      cand,
			LastRegion:  next.ID,
			LastPort:    cand.Port,
			NextRegion:  entering,
			Hops:        cand.Hops + 1,
			RipRequired: ripRequired,
		})
	}

	for _, entering := range order {
		for _, c := range e.policy.SelectCandidatesForEnteringRegion(entering, grouped[entering]) {
			p := e.graph.Port(c.Port)

			g := cand.G + e.policy.IncreasedRegionCost(next, cand.Port, c.Port, e.current.Net)
			if c.RipRequired {
				g += e.params.RipCost
			}
			g += e.policy.PortUsagePenalty(p)

			h := e.policy.EstimateCostToEnd(p, e.current.EndRegion)
			if math.IsInf(h, 1) {
				continue // Port cannot reach the end region
			}

			c.G = g
			c.H = h
			c.F = g + e.params.GreedyMultiplier*h
			e.queue.Push(c)
		}
	}
}

// finalize walks the parent chain into a route, rips every conflicting
// prior route, installs the new one and moves on to the next connection.
func (e *Engine) finalize(cand *Candidate) {
	route := &core.Route{
		Connection: e.current,
		Steps:      cand.chain(),
	}

	// Rip sources: conflicting port assignments along the path, plus
	// crossing assignments per traversed region. With ripping disabled no
	// conflicting expansion survives and crossings remain as priced.
	var toRip []*core.Route
	seen := make(map[*core.Route]bool)
	add := func(rt *core.Route) {
		if rt != nil && !seen[rt] {
			seen[rt] = true
			toRip = append(toRip, rt)
		}
	}
	if e.params.RippingEnabled {
		for i, step := range route.Steps {
			p := e.graph.Port(step.Port)
			if p.Assignment != nil && p.Assignment.Connection.Net != e.current.Net {
				add(p.Assignment.Route)
			}
			if i == 0 {
				continue
			}
			region := e.graph.Region(step.Region)
			for _, asg := range e.policy.RipsRequiredFor(region, step.LastPort, step.Port, e.current.Net) {
				add(asg.Route)
			}
		}
	}

	for _, rt := range toRip {
		e.rip(rt)
	}
	route.RequiredRip = len(toRip) > 0

	e.install(route)
	e.SolvedRoutes = append(e.SolvedRoutes, route)
	if e.OnRouteSolved != nil {
		e.OnRouteSolved(route)
	}

	if !e.nextConnection() {
		e.Solved = true
	}
}

// rip removes a route's assignments from every port and region on its
// path, increments the ports' rip counters, drops the route from
// SolvedRoutes and pushes its connection back onto the unprocessed tail.
func (e *Engine) rip(rt *core.Route) {
	for i, step := range rt.Steps {
		p := e.graph.Port(step.Port)
		if p.Assignment != nil && p.Assignment.Route == rt {
			p.Assignment = nil
		}
		p.RipCount++
		if i == 0 {
			continue
		}
		region := e.graph.Region(step.Region)
		kept := region.Assignments[:0]
		for _, asg := range region.Assignments {
			if asg.Route != rt {
				kept = append(kept, asg)
			}
		}
		region.Assignments = kept
	}

	for i, solved := range e.SolvedRoutes {
		if solved == rt {
			e.SolvedRoutes = append(e.SolvedRoutes[:i], e.SolvedRoutes[i+1:]...)
			break
		}
	}
	e.unprocessed = append(e.unprocessed, rt.Connection)
	e.Rips++
}

// install writes the route's assignments into every traversed region and
// onto the path's ports.
func (e *Engine) install(route *core.Route) {
	for i, step := range route.Steps {
		if i == 0 {
			continue
		}
		asg := &core.Assignment{
			Region:     step.Region,
			Port1:      step.LastPort,
			Port2:      step.Port,
			Connection: route.Connection,
			Route:      route,
		}
		region := e.graph.Region(step.Region)
		region.Assignments = append(region.Assignments, asg)
		e.graph.Port(step.LastPort).Assignment = asg
		e.graph.Port(step.Port).Assignment = asg
	}
}

func (e *Engine) fail(err error) {
	e.Failed = true
	e.Err = err
}
