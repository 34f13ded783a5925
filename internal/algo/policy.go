package algo

import (
	"math"

	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/geom"
)

// Policy is the capability set the engine consults for costs. The jumper
// policy is the production implementation; BasePolicy prices everything
// at zero and is useful for plain shortest-hop routing and tests.
type Policy interface {
	// EstimateCostToEnd estimates the remaining cost from a port to the
	// end region. Must be admissible when the engine runs with
	// GreedyMultiplier <= 1.
	EstimateCostToEnd(p *core.Port, end core.RegionID) float64

	// PortUsagePenalty prices reuse of a congested port.
	PortUsagePenalty(p *core.Port) float64

	// IncreasedRegionCost prices the crossings the chord (p1, p2) would
	// add inside region against nets other than net.
	IncreasedRegionCost(region *core.Region, p1, p2 core.PortID, net core.NetID) float64

	// RipsRequiredFor returns the assignments the chord (p1, p2) through
	// region would have to rip.
	RipsRequiredFor(region *core.Region, p1, p2 core.PortID, net core.NetID) []*core.Assignment

	// SelectCandidatesForEnteringRegion filters the candidates grouped by
	// the region they would enter next. The default passes all through;
	// implementations may collapse redundant entries.
	SelectCandidatesForEnteringRegion(entering core.RegionID, cands []*Candidate) []*Candidate
}

// BasePolicy prices every capability at zero. With it the engine degrades
// to FIFO flood search over the region graph.
type BasePolicy struct{}

func (BasePolicy) EstimateCostToEnd(*core.Port, core.RegionID) float64 { return 0 }
func (BasePolicy) PortUsagePenalty(*core.Port) float64                 { return 0 }
func (BasePolicy) IncreasedRegionCost(*core.Region, core.PortID, core.PortID, core.NetID) float64 {
	return 0
}
func (BasePolicy) RipsRequiredFor(*core.Region, core.PortID, core.PortID, core.NetID) []*core.Assignment {
	return nil
}
func (BasePolicy) SelectCandidatesForEnteringRegion(_ core.RegionID, cands []*Candidate) []*Candidate {
	return cands
}

// JumperPolicy consults the precomputed hop tables and the region
// crossing predicate. The penalty parameters multiply rip counts and
// crossing counts linearly.
type JumperPolicy struct {
	Graph  *core.Graph
	Params Parameters
}

// NewJumperPolicy creates the production policy for a graph.
func NewJumperPolicy(g *core.Graph, params Parameters) *JumperPolicy {
	return &JumperPolicy{Graph: g, Params: params}
}

// EstimateCostToEnd returns the precomputed hop distance, or the
// Euclidean distance to the end region center under UnitDistance.
func (j *JumperPolicy) EstimateCostToEnd(p *core.Port, end core.RegionID) float64 {
	if j.Params.UnitOfCost == UnitDistance {
		return geom.Dist(p.Pos, j.Graph.Region(end).Center())
	}
	if d, ok := p.HopDist[end]; ok {
		return float64(d)
	}
	return math.Inf(1) // Unreachable from this port
}

func (j *JumperPolicy) PortUsagePenalty(p *core.Port) float64 {
	return j.Params.PortUsagePenalty * float64(p.RipCount)
}

func (j *JumperPolicy) IncreasedRegionCost(region *core.Region, p1, p2 core.PortID, net core.NetID) float64 {
	count, _ := RegionCrossings(j.Graph, region, p1, p2, net)
	return j.Params.CrossingPenalty * float64(count)
}

func (j *JumperPolicy) RipsRequiredFor(region *core.Region, p1, p2 core.PortID, net core.NetID) []*core.Assignment {
	_, offending := RegionCrossings(j.Graph, region, p1, p2, net)
	return offending
}

func (j *JumperPolicy) SelectCandidatesForEnteringRegion(_ core.RegionID, cands []*Candidate) []*Candidate {
	return cands
}
