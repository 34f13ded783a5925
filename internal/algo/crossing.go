package algo

import (
	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/geom"
)

// RegionCrossings counts the different-net assignments of region whose
// chords interleave with the candidate chord (p1, p2), and returns the
// offending assignment records for potential rip-up. Assignments owned by
// net never count; a net may overlap itself freely.
func RegionCrossings(g *core.Graph, region *core.Region, p1, p2 core.PortID, net core.NetID) (int, []*core.Assignment) {
	if len(region.Assignments) == 0 {
		return 0, nil
	}

	param, period := boundaryParam(g, region)
	a, b := param(p1), param(p2)

	count := 0
	var offending []*core.Assignment
	for _, asg := range region.Assignments {
		if asg.Connection.Net == net {
			continue
		}
		if geom.ChordsCross(a, b, param(asg.Port1), param(asg.Port2), period) {
			count++
			offending = append(offending, asg)
		}
	}
	return count, offending
}

// boundaryParam returns the cyclic boundary parameterization of a region:
// perimeter-t over the bounds when the region has positive extent, the
// topological port order otherwise.
func boundaryParam(g *core.Graph, region *core.Region) (func(core.PortID) float64, float64) {
	if geom.Width(region.Bounds) > 0 && geom.Height(region.Bounds) > 0 {
		return func(id core.PortID) float64 {
			return geom.PerimeterPos(region.Bounds, g.Port(id).Pos)
		}, geom.Perimeter(region.Bounds)
	}

	index := make(map[core.PortID]float64, len(region.Ports))
	for i, pid := range region.Ports {
		index[pid] = float64(i)
	}
	return func(id core.PortID) float64 {
		return index[id]
	}, float64(len(region.Ports))
}
