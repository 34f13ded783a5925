package algo

import "github.com/elektrokombinacija/jumper-router/internal/core"

// ComputeHopTables runs an unweighted BFS from every distinct destination
// region over the region-adjacency graph (two regions are adjacent iff a
// port straddles them) and stores, per port, the minimum of its two
// adjacent regions' hop distances. Each region is visited once per
// destination; total work is O(|dests| * (|regions| + |ports|)).
func ComputeHopTables(g *core.Graph, dests []core.RegionID) {
	seen := make(map[core.RegionID]bool, len(dests))
	for _, dest := range dests {
		if seen[dest] {
			continue
		}
		seen[dest] = true

		dist := hopDistances(g, dest)
		for _, p := range g.Ports {
			d1, ok1 := dist[p.Region1]
			d2, ok2 := dist[p.Region2]
			if !ok1 && !ok2 {
				continue // Port unreachable from dest
			}
			d := d1
			if !ok1 || (ok2 && d2 < d1) {
				d = d2
			}
			if p.HopDist == nil {
				p.HopDist = make(map[core.RegionID]int)
			}
			p.HopDist[dest] = d
		}
	}
}

// hopDistances returns BFS hop counts from the source region.
func hopDistances(g *core.Graph, src core.RegionID) map[core.RegionID]int {
	dist := map[core.RegionID]int{src: 0}
	queue := []core.RegionID{src}
	for len(queue) > 0 {
		rid := queue[0]
		queue = queue[1:]
		d := dist[rid]
		for _, next := range g.AdjacentRegions(g.Region(rid)) {
			if _, ok := dist[next]; !ok {
				dist[next] = d + 1
				queue = append(queue, next)
			}
		}
	}
	return dist
}
