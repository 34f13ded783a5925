package algo

import "github.com/elektrokombinacija/jumper-router/internal/core"

// Candidate is a search-frontier node. NextRegion is always the far side
// of Port from LastRegion; root candidates have no parent, g = h = f = 0,
// LastRegion equal to the connection's start region and LastPort set to
// core.NoPort.
type Candidate struct {
	Port       core.PortID
	Parent     *Candidate
	LastRegion core.RegionID
	LastPort   core.PortID
	NextRegion core.RegionID
	Hops       int

	G, H, F     float64
	RipRequired bool
}

// chain returns the parent chain as route steps in traversal order.
func (c *Candidate) chain() []core.RouteStep {
	n := 0
	for cur := c; cur != nil; cur = cur.Parent {
		n++
	}
	steps := make([]core.RouteStep, n)
	for cur := c; cur != nil; cur = cur.Parent {
		n--
		steps[n] = core.RouteStep{
			Port:     cur.Port,
			LastPort: cur.LastPort,
			Region:   cur.LastRegion,
		}
	}
	return steps
}
