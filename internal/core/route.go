package core

// RouteStep is one hop of a solved route: the port entered, the port it
// was entered from (NoPort for the first step) and the region traversed
// between the two.
type RouteStep struct {
	Port     PortID
	LastPort PortID
	Region   RegionID
}

// Route is an ordered sequence of ports realizing a connection.
type Route struct {
	Connection  *Connection
	Steps       []RouteStep
	RequiredRip bool
}

// PortIDs returns the ports of the route in traversal order.
func (rt *Route) PortIDs() []PortID {
	out := make([]PortID, len(rt.Steps))
	for i, s := range rt.Steps {
		out[i] = s.Port
	}
	return out
}

// Visits reports whether the route passes through port id.
func (rt *Route) Visits(id PortID) bool {
	for _, s := range rt.Steps {
		if s.Port == id {
			return true
		}
	}
	return false
}

// Problem bundles a footprint graph with the connections to route and
// optional generator metadata.
type Problem struct {
	Graph       *Graph
	Connections []*Connection

	// TargetCrossings is the crossing count the problem generator aimed
	// for; 0 when unknown. Feeds the engine's iteration budget.
	TargetCrossings int
}
