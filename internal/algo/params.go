// Package algo implements the A*-with-rip-up routing engine.
package algo

// UnitOfCost selects the quantity the heuristic estimates.
type UnitOfCost int

const (
	UnitHops     UnitOfCost = iota // Precomputed hop distance
	UnitDistance                   // Euclidean distance to the end region
)

func (u UnitOfCost) String() string {
	return [...]string{"hops", "distance"}[u]
}

// ConnectionOrder selects the order connections are drained in.
type ConnectionOrder int

const (
	OrderInput     ConnectionOrder = iota // As given
	OrderNearFirst                        // Ascending start-to-end distance
	OrderFarFirst                         // Descending start-to-end distance
)

func (o ConnectionOrder) String() string {
	return [...]string{"input", "nearFirst", "farFirst"}[o]
}

// Parameters is the tunable policy surface of the engine.
type Parameters struct {
	// PortUsagePenalty multiplies a port's rip count, discouraging reuse
	// of congested ports.
	PortUsagePenalty float64 `json:"portUsagePenalty"`
	// CrossingPenalty multiplies the number of different-net crossings a
	// candidate chord would add inside a region.
	CrossingPenalty float64 `json:"crossingPenalty"`
	// RipCost is the additive cost of entering a port whose assignment
	// belongs to another net.
	RipCost float64 `json:"ripCost"`
	// GreedyMultiplier scales the heuristic term. Values above 1 bias the
	// search toward the goal; admissibility is lost but solves are
	// empirically much faster.
	GreedyMultiplier float64 `json:"greedyMultiplier"`

	// The absolute step budget is BaseMaxIterations plus the per-connection
	// and per-crossing terms.
	BaseMaxIterations                    int `json:"baseMaxIterations"`
	AdditionalMaxIterationsPerConnection int `json:"additionalMaxIterationsPerConnection"`
	AdditionalMaxIterationsPerCrossing   int `json:"additionalMaxIterationsPerCrossing"`

	RippingEnabled  bool            `json:"rippingEnabled"`
	UnitOfCost      UnitOfCost      `json:"unitOfCost"`
	ConnectionOrder ConnectionOrder `json:"connectionOrder"`
}

// DefaultParameters returns the tuned defaults.
func DefaultParameters() Parameters {
	return Parameters{
		PortUsagePenalty:                     2,
		CrossingPenalty:                      4,
		RipCost:                              6,
		GreedyMultiplier:                     1.2,
		BaseMaxIterations:                    10000,
		AdditionalMaxIterationsPerConnection: 1000,
		AdditionalMaxIterationsPerCrossing:   500,
		RippingEnabled:                       true,
		UnitOfCost:                           UnitHops,
		ConnectionOrder:                      OrderInput,
	}
}

// MaxIterations composes the absolute step budget for a problem with the
// given connection and target-crossing counts.
func (p Parameters) MaxIterations(numConnections, numCrossings int) int {
	return p.BaseMaxIterations +
		p.AdditionalMaxIterationsPerConnection*numConnections +
		p.AdditionalMaxIterationsPerCrossing*numCrossings
}
