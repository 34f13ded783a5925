package core

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// PortGeom is the serialized geometry descriptor of a port.
type PortGeom struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegionGeom is the serialized geometry descriptor of a region.
type RegionGeom struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
	Kind string  `json:"kind"`
}

// SerializedPort is the id-keyed wire form of a port.
type SerializedPort struct {
	PortID    PortID   `json:"portId"`
	Region1ID RegionID `json:"region1Id"`
	Region2ID RegionID `json:"region2Id"`
	D         PortGeom `json:"d"`
}

// SerializedRegion is the id-keyed wire form of a region. PointIDs keeps
// the region's port construction order.
type SerializedRegion struct {
	RegionID RegionID   `json:"regionId"`
	PointIDs []PortID   `json:"pointIds"`
	D        RegionGeom `json:"d"`
}

// SerializedGraph is the id-keyed wire form of a graph.
type SerializedGraph struct {
	Ports   []SerializedPort   `json:"ports"`
	Regions []SerializedRegion `json:"regions"`
}

// SerializedConnection is the wire form of a connection. A nil network id
// means the connection is its own net.
type SerializedConnection struct {
	ConnectionID  ConnectionID `json:"connectionId"`
	StartRegionID RegionID     `json:"startRegionId"`
	EndRegionID   RegionID     `json:"endRegionId"`
	NetID         *NetID       `json:"mutuallyConnectedNetworkId,omitempty"`
}

var kindNames = map[RegionKind]string{
	KindPlain:       "plain",
	KindUnderJumper: "underJumper",
	KindChannel:     "channel",
	KindFrame:       "frame",
}

var kindByName = map[string]RegionKind{
	"plain":       KindPlain,
	"underJumper": KindUnderJumper,
	"channel":     KindChannel,
	"frame":       KindFrame,
}

// ToSerialized converts the live graph to its id-keyed form.
func (g *Graph) ToSerialized() *SerializedGraph {
	s := &SerializedGraph{
		Ports:   make([]SerializedPort, 0, len(g.Ports)),
		Regions: make([]SerializedRegion, 0, len(g.Regions)),
	}
	for _, p := range g.Ports {
		s.Ports = append(s.Ports, SerializedPort{
			PortID:    p.ID,
			Region1ID: p.Region1,
			Region2ID: p.Region2,
			D:         PortGeom{X: p.Pos.X, Y: p.Pos.Y},
		})
	}
	for _, r := range g.Regions {
		pointIDs := make([]PortID, len(r.Ports))
		copy(pointIDs, r.Ports)
		s.Regions = append(s.Regions, SerializedRegion{
			RegionID: r.ID,
			PointIDs: pointIDs,
			D: RegionGeom{
				MinX: r.Bounds.Min.X,
				MinY: r.Bounds.Min.Y,
				MaxX: r.Bounds.Max.X,
				MaxY: r.Bounds.Max.Y,
				Kind: kindNames[r.Kind],
			},
		})
	}
	return s
}

// FromSerialized converts an id-keyed graph back to live form. Unknown or
// dangling ids yield ErrMalformedGraph.
func FromSerialized(s *SerializedGraph) (*Graph, error) {
	g := NewGraph()
	for _, sr := range s.Regions {
		if g.regionByID[sr.RegionID] != nil {
			return nil, fmt.Errorf("%w: duplicate region id %d", ErrMalformedGraph, sr.RegionID)
		}
		kind, ok := kindByName[sr.D.Kind]
		if !ok && sr.D.Kind != "" {
			return nil, fmt.Errorf("%w: region %d has unknown kind %q", ErrMalformedGraph, sr.RegionID, sr.D.Kind)
		}
		r := &Region{
			ID: sr.RegionID,
			Bounds: r2.Box{
				Min: r2.Vec{X: sr.D.MinX, Y: sr.D.MinY},
				Max: r2.Vec{X: sr.D.MaxX, Y: sr.D.MaxY},
			},
			Kind:  kind,
			Ports: append([]PortID(nil), sr.PointIDs...),
		}
		g.Regions = append(g.Regions, r)
		g.regionByID[r.ID] = r
	}
	for _, sp := range s.Ports {
		if g.portByID[sp.PortID] != nil {
			return nil, fmt.Errorf("%w: duplicate port id %d", ErrMalformedGraph, sp.PortID)
		}
		p := &Port{
			ID:      sp.PortID,
			Region1: sp.Region1ID,
			Region2: sp.Region2ID,
			Pos:     r2.Vec{X: sp.D.X, Y: sp.D.Y},
		}
		g.Ports = append(g.Ports, p)
		g.portByID[p.ID] = p
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// ToSerialized converts a live connection to its wire form.
func (c *Connection) ToSerialized() SerializedConnection {
	net := c.Net
	return SerializedConnection{
		ConnectionID:  c.ID,
		StartRegionID: c.StartRegion,
		EndRegionID:   c.EndRegion,
		NetID:         &net,
	}
}

// ConnectionFromSerialized resolves a serialized connection against a
// graph. A missing network id defaults to a net private to the
// connection.
func ConnectionFromSerialized(g *Graph, sc SerializedConnection) (*Connection, error) {
	if g.Region(sc.StartRegionID) == nil {
		return nil, fmt.Errorf("%w: connection %d references unknown start region %d",
			ErrMalformedGraph, sc.ConnectionID, sc.StartRegionID)
	}
	if g.Region(sc.EndRegionID) == nil {
		return nil, fmt.Errorf("%w: connection %d references unknown end region %d",
			ErrMalformedGraph, sc.ConnectionID, sc.EndRegionID)
	}
	if sc.StartRegionID == sc.EndRegionID {
		return nil, fmt.Errorf("%w: connection %d starts and ends in region %d",
			ErrMalformedGraph, sc.ConnectionID, sc.StartRegionID)
	}
	net := NetID(sc.ConnectionID)
	if sc.NetID != nil {
		net = *sc.NetID
	}
	return &Connection{
		ID:          sc.ConnectionID,
		Net:         net,
		StartRegion: sc.StartRegionID,
		EndRegion:   sc.EndRegionID,
	}, nil
}
