// Package core defines the region-hypergraph domain model for jumper routing.
package core

import "gonum.org/v1/gonum/spatial/r2"

// RegionID is a unique region identifier.
type RegionID int

// PortID is a unique port identifier.
type PortID int

// ConnectionID is a unique connection identifier.
type ConnectionID int

// NetID identifies an electrical network. Connections sharing a NetID are
// electrically equivalent and never conflict with each other.
type NetID int

// NoPort marks the absence of a port reference.
const NoPort PortID = -1

// RegionKind classifies the footprint area a region covers.
type RegionKind int

const (
	KindPlain       RegionKind = iota // Unclassified routing area
	KindUnderJumper                   // Area beneath a jumper body
	KindChannel                       // Channel between adjacent cells
	KindFrame                         // Outer frame segment
)

func (k RegionKind) String() string {
	return [...]string{"Plain", "UnderJumper", "Channel", "Frame"}[k]
}

// Region is a polygonal area of the footprint; a node in the routing
// hypergraph. Ports holds port ids in construction order, which is the
// iteration order contract for deterministic expansion.
type Region struct {
	ID          RegionID
	Ports       []PortID
	Bounds      r2.Box
	Kind        RegionKind
	Assignments []*Assignment
}

// Center returns the midpoint of the region bounds.
func (r *Region) Center() r2.Vec {
	return r2.Scale(0.5, r2.Add(r.Bounds.Min, r.Bounds.Max))
}

// Port is a boundary point shared between exactly two regions; the edge
// unit of the hypergraph.
type Port struct {
	ID               PortID
	Region1, Region2 RegionID
	Pos              r2.Vec

	// Mutable search state.
	Assignment *Assignment
	RipCount   int

	// Hop distance to each destination region, filled by the engine's
	// heuristic precomputation.
	HopDist map[RegionID]int
}

// OtherRegion returns the region on the far side of the port from r.
func (p *Port) OtherRegion(r RegionID) RegionID {
	if p.Region1 == r {
		return p.Region2
	}
	return p.Region1
}

// Straddles reports whether the port lies between regions a and b.
func (p *Port) Straddles(a, b RegionID) bool {
	return (p.Region1 == a && p.Region2 == b) || (p.Region1 == b && p.Region2 == a)
}

// Connection is a required electrical link between two distinct regions.
type Connection struct {
	ID          ConnectionID
	Net         NetID
	StartRegion RegionID
	EndRegion   RegionID
}

// Assignment records one route's traversal of a region between two of the
// region's ports. Mirror references are kept on the region and on both
// ports while the assignment is installed.
type Assignment struct {
	Region       RegionID
	Port1, Port2 PortID
	Connection   *Connection
	Route        *Route
}

// Uses reports whether the assignment occupies port id.
func (a *Assignment) Uses(id PortID) bool {
	return a.Port1 == id || a.Port2 == id
}
