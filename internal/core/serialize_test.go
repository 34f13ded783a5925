package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphRoundTrip(t *testing.T) {
	g := buildTriple()

	s := g.ToSerialized()
	back, err := FromSerialized(s)
	require.NoError(t, err)

	require.Len(t, back.Regions, len(g.Regions))
	require.Len(t, back.Ports, len(g.Ports))
	for _, r := range g.Regions {
		br := back.Region(r.ID)
		require.NotNil(t, br)
		require.Equal(t, r.Ports, br.Ports, "region %d port order", r.ID)
		require.Equal(t, r.Bounds, br.Bounds)
		require.Equal(t, r.Kind, br.Kind)
	}
	for _, p := range g.Ports {
		bp := back.Port(p.ID)
		require.NotNil(t, bp)
		require.Equal(t, p.Region1, bp.Region1)
		require.Equal(t, p.Region2, bp.Region2)
		require.Equal(t, p.Pos, bp.Pos)
	}

	// Serialize-deserialize-serialize is idempotent.
	require.Equal(t, s, back.ToSerialized())
}

func TestGraphRoundTripJSON(t *testing.T) {
	g := buildTriple()

	data, err := json.Marshal(g.ToSerialized())
	require.NoError(t, err)

	var s SerializedGraph
	require.NoError(t, json.Unmarshal(data, &s))

	back, err := FromSerialized(&s)
	require.NoError(t, err)
	require.Equal(t, g.ToSerialized(), back.ToSerialized())
}

func TestFromSerializedDanglingPort(t *testing.T) {
	s := buildTriple().ToSerialized()
	s.Ports[0].Region1ID = 99

	_, err := FromSerialized(s)
	require.ErrorIs(t, err, ErrMalformedGraph)
}

func TestFromSerializedDanglingRegionPoint(t *testing.T) {
	s := buildTriple().ToSerialized()
	s.Regions[0].PointIDs = []PortID{42}

	_, err := FromSerialized(s)
	require.ErrorIs(t, err, ErrMalformedGraph)
}

func TestFromSerializedDuplicateIDs(t *testing.T) {
	s := buildTriple().ToSerialized()
	s.Regions = append(s.Regions, s.Regions[0])

	_, err := FromSerialized(s)
	require.ErrorIs(t, err, ErrMalformedGraph)
}

func TestConnectionFromSerialized(t *testing.T) {
	g := buildTriple()

	net := NetID(5)
	c, err := ConnectionFromSerialized(g, SerializedConnection{
		ConnectionID: 1, StartRegionID: 0, EndRegionID: 2, NetID: &net,
	})
	require.NoError(t, err)
	require.Equal(t, NetID(5), c.Net)

	// Missing net id defaults to a private net.
	c, err = ConnectionFromSerialized(g, SerializedConnection{
		ConnectionID: 7, StartRegionID: 0, EndRegionID: 2,
	})
	require.NoError(t, err)
	require.Equal(t, NetID(7), c.Net)

	_, err = ConnectionFromSerialized(g, SerializedConnection{
		ConnectionID: 2, StartRegionID: 0, EndRegionID: 0,
	})
	require.True(t, errors.Is(err, ErrMalformedGraph))

	_, err = ConnectionFromSerialized(g, SerializedConnection{
		ConnectionID: 3, StartRegionID: 0, EndRegionID: 99,
	})
	require.ErrorIs(t, err, ErrMalformedGraph)
}
