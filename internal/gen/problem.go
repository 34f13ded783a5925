package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/elektrokombinacija/jumper-router/internal/core"
	"github.com/elektrokombinacija/jumper-router/internal/geom"
)

// ErrGenerationFailed indicates the generator could not hit the target
// crossing count within its attempt cap.
var ErrGenerationFailed = errors.New("gen: could not reach target crossing count")

const (
	// maxAttempts bounds the endpoint sampling loop.
	maxAttempts = 500
	// growEvery is the streak of under-crossing attempts after which the
	// connection count is increased.
	growEvery = 50
)

// CreateProblem places connection endpoints on the outer frame so that
// the induced perimeter chords cross exactly numCrossings times. Endpoint
// choice is driven by a seeded source, so equal inputs yield equal
// problems. The connection count starts at the minimum that can produce
// the target and grows when attempts consistently under-cross.
func CreateProblem(g *core.Graph, numCrossings int, seed int64) (*core.Problem, error) {
	rng := rand.New(rand.NewSource(seed))

	var frames []*core.Region
	for _, r := range g.Regions {
		if r.Kind == core.KindFrame {
			frames = append(frames, r)
		}
	}
	if len(frames) < 4 {
		return nil, fmt.Errorf("%w: footprint has %d frame regions, need at least 4",
			ErrGenerationFailed, len(frames))
	}

	outer := g.Regions[0].Bounds
	for _, r := range g.Regions[1:] {
		outer = geom.Union(outer, r.Bounds)
	}
	period := geom.Perimeter(outer)
	chord := func(r *core.Region) float64 {
		return geom.PerimeterPos(outer, r.Center())
	}

	// Minimum chord count able to produce the target pairwise crossings.
	n := 2
	for n*(n-1)/2 < numCrossings {
		n++
	}
	// A frame region can anchor one connection endpoint per port on its
	// inner boundary.
	slots := 0
	for _, r := range frames {
		slots += len(r.Ports)
	}
	maxN := slots / 2

	underStreak := 0
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if underStreak >= growEvery && n < maxN {
			n++
			underStreak = 0
		}

		uses := make(map[core.RegionID]int, len(frames))
		pick := func(not *core.Region) *core.Region {
			for tries := 0; tries < 8*len(frames); tries++ {
				r := frames[rng.Intn(len(frames))]
				if r != not && uses[r.ID] < len(r.Ports) {
					uses[r.ID]++
					return r
				}
			}
			return nil
		}
		pairs := make([][2]*core.Region, 0, n)
		for k := 0; k < n; k++ {
			a := pick(nil)
			if a == nil {
				break
			}
			b := pick(a)
			if b == nil {
				break
			}
			pairs = append(pairs, [2]*core.Region{a, b})
		}
		if len(pairs) < n {
			underStreak++
			continue
		}

		crossings := 0
		for a := 0; a < n; a++ {
			for bIdx := a + 1; bIdx < n; bIdx++ {
				if geom.ChordsCross(
					chord(pairs[a][0]), chord(pairs[a][1]),
					chord(pairs[bIdx][0]), chord(pairs[bIdx][1]), period) {
					crossings++
				}
			}
		}

		if crossings == numCrossings {
			conns := make([]*core.Connection, n)
			for k, pair := range pairs {
				conns[k] = &core.Connection{
					ID:          core.ConnectionID(k),
					Net:         core.NetID(k),
					StartRegion: pair[0].ID,
					EndRegion:   pair[1].ID,
				}
			}
			return &core.Problem{Graph: g, Connections: conns, TargetCrossings: numCrossings}, nil
		}
		if crossings < numCrossings {
			underStreak++
		} else {
			underStreak = 0
		}
	}

	return nil, fmt.Errorf("%w: target %d after %d attempts", ErrGenerationFailed, numCrossings, maxAttempts)
}
