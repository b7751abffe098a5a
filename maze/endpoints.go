package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/carve"
)

// placeEndpoints picks Start uniformly among the topology's start candidates,
// then Finish as the first finish candidate at the greatest passable
// distance from Start.
func (m *Maze) placeEndpoints(rng carve.Rand) error {
	starts := m.shape.StartCandidates()
	if len(starts) == 0 {
		return fmt.Errorf("placeEndpoints: no start candidates: %w", carve.ErrEmptyGraph)
	}
	i, err := carve.Draw(rng, len(starts))
	if err != nil {
		return fmt.Errorf("placeEndpoints: %w", err)
	}
	m.start = starts[i]

	info, err := bfs.Distances(m.shape, m.start)
	if err != nil {
		return fmt.Errorf("placeEndpoints: %w", err)
	}

	m.finish = m.start
	best := -1
	for _, c := range m.shape.FinishCandidates() {
		d, ok := info.Distance[c]
		if !ok {
			return fmt.Errorf("placeEndpoints: cell %d: %w", c, bfs.ErrCellNotInDistances)
		}
		if d > best {
			best, m.finish = d, c
		}
	}

	return nil
}
