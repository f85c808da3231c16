package hgio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/hyperpart/internal/hypergraph"
)

// Write serializes a solved partition in spec.md §6's output format:
//
//	<cost>
//	<K>
//	<block_of_cell[0]>
//	...
//	<block_of_cell[N-1]>
//
// cost is passed in rather than recomputed here, since the caller already
// tracks it incrementally (internal/sa, internal/sanchis) or can obtain it
// from internal/cost.FromScratch; Write's only job is serialization.
func Write(path string, cost int, p *hypergraph.Partition, numCells int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hgio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	if _, err := fmt.Fprintln(w, cost); err != nil {
		return fmt.Errorf("hgio: write %s: %w", path, err)
	}
	if _, err := fmt.Fprintln(w, p.NumBlocks()); err != nil {
		return fmt.Errorf("hgio: write %s: %w", path, err)
	}
	for c := 0; c < numCells; c++ {
		if _, err := fmt.Fprintln(w, p.BlockOf(hypergraph.CellId(c))); err != nil {
			return fmt.Errorf("hgio: write %s: %w", path, err)
		}
	}
	return nil
}
