package hgio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/hyperpart/internal/hypergraph"
)

// tokenizer wraps a bufio.Scanner configured for word splitting and tracks
// how many tokens have been consumed, so errors can name an exact index.
type tokenizer struct {
	sc    *bufio.Scanner
	index int
}

func newTokenizer(f *os.File) *tokenizer {
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next(expected string) (string, error) {
	if !t.sc.Scan() {
		return "", &FormatError{TokenIndex: t.index + 1, Expected: expected, Found: "<eof>"}
	}
	t.index++
	return t.sc.Text(), nil
}

func (t *tokenizer) nextInt(expected string) (int, error) {
	tok, err := t.next(expected)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &FormatError{TokenIndex: t.index, Expected: expected, Found: tok}
	}
	return v, nil
}

func (t *tokenizer) nextKeyword(keyword string) error {
	tok, err := t.next(keyword)
	if err != nil {
		return err
	}
	if tok != keyword {
		return &FormatError{TokenIndex: t.index, Expected: keyword, Found: tok}
	}
	return nil
}

// Read parses an instance from path in spec.md §6's format:
//
//	<A_max>
//	.cell <N>
//	<i> <area>     (N times, any order)
//	.net <M>
//	<k> <c_1> ... <c_k>   (M times)
func Read(path string) (*hypergraph.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hgio: open %s: %w", path, err)
	}
	defer f.Close()

	t := newTokenizer(f)

	aMax, err := t.nextInt("A_max")
	if err != nil {
		return nil, err
	}
	if aMax <= 0 {
		return nil, &FormatError{TokenIndex: t.index, Expected: "positive A_max", Found: strconv.Itoa(aMax)}
	}

	if err := t.nextKeyword(".cell"); err != nil {
		return nil, err
	}
	numCells, err := t.nextInt("cell count")
	if err != nil {
		return nil, err
	}

	areas := make([]uint, numCells)
	seen := make([]bool, numCells)
	for i := 0; i < numCells; i++ {
		idx, err := t.nextInt("cell index")
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= numCells {
			return nil, &FormatError{TokenIndex: t.index, Expected: "cell index in range", Found: strconv.Itoa(idx)}
		}
		area, err := t.nextInt("cell area")
		if err != nil {
			return nil, err
		}
		if area < 0 {
			return nil, &FormatError{TokenIndex: t.index, Expected: "non-negative area", Found: strconv.Itoa(area)}
		}
		areas[idx] = uint(area)
		seen[idx] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, &FormatError{TokenIndex: t.index, Expected: "every cell index listed once", Found: fmt.Sprintf("cell %d missing", i)}
		}
	}

	if err := t.nextKeyword(".net"); err != nil {
		return nil, err
	}
	numNets, err := t.nextInt("net count")
	if err != nil {
		return nil, err
	}

	nets := make([][]hypergraph.CellId, numNets)
	for n := 0; n < numNets; n++ {
		k, err := t.nextInt("net size")
		if err != nil {
			return nil, err
		}
		if k <= 0 {
			return nil, &FormatError{TokenIndex: t.index, Expected: "positive net size", Found: strconv.Itoa(k)}
		}
		cells := make([]hypergraph.CellId, k)
		for j := 0; j < k; j++ {
			c, err := t.nextInt("cell id in net")
			if err != nil {
				return nil, err
			}
			cells[j] = hypergraph.CellId(c)
		}
		nets[n] = cells
	}

	return hypergraph.NewInput(uint(aMax), areas, nets)
}
