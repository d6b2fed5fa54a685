package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lagraph/core"
)

var errMalformedLine = errors.New("edge list: malformed line")

// readEdgeList parses one edge per line, "from to [relation]", separated
// by whitespace. Text after '#' is ignored and blank lines are skipped.
// Edges without a relation get defaultRelation. Loops and repeated edges
// are accepted.
func readEdgeList(r io.Reader, defaultRelation string) (*core.Graph, error) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 0:
			continue
		case 2:
			fields = append(fields, defaultRelation)
		case 3:
		default:
			return nil, fmt.Errorf("line %d: %d fields: %w", line, len(fields), errMalformedLine)
		}
		if _, err := g.AddEdge(fields[0], fields[1], fields[2]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edge list: %w", err)
	}

	return g, nil
}

func loadEdgeList(path, defaultRelation string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := readEdgeList(f, defaultRelation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
