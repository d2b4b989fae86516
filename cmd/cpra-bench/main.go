// Command cpra-bench is the sweep driver: it loads a graph, symmetrizes
// it, and runs both the COPRA and SLPA engines across a label-count and
// tolerance sweep, entirely outside the copra/slpa/cpra packages
// themselves.
//
// With -file pointing at a Matrix Market coordinate file, that file is
// loaded and symmetrized. Without -file, a demo graph is built with
// builder.Cycle/builder.RandomSparse.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvlath-cpra/builder"
	"github.com/katalvlaran/lvlath-cpra/copra"
	"github.com/katalvlaran/lvlath-cpra/core"
	"github.com/katalvlaran/lvlath-cpra/cpra"
	"github.com/katalvlaran/lvlath-cpra/graphview"
	"github.com/katalvlaran/lvlath-cpra/slpa"
)

var copraSweep = []int{1, 2, 4, 8, 16, 32}
var slpaSweep = []int{4, 8, 16, 32, 64}
var tolSweep = []float64{0.1, 0.01, 0.001}

func main() {
	file := flag.String("file", "", "Matrix Market coordinate file (omit for a demo graph)")
	demoN := flag.Int("n", 64, "vertex count for the demo graph when -file is omitted")
	demoP := flag.Float64("p", 0.1, "edge probability for the demo graph's random-sparse constructor")
	seed := flag.Int64("seed", 1, "seed for both the demo graph and SLPA's speaker draw")
	flag.Parse()

	g, span, err := loadGraph(*file, *demoN, *demoP, *seed)
	if err != nil {
		log.Fatalf("cpra-bench: %v", err)
	}
	log.Printf("cpra-bench: graph loaded, span=%d order=%d", span, g.Order())

	for _, l := range copraSweep {
		for _, tol := range tolSweep {
			res, err := copra.Static(g, nil, l, cpra.WithTolerance(tol), cpra.WithSeed(*seed))
			if err != nil {
				log.Fatalf("cpra-bench: copra L=%d tol=%v: %v", l, tol, err)
			}
			report("copra", l, tol, res)
		}
	}
	for _, l := range slpaSweep {
		for _, tol := range tolSweep {
			res, err := slpa.Static(g, nil, l, cpra.WithTolerance(tol), cpra.WithSeed(*seed))
			if err != nil {
				log.Fatalf("cpra-bench: slpa L=%d tol=%v: %v", l, tol, err)
			}
			report("slpa", l, tol, res)
		}
	}

	os.Exit(0)
}

func report(flavor string, l int, tol float64, res cpra.Result) {
	communities := make(map[int]struct{}, len(res.Membership))
	for _, c := range res.Membership {
		communities[c] = struct{}{}
	}
	log.Printf("%-6s L=%-3d tol=%-7g iterations=%-4d communities=%-5d time=%s",
		flavor, l, tol, res.Iterations, len(communities), res.Time.Round(time.Microsecond))
}

// loadGraph returns a graphview.Graph and its span, either from a Matrix
// Market file or from a demo graph built with builder.Cycle and
// builder.RandomSparse.
func loadGraph(path string, n int, p float64, seed int64) (graphview.Graph, int, error) {
	if path == "" {
		return buildDemoGraph(n, p, seed)
	}
	return loadMatrixMarket(path)
}

func buildDemoGraph(n int, p float64, seed int64) (graphview.Graph, int, error) {
	rng := rand.New(rand.NewSource(seed))
	cg, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted(), core.WithMultiEdges()},
		[]builder.BuilderOption{builder.WithRand(rng), builder.WithUniformWeight(1, 5)},
		builder.Cycle(n),
		builder.RandomSparse(n, p),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("cpra-bench: build demo graph: %w", err)
	}

	ids := cg.Vertices()
	idx := graphview.NewMapIndex(ids)
	span := len(ids)
	return graphview.NewFromCore(cg, idx, span), span, nil
}

// loadMatrixMarket parses a Matrix Market coordinate file (real or
// pattern, general or symmetric) into a graphview.Dense graph, symmetrizing
// general matrices by adding both (u,v) and (v,u) here at the driver
// boundary rather than inside the engine. 1-based Matrix Market indices
// are converted to 0-based dense keys.
func loadMatrixMarket(path string) (graphview.Graph, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var g *graphview.Dense
	var symmetric, pattern bool
	header := true
	dimsRead := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "%%MatrixMarket") {
			fields := strings.Fields(line)
			for _, field := range fields {
				switch strings.ToLower(field) {
				case "symmetric":
					symmetric = true
				case "pattern":
					pattern = true
				}
			}
			continue
		}
		if strings.HasPrefix(line, "%") {
			continue
		}
		if !dimsRead {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, 0, fmt.Errorf("%s: malformed dimensions line %q", path, line)
			}
			rows, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, 0, fmt.Errorf("%s: rows: %w", path, err)
			}
			span := rows
			if cols, err := strconv.Atoi(fields[1]); err == nil && cols > span {
				span = cols
			}
			g = graphview.NewDense(span)
			dimsRead = true
			header = false
			continue
		}
		if header {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		r, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, 0, fmt.Errorf("%s: row index: %w", path, err)
		}
		c, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, 0, fmt.Errorf("%s: col index: %w", path, err)
		}
		w := 1.0
		if !pattern && len(fields) >= 3 {
			w, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, 0, fmt.Errorf("%s: weight: %w", path, err)
			}
		}
		u, v := r-1, c-1
		if symmetric {
			g.AddUndirectedEdge(u, v, w)
		} else {
			g.AddEdge(u, v, w)
			g.AddEdge(v, u, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	if g == nil {
		return nil, 0, fmt.Errorf("%s: no dimensions line found", path)
	}
	g.SortEdges()
	return g, g.Span(), nil
}
