package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/delaneyj/memotree/memo"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Sweeps the fraction of changed inputs per reevaluation to show where the
// memoization pays for itself: at 0 the marking pass is all there is, at 1
// every node recomputes anyway.

type sweepConfig struct {
	leafCount       int
	iterations      int
	changeFractions []float64
}

func main() {
	log.Print("Starting change-fraction sweep, please wait...")
	defer log.Print("Finished change-fraction sweep")

	cfg := &sweepConfig{
		leafCount:       4_096,
		iterations:      200,
		changeFractions: []float64{0, 0.01, 0.1, 0.5, 1},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"leaves", "changed%", "nTimes", "opsApplied", "time", "opsPerMs",
	})

	for _, fraction := range cfg.changeFractions {
		opsApplied, duration := runSweep(cfg, fraction)

		opsPerMs := float64(opsApplied) / (float64(duration) / float64(time.Millisecond))
		table.Append([]string{
			humanize.Comma(int64(cfg.leafCount)),
			fmt.Sprintf("%0.f", fraction*100),
			humanize.Comma(int64(cfg.iterations)),
			humanize.Comma(opsApplied),
			fmt.Sprint(duration),
			humanize.Comma(int64(opsPerMs)),
		})
	}

	table.Render()
}

func runSweep(cfg *sweepConfig, changeFraction float64) (opsApplied int64, duration time.Duration) {
	counter := new(int64)
	srcs := make([]int, cfg.leafCount)
	for i := range srcs {
		srcs[i] = i
	}
	root := buildCountingSum(srcs, counter)

	// First pass computes everything; the sweep measures steady state.
	memo.Reevaluate(root)
	*counter = 0

	random := rand.New(rand.NewSource(0))
	changeCount := int(math.Round(float64(cfg.leafCount) * changeFraction))

	start := time.Now()
	for i := 0; i < cfg.iterations; i++ {
		for c := 0; c < changeCount; c++ {
			srcs[random.Intn(cfg.leafCount)]++
		}
		memo.Reevaluate(root)
	}
	return *counter, time.Since(start)
}

func buildCountingSum(srcs []int, counter *int64) memo.Value[int] {
	add := func(x, y int) int {
		*counter++
		return x + y
	}

	nodes := make([]memo.Value[int], len(srcs))
	for i := range srcs {
		nodes[i] = memo.In(&srcs[i])
	}
	for len(nodes) > 1 {
		next := make([]memo.Value[int], 0, (len(nodes)+1)/2)
		for i := 0; i+1 < len(nodes); i += 2 {
			next = append(next, memo.Op2(nodes[i], nodes[i+1], add))
		}
		if len(nodes)%2 == 1 {
			next = append(next, nodes[len(nodes)-1])
		}
		nodes = next
	}
	return nodes[0]
}
