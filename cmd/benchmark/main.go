package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/memotree/boxed"
	"github.com/delaneyj/memotree/memo"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	leafCounts = []int{2, 16, 256, 4_096}
	iters      = 1_000
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkMemo(true)
	benchmarkBoxed(true)
}

func benchmarkMemo(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("memo (static tree)")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "checksum"})

	for _, leafCount := range leafCounts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		srcs := make([]int, leafCount)
		for i := range srcs {
			srcs[i] = i
		}
		root := buildMemoSum(srcs)
		memo.Reevaluate(root)

		digest := xxhash.New()
		var buf [8]byte
		for i := 0; i < iters; i++ {
			srcs[i%leafCount]++
			start := time.Now()
			sum := memo.Reevaluate(root)
			tach.AddTime(time.Since(start))

			binary.LittleEndian.PutUint64(buf[:], uint64(sum))
			digest.Write(buf[:])
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("reevaluate: %d leaves", leafCount),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
				fmt.Sprintf("%016x", digest.Sum64()),
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkBoxed(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("boxed (dynamic tree)")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "checksum"})

	for _, leafCount := range leafCounts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		srcs := make([]int, leafCount)
		for i := range srcs {
			srcs[i] = i
		}
		root, err := buildBoxedSum(srcs)
		if err != nil {
			log.Fatal(err)
		}
		boxed.Reevaluate(root)

		digest := xxhash.New()
		var buf [8]byte
		for i := 0; i < iters; i++ {
			srcs[i%leafCount]++
			start := time.Now()
			sum := boxed.Reevaluate(root).(int)
			tach.AddTime(time.Since(start))

			binary.LittleEndian.PutUint64(buf[:], uint64(sum))
			digest.Write(buf[:])
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("reevaluate: %d leaves", leafCount),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
				fmt.Sprintf("%016x", digest.Sum64()),
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

// buildMemoSum folds the sources into a balanced tree of binary adds.
func buildMemoSum(srcs []int) memo.Value[int] {
	nodes := make([]memo.Value[int], len(srcs))
	for i := range srcs {
		nodes[i] = memo.In(&srcs[i])
	}
	for len(nodes) > 1 {
		next := make([]memo.Value[int], 0, (len(nodes)+1)/2)
		for i := 0; i+1 < len(nodes); i += 2 {
			next = append(next, memo.Add(nodes[i], nodes[i+1]))
		}
		if len(nodes)%2 == 1 {
			next = append(next, nodes[len(nodes)-1])
		}
		nodes = next
	}
	return nodes[0]
}

func addBoxed(args []any) any {
	return args[0].(int) + args[1].(int)
}

func buildBoxedSum(srcs []int) (boxed.Node, error) {
	nodes := make([]boxed.Node, len(srcs))
	for i := range srcs {
		nodes[i] = boxed.In(&srcs[i])
	}
	for len(nodes) > 1 {
		next := make([]boxed.Node, 0, (len(nodes)+1)/2)
		for i := 0; i+1 < len(nodes); i += 2 {
			op, err := boxed.NewOp("add", 2, addBoxed, nodes[i], nodes[i+1])
			if err != nil {
				return nil, err
			}
			next = append(next, op)
		}
		if len(nodes)%2 == 1 {
			next = append(next, nodes[len(nodes)-1])
		}
		nodes = next
	}
	return nodes[0], nil
}
