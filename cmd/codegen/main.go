package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/memotree/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outPathKey    = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the per-arity operator nodes for the memo tree",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Maximum operator arity to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outPathKey,
				Usage: "Output file",
				Value: "memo/nodes.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for memo nodes started!")
	defer func() {
		log.Printf("Codegen for memo nodes finished in %v", time.Since(start))
	}()

	arityCount := cmd.Uint(arityCountKey)
	outPath := cmd.String(outPathKey)
	log.Printf("Max arity: %d", arityCount)

	contents := templates.NodesGen(int(arityCount))
	return os.WriteFile(outPath, []byte(contents), 0644)
}
