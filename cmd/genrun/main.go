// genrun drives suspendable value generators declared in a YAML scenario
// file, either interleaved on a single goroutine or in parallel with one
// goroutine per instance.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/primlock/generator"
	"github.com/primlock/generator/tracing"
)

const version = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "genrun"
	app.Usage = "drive suspendable value generators from a scenario file"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "scenario.yaml",
			Usage: "load the scenario from `FILE`",
		},
		cli.BoolFlag{
			Name:  "parallel, p",
			Usage: "drain each sequence on its own goroutine",
		},
		cli.StringFlag{
			Name:  "trace",
			Usage: "write OpenTelemetry spans to `FILE`",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	scenario, err := LoadScenario(c.String("config"))
	if err != nil {
		return err
	}

	traced := false
	if traceFile := c.String("trace"); traceFile != "" {
		if err := tracing.Init("genrun", version, traceFile); err != nil {
			return err
		}
		traced = true
	}

	if c.Bool("parallel") {
		return runParallel(scenario, traced, os.Stdout)
	}
	return runInterleaved(scenario, traced, os.Stdout)
}

func instantiate(seq *Sequence, traced bool) (generator.Generator[int], error) {
	g, err := seq.Generator()
	if err != nil {
		return g, err
	}
	if traced {
		g = tracing.Instrument(context.Background(), "resume/"+seq.Name, g)
	}
	return g, nil
}

// runInterleaved advances every sequence in turn, one value per round, so
// the output shows independently progressing instances of the same producer
// definitions.
func runInterleaved(scenario *Scenario, traced bool, w io.Writer) error {
	gens := make([]generator.Generator[int], len(scenario.Sequences))
	for i := range scenario.Sequences {
		g, err := instantiate(&scenario.Sequences[i], traced)
		if err != nil {
			return err
		}
		gens[i] = g
	}

	for active := true; active; {
		active = false
		for i, g := range gens {
			if !g.Next() {
				if err := g.Err(); err != nil {
					return fmt.Errorf("sequence %q: %w", scenario.Sequences[i].Name, err)
				}
				continue
			}
			active = true
			fmt.Fprintf(w, "%s: %d\n", scenario.Sequences[i].Name, g.Value())
		}
	}
	return nil
}

// runParallel drains each sequence on its own goroutine. Every handle stays
// confined to the goroutine that created it; only the output writer is
// shared.
func runParallel(scenario *Scenario, traced bool, w io.Writer) error {
	var group errgroup.Group
	for i := range scenario.Sequences {
		seq := &scenario.Sequences[i]
		group.Go(func() error {
			g, err := instantiate(seq, traced)
			if err != nil {
				return err
			}
			err = generator.Run(g, func(v int) {
				fmt.Fprintf(w, "%s: %d\n", seq.Name, v)
			})
			if err != nil {
				return fmt.Errorf("sequence %q: %w", seq.Name, err)
			}
			return nil
		})
	}
	return group.Wait()
}
