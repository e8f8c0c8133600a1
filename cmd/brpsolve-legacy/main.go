// Command brpsolve-legacy is the second CLI generation, built on
// urfave/cli/v2 the way the teacher kept an older cmd/main alongside
// its current cmd/keycraft. It doubles as the entry point for the
// reference/oracle solver, so a user (or a script) can compare the
// production solver's answer against the slow, independently-written
// one on a real instance file without reaching for `go test`.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rbscholtus/brp-idbb/internal/brp"
	"github.com/rbscholtus/brp-idbb/internal/instance"
	"github.com/rbscholtus/brp-idbb/internal/oracle"
	"github.com/rbscholtus/brp-idbb/internal/render"
)

func main() {
	app := &cli.App{
		Name:  "brpsolve-legacy",
		Usage: "reference/oracle Block Relocation Problem solver, for cross-checking brpsolve",
		Commands: []*cli.Command{
			solveCommand(),
			diffCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "brpsolve-legacy:", err)
		os.Exit(1)
	}
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "solve one instance with the oracle implementation",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true},
			&cli.IntFlag{Name: "max_depth", Usage: "iterative-deepening depth cap, 0 for instance.Blocks*instance.Tiers"},
			&cli.BoolFlag{Name: "tanaka", Usage: "use the stricter Tanaka-variant retrieval-block dominance rule"},
		},
		Action: func(c *cli.Context) error {
			inst, err := instance.ReadFile(c.String("input"))
			if err != nil {
				return err
			}
			fmt.Println(render.InstanceGrid(inst))

			result, ok := oracle.Solve(inst, oracle.Options{
				RulesByTanaka: c.Bool("tanaka"),
				MaxDepth:      c.Int("max_depth"),
			})
			if !ok {
				fmt.Println("infeasible")
				os.Exit(2)
			}
			fmt.Printf("relocations: %d\n", result.BestUB)
			for i, r := range result.Path {
				fmt.Printf("  %3d: priority %d, stack %d -> stack %d\n", i+1, r.Pri, r.Src, r.Dst)
			}
			return nil
		},
	}
}

func diffCommand() *cli.Command {
	return &cli.Command{
		Name:  "diff",
		Usage: "solve one instance with both brpsolve's canonical solver and the oracle, and report any disagreement",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			inst, err := instance.ReadFile(c.String("input"))
			if err != nil {
				return err
			}

			canonical := brp.Solve(inst, 0, nil)
			reference, ok := oracle.Solve(inst, oracle.Options{})

			switch {
			case canonical == nil && !ok:
				fmt.Println("both solvers agree: infeasible")
			case canonical == nil || !ok:
				fmt.Printf("DISAGREEMENT on feasibility: brp nil=%v oracle ok=%v\n", canonical == nil, ok)
				os.Exit(1)
			case canonical.BestUB != reference.BestUB:
				fmt.Printf("DISAGREEMENT: brp=%d oracle=%d\n", canonical.BestUB, reference.BestUB)
				os.Exit(1)
			default:
				fmt.Printf("agree: %d relocations\n", canonical.BestUB)
			}
			return nil
		},
	}
}
