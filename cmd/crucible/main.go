// Command crucible reads a grid of single-digit heat-loss values and prints
// the minimum heat loss of a route from the top-left to the bottom-right
// cell, moving in straight runs between -min and -max cells long.
//
//	crucible input.txt            # runs 1..3
//	crucible -part2 input.txt     # runs 4..10
//	crucible -min 2 -max 6 < input.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/grid"
)

// exitUnreachable is the status for a well-formed grid with no legal route.
const exitUnreachable = 2

func main() {
	log.SetFlags(0)
	os.Exit(crucibleMain(os.Args[1:]))
}

// crucibleMain returns the process exit status so that deferred cleanup
// (the profile in particular) runs before os.Exit.
func crucibleMain(args []string) int {
	cfg, err := parseArgs(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if !errors.Is(err, errUsage) {
			log.Println(err)
		}
		return 1
	}

	if cfg.Profile != "" {
		f, err := os.Create(cfg.Profile)
		if err != nil {
			log.Println(err)
			return 1
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Println("fgprof:", err)
			}
			f.Close()
		}()
	}

	err = run(context.Background(), cfg, os.Stdin, os.Stdout, os.Stderr)
	switch {
	case errors.Is(err, crucible.ErrUnreachable):
		log.Println(err)
		return exitUnreachable
	case err != nil:
		log.Println(err)
		return 1
	}
	return 0
}

// run loads the grid named by cfg.Input (or stdin) and prints the cost.
func run(ctx context.Context, cfg config, stdin io.Reader, stdout, stderr io.Writer) error {
	in := stdin
	if cfg.Input != "" && cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	g, err := grid.Parse(in)
	if err != nil {
		return err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	if cfg.Verbose {
		pretty.Fprintf(stderr, "%# v\n", cfg)
		fmt.Fprintf(stderr, "grid %dx%d, cell costs %d..%d\n", g.Width(), g.Height(), g.MinCost(), g.MaxCost())
	}

	res, err := crucible.SolveWith(g, crucible.NewRequest(g, cfg.MinRun, cfg.MaxRun),
		crucible.WithContext(ctx),
		crucible.WithHeuristic(cfg.Heuristic),
		crucible.WithTieBreak(cfg.TieBreak),
	)
	if cfg.Verbose {
		st := res.Stats
		fmt.Fprintf(stderr, "expanded %s, discovered %s, pushed %s, stale %s, peak frontier %s\n",
			humanize.Comma(int64(st.Expanded)),
			humanize.Comma(int64(st.Discovered)),
			humanize.Comma(int64(st.Pushed)),
			humanize.Comma(int64(st.Stale)),
			humanize.Comma(int64(st.MaxFrontier)),
		)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, res.Cost)
	return nil
}
