package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	ini "github.com/vaughan0/go-ini"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/search"
)

// config is the fully resolved command line.
type config struct {
	MinRun    int
	MaxRun    int
	Heuristic crucible.Heuristic
	TieBreak  search.TieBreak
	Timeout   time.Duration
	Verbose   bool
	Profile   string
	Input     string // "" or "-" reads stdin
}

var (
	part1 = config{MinRun: 1, MaxRun: 3}
	part2 = config{MinRun: 4, MaxRun: 10}
)

func defaultConfig() config {
	return part1
}

var errUsage = errors.New("usage")

// parseArgs resolves configuration in increasing precedence:
// defaults, -part2 preset, the -config file, explicitly set flags.
func parseArgs(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("crucible", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: crucible [flags] [grid-file]\n\n")
		fmt.Fprintf(stderr, "Prints the minimum heat loss from the top-left to the bottom-right cell.\n\n")
		fs.PrintDefaults()
	}

	var (
		minRun     = fs.Int("min", part1.MinRun, "minimum straight run before turning or stopping")
		maxRun     = fs.Int("max", part1.MaxRun, "maximum straight run before a turn is forced")
		heuristic  = fs.String("heuristic", "manhattan", "frontier estimator: manhattan or zero")
		tie        = fs.String("tie", "fifo", "tie break for equal priorities: fifo or lowh")
		timeout    = fs.Duration("timeout", 0, "abort the search after this long (0 = no limit)")
		configPath = fs.String("config", "", "INI file with a [search] section")
		verbose    = fs.Bool("v", false, "print resolved configuration and search statistics")
		profile    = fs.String("fgprof", "", "write a wall-clock profile in pprof format to this file")
		usePart2   = fs.Bool("part2", false, "preset runs 4..10 (flags -min/-max still override)")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config{}, err
		}
		// flag has already reported the problem on stderr
		return config{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return config{}, errUsage
	}

	cfg := defaultConfig()
	if *usePart2 {
		cfg.MinRun, cfg.MaxRun = part2.MinRun, part2.MaxRun
	}
	if *configPath != "" {
		file, err := ini.LoadFile(*configPath)
		if err != nil {
			return config{}, fmt.Errorf("error loading config (%s): %s", *configPath, err)
		}
		if cfg, err = applyINI(cfg, file); err != nil {
			return config{}, fmt.Errorf("config %s: %w", *configPath, err)
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "min":
			cfg.MinRun = *minRun
		case "max":
			cfg.MaxRun = *maxRun
		case "heuristic":
			cfg.Heuristic, err = crucible.ParseHeuristic(*heuristic)
		case "tie":
			cfg.TieBreak, err = parseTieBreak(*tie)
		case "timeout":
			cfg.Timeout = *timeout
		}
	})
	if err != nil {
		return config{}, err
	}
	cfg.Verbose = *verbose
	cfg.Profile = *profile
	cfg.Input = fs.Arg(0)

	return cfg, nil
}

// applyINI overlays the [search] section of file onto cfg.
// Recognized keys: min_run, max_run, heuristic, tie_break, timeout.
func applyINI(cfg config, file ini.File) (config, error) {
	section := file.Section("search")
	for key, value := range section {
		var err error
		switch key {
		case "min_run":
			cfg.MinRun, err = strconv.Atoi(value)
		case "max_run":
			cfg.MaxRun, err = strconv.Atoi(value)
		case "heuristic":
			cfg.Heuristic, err = crucible.ParseHeuristic(value)
		case "tie_break":
			cfg.TieBreak, err = parseTieBreak(value)
		case "timeout":
			cfg.Timeout, err = time.ParseDuration(value)
		default:
			err = errors.New("unknown key")
		}
		if err != nil {
			return config{}, fmt.Errorf("[search] %s = %q: %w", key, value, err)
		}
	}
	return cfg, nil
}

func parseTieBreak(s string) (search.TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo", "":
		return search.TieFIFO, nil
	case "lowh", "low-heuristic":
		return search.TieLowHeuristic, nil
	}
	return 0, fmt.Errorf("unknown tie break %q", s)
}
