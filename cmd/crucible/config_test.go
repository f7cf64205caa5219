package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ini "github.com/vaughan0/go-ini"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/search"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := parseArgs(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.MinRun)
	assert.Equal(t, 3, cfg.MaxRun)
	assert.Equal(t, crucible.HeuristicManhattan, cfg.Heuristic)
	assert.Equal(t, search.TieFIFO, cfg.TieBreak)
	assert.Empty(t, cfg.Input)
}

func TestParseArgs_Part2AndOverride(t *testing.T) {
	cfg, err := parseArgs([]string{"-part2", "in.txt"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MinRun)
	assert.Equal(t, 10, cfg.MaxRun)
	assert.Equal(t, "in.txt", cfg.Input)

	cfg, err = parseArgs([]string{"-part2", "-max", "7", "-heuristic", "zero", "-tie", "lowh", "-timeout", "3s"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MinRun)
	assert.Equal(t, 7, cfg.MaxRun)
	assert.Equal(t, crucible.HeuristicZero, cfg.Heuristic)
	assert.Equal(t, search.TieLowHeuristic, cfg.TieBreak)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

// TestParseArgs_ConfigFile: the file overrides defaults, explicit flags
// override the file.
func TestParseArgs_ConfigFile(t *testing.T) {
	path := writeFile(t, "crucible.ini", `
[search]
min_run = 2
max_run = 6
heuristic = dijkstra
timeout = 250ms
`)
	cfg, err := parseArgs([]string{"-config", path}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MinRun)
	assert.Equal(t, 6, cfg.MaxRun)
	assert.Equal(t, crucible.HeuristicZero, cfg.Heuristic)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)

	cfg, err = parseArgs([]string{"-min", "3", "-config", path}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MinRun)
	assert.Equal(t, 6, cfg.MaxRun)
}

func TestParseArgs_Errors(t *testing.T) {
	_, err := parseArgs([]string{"-h"}, io.Discard)
	require.ErrorIs(t, err, flag.ErrHelp)

	_, err = parseArgs([]string{"-nope"}, io.Discard)
	require.ErrorIs(t, err, errUsage)

	_, err = parseArgs([]string{"a", "b"}, io.Discard)
	require.ErrorIs(t, err, errUsage)

	_, err = parseArgs([]string{"-heuristic", "greedy"}, io.Discard)
	require.ErrorIs(t, err, crucible.ErrUnknownHeuristic)

	_, err = parseArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.ini")}, io.Discard)
	require.Error(t, err)
}

func TestApplyINI(t *testing.T) {
	file, err := ini.Load(strings.NewReader("[search]\ntie_break = low-heuristic\nmax_run = 9\n"))
	require.NoError(t, err)
	cfg, err := applyINI(defaultConfig(), file)
	require.NoError(t, err)
	assert.Equal(t, search.TieLowHeuristic, cfg.TieBreak)
	assert.Equal(t, 9, cfg.MaxRun)
	assert.Equal(t, 1, cfg.MinRun)

	for _, body := range []string{
		"[search]\nmin_run = two\n",
		"[search]\ncolour = blue\n",
		"[search]\ntimeout = soon\n",
		"[search]\ntie_break = random\n",
	} {
		file, err := ini.Load(strings.NewReader(body))
		require.NoError(t, err)
		_, err = applyINI(defaultConfig(), file)
		require.Errorf(t, err, "config %q", body)
	}
}

func TestApplyINI_OtherSectionsIgnored(t *testing.T) {
	file, err := ini.Load(strings.NewReader("[output]\ncolour = blue\n"))
	require.NoError(t, err)
	cfg, err := applyINI(defaultConfig(), file)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}
