package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads line-oriented text where every character is one decimal digit
// and builds a Grid from it. Surrounding whitespace on each line is ignored,
// as are blank lines after the last row. A blank line between rows is a
// ragged row and fails with ErrNonRectangular.
//
// Errors are fatal: ErrInvalidCell (wrapped with line and column),
// ErrNonRectangular, ErrEmptyGrid, or the reader's own error.
func Parse(r io.Reader) (*Grid, error) {
	var (
		rows    [][]int
		pending int // blank lines seen since the last row
	)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			pending++
			continue
		}
		if pending > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("%w: blank line before line %d", ErrNonRectangular, line)
		}
		pending = 0

		row := make([]int, 0, len(text))
		for col, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidCell, ch, line, col+1)
			}
			row = append(row, int(ch-'0'))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading input: %w", err)
	}

	return New(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
