// Package grid implements the fixed-width, growable character surface the
// renderer writes into and the pager reads from.
//
// Coordinates are 0-based (row, col) in cells; one rune occupies one cell.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// TabWidth is the distance between tab stops.
const TabWidth = 8

// ErrAllocation is returned when a buffer cannot be created with the
// requested dimensions.
var ErrAllocation = errors.New("allocation failed")

// Buffer is a rows x width grid of runes with a write cursor.
//
// The width never changes. The height only grows, one row at a time, and only
// when a write would move the cursor past the last row.
type Buffer struct {
	cells [][]rune
	width int

	row int
	col int
}

// New allocates a blank buffer of height rows and width columns.
func New(height, width int) (*Buffer, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", height, width, ErrAllocation)
	}
	b := &Buffer{
		cells: make([][]rune, 0, height),
		width: width,
	}
	for i := 0; i < height; i++ {
		b.GrowRow()
	}
	return b, nil
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return len(b.cells) }

// Cursor returns the position the next rune will be committed at.
func (b *Buffer) Cursor() (row, col int) { return b.row, b.col }

// GrowRow appends one blank row.
func (b *Buffer) GrowRow() {
	row := make([]rune, b.width)
	for i := range row {
		row[i] = ' '
	}
	b.cells = append(b.cells, row)
}

// Break ends the current row: the cursor moves to column 0 of the next row,
// growing the buffer when the cursor is on the last row.
func (b *Buffer) Break() {
	if b.row >= len(b.cells)-1 {
		b.GrowRow()
	}
	b.row++
	b.col = 0
}

// WriteRune commits r at the cursor and advances it.
//
// '\n' ends the row. '\t' fills blanks up to the next tab stop but never
// reaches the last column. Any other rune committed in the last column moves
// the cursor to the next row.
func (b *Buffer) WriteRune(r rune) {
	switch r {
	case '\n':
		b.Break()
		return
	case '\t':
		stop := (b.col/TabWidth + 1) * TabWidth
		if stop > b.width-1 {
			stop = b.width - 1
		}
		for b.col < stop {
			b.cells[b.row][b.col] = ' '
			b.col++
		}
		return
	}
	b.cells[b.row][b.col] = r
	b.col++
	if b.col >= b.width {
		b.Break()
	}
}

// WriteString writes every rune of s.
func (b *Buffer) WriteString(s string) {
	for _, r := range s {
		b.WriteRune(r)
	}
}

// Row returns a copy of row i, or nil when i is out of range.
func (b *Buffer) Row(i int) []rune {
	if i < 0 || i >= len(b.cells) {
		return nil
	}
	out := make([]rune, len(b.cells[i]))
	copy(out, b.cells[i])
	return out
}

// Line returns row i as a string without trailing blanks.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.cells) {
		return ""
	}
	return strings.TrimRight(string(b.cells[i]), " ")
}

// Lines returns every row as in Line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.cells))
	for i := range b.cells {
		out[i] = b.Line(i)
	}
	return out
}

func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
