package render

import "github.com/hellricer/mandown/internal/grid"

const noIndent rune = 0

// writeText writes s rune by rune, wrapping at the buffer width and putting
// indent at the start of rows. The cursor is re-read before every rune.
//
// A wrap point is either the last usable column (width-1) or a '\n' in s.
// Text never lands in the last column, except when the buffer is at most
// TabWidth+1 wide: a tab glyph then already reaches width-1 and the rune that
// follows it takes the last column, which moves the cursor to the next row.
func writeText(buf *grid.Buffer, s string, indent rune) {
	for _, c := range s {
		row, col := buf.Cursor()

		if col >= buf.Width()-1 || c == '\n' {
			if row >= buf.Height()-1 {
				buf.GrowRow()
			}
			if c == '\n' {
				// glyph, then the break itself ends the row
				putIndent(buf, indent)
				buf.Break()
				continue
			}
			buf.Break()
			putIndent(buf, indent)
		} else if col == 0 {
			putIndent(buf, indent)
		}

		buf.WriteRune(c)
	}
}

func putIndent(buf *grid.Buffer, indent rune) {
	if indent != noIndent {
		buf.WriteRune(indent)
	}
}
