package render

import (
	"strings"
	"testing"

	"github.com/hellricer/mandown/internal/doc"
	"github.com/hellricer/mandown/internal/grid"
)

func TestWriteText_EmptyRunIsNoop(t *testing.T) {
	buf := newBuf(t, 1, 10)
	writeText(buf, "", '\t')
	if r, c := buf.Cursor(); r != 0 || c != 0 || buf.Height() != 1 {
		t.Fatalf("cursor (%d,%d) height %d after empty run", r, c, buf.Height())
	}
}

func TestWriteText_ParagraphWrapsWithIndent(t *testing.T) {
	const width = 20
	buf := newBuf(t, 1, width)
	New(buf).Render(doc.Element("p", doc.Text(strings.Repeat("a", 30))))

	if buf.Height() < 2 {
		t.Fatalf("expected at least one wrap, height %d", buf.Height())
	}
	// 11 runes fit between the tab stop and the last column.
	want := []string{tabCells + strings.Repeat("a", 11), tabCells + strings.Repeat("a", 11), tabCells + strings.Repeat("a", 8)}
	for i, w := range want {
		if got := buf.Line(i); got != w {
			t.Fatalf("line %d: got %q, want %q", i, got, w)
		}
	}
}

func TestWriteText_NeverWritesLastColumn(t *testing.T) {
	for _, width := range []int{10, 17, 33, 80} {
		buf := newBuf(t, 1, width)
		text := strings.Repeat("lorem ipsum dolor sit amet ", 20)
		New(buf).Render(doc.Element("p", doc.Text(text), doc.Text("\n"+text)))
		for i := 0; i < buf.Height(); i++ {
			row := buf.Row(i)
			if len(row) != width {
				t.Fatalf("width %d: row %d has %d cells", width, i, len(row))
			}
			if row[width-1] != ' ' {
				t.Fatalf("width %d: row %d has %q in the last column", width, i, row[width-1])
			}
		}
	}
}

func TestWriteText_NarrowBufferOneRunePerRow(t *testing.T) {
	const width = grid.TabWidth + 1
	buf := newBuf(t, 1, width)
	New(buf).Render(doc.Element("p", doc.Text("abc")))
	for i, c := range "abc" {
		row := buf.Row(i)
		if row[width-1] != c {
			t.Fatalf("row %d: got %q in the last column, want %q", i, row[width-1], c)
		}
		if got := buf.Line(i); got != tabCells+string(c) {
			t.Fatalf("line %d: got %q", i, got)
		}
	}
}

func TestWriteText_UnindentedWrap(t *testing.T) {
	buf := newBuf(t, 1, 5)
	writeText(buf, "abcdefghij", noIndent)
	want := []string{"abcd", "efgh", "ij"}
	for i, w := range want {
		if got := buf.Line(i); got != w {
			t.Fatalf("line %d: got %q, want %q", i, got, w)
		}
	}
	if buf.Height() != 3 {
		t.Fatalf("height: got %d, want 3", buf.Height())
	}
}

func TestWriteText_BreakCharacter(t *testing.T) {
	buf := newBuf(t, 1, 40)
	writeText(buf, "a\nb", '\t')
	if got := buf.Line(0); got != tabCells+"a" {
		t.Fatalf("line 0: got %q", got)
	}
	if got := buf.Line(1); got != tabCells+"b" {
		t.Fatalf("line 1: got %q", got)
	}
	if buf.Height() != 2 {
		t.Fatalf("height: got %d, want 2", buf.Height())
	}
}

func TestWriteText_BreakAtColumnZeroGetsGlyphFirst(t *testing.T) {
	buf := newBuf(t, 1, 40)
	writeText(buf, "\n", '\t')
	if r, c := buf.Cursor(); r != 1 || c != 0 {
		t.Fatalf("cursor: got (%d,%d), want (1,0)", r, c)
	}
	// The glyph went on the row the break ended, not the new one.
	if got := string(buf.Row(0)[:len(tabCells)]); got != tabCells {
		t.Fatalf("row 0: got %q", got)
	}
	if got := buf.Line(1); got != "" {
		t.Fatalf("row 1: got %q, want blank", got)
	}
}

func TestWriteText_BreakWithoutGlyph(t *testing.T) {
	buf := newBuf(t, 1, 40)
	writeText(buf, "x\n\ny", noIndent)
	want := []string{"x", "", "y"}
	for i, w := range want {
		if got := buf.Line(i); got != w {
			t.Fatalf("line %d: got %q, want %q", i, got, w)
		}
	}
}

func TestWriteText_GrowsOneRowPerWrap(t *testing.T) {
	buf := newBuf(t, 1, 4)
	heights := []int{}
	for _, c := range "abcdefg" {
		writeText(buf, string(c), noIndent)
		heights = append(heights, buf.Height())
	}
	for i := 1; i < len(heights); i++ {
		if d := heights[i] - heights[i-1]; d < 0 || d > 1 {
			t.Fatalf("height step %d: %d -> %d", i, heights[i-1], heights[i])
		}
	}
}
