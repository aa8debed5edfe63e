package line

import (
	"bufio"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	//DefaultTabWidth defines default tab stop width
	DefaultTabWidth = 8
	//DefaultIndent defines default indentation unit
	DefaultIndent = "  "

	tabGap = "  "
)

// Writer is a line builder tracking the display column since the last line break.
// The first write error is retained; subsequent writes are no-ops.
type Writer struct {
	dest     *bufio.Writer
	indent   string
	tabWidth int
	column   int
	width    *runewidth.Condition
	err      error
}

// Column returns display columns written since the last line break
func (w *Writer) Column() int {
	return w.column
}

// Err returns the first write error
func (w *Writer) Err() error {
	return w.err
}

// WriteString writes text, text is expected not to contain line breaks
func (w *Writer) WriteString(text string) {
	if w.err != nil || text == "" {
		return
	}
	if _, err := w.dest.WriteString(text); err != nil {
		w.err = err
		return
	}
	w.column += w.width.StringWidth(text)
}

// Indent writes indentation for the supplied level
func (w *Writer) Indent(level int) {
	if level <= 0 {
		return
	}
	w.WriteString(strings.Repeat(w.indent, level))
}

// Tab writes a separator gap and pads to the next tab stop
func (w *Writer) Tab() {
	w.WriteString(tabGap)
	if w.tabWidth <= 0 {
		return
	}
	if rem := w.column % w.tabWidth; rem != 0 {
		w.WriteString(strings.Repeat(" ", w.tabWidth-rem))
	}
}

// NewLine terminates the current line
func (w *Writer) NewLine() {
	if w.err != nil {
		return
	}
	if err := w.dest.WriteByte('\n'); err != nil {
		w.err = err
		return
	}
	w.column = 0
}

// Flush flushes buffered output, returns the first error encountered
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.dest.Flush()
	return w.err
}

// New creates a line writer, ambiguous width runes always count as a single column
func New(dest io.Writer, indent string, tabWidth int) *Writer {
	return &Writer{
		dest:     bufio.NewWriter(dest),
		indent:   indent,
		tabWidth: tabWidth,
		width:    &runewidth.Condition{EastAsianWidth: false},
	}
}
