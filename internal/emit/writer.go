package emit

// Writer accumulates emitted output with indentation handling.
type Writer struct {
	buf         []byte
	indentWidth int
	indentLevel int
	atLineStart bool
}

// NewWriter creates a writer with the given indent width.
func NewWriter(indentWidth int) *Writer {
	if indentWidth <= 0 {
		indentWidth = 4
	}
	return &Writer{
		buf:         make([]byte, 0, 256),
		indentWidth: indentWidth,
	}
}

// String returns the accumulated output.
func (w *Writer) String() string {
	return string(w.buf)
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	for i := 0; i < w.indentLevel*w.indentWidth; i++ {
		w.buf = append(w.buf, ' ')
	}
	w.atLineStart = false
}

// WriteString writes a string, applying pending indentation.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

// Newline ends the current line.
func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// Indent increases the indentation level.
func (w *Writer) Indent() { w.indentLevel++ }

// Dedent decreases the indentation level.
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
