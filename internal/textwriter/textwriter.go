// Package textwriter provides a text buffer that tracks brace nesting and
// indents every line it writes accordingly.
package textwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const indentUnit = "  "

// Writer accumulates generated source text.
// When indentation is enabled, the current indentation prefix is emitted
// before the first write that follows a newline.
type Writer struct {
	buf      strings.Builder
	depth    int
	prefix   string
	noIndent bool
}

// New returns an empty Writer with indentation enabled.
func New() *Writer {
	w := &Writer{}
	w.buf.Grow(2048)
	return w
}

// Reset clears the contents and the indentation depth.
func (w *Writer) Reset() {
	w.buf.Reset()
	w.depth = 0
	w.prefix = ""
}

// SetIndentation enables or disables automatic indentation.
func (w *Writer) SetIndentation(enabled bool) {
	w.noIndent = !enabled
}

// Depth returns the current indentation depth.
func (w *Writer) Depth() int {
	return w.depth
}

// Indent increases the indentation depth by one level.
func (w *Writer) Indent() {
	w.depth++
	w.prefix = strings.Repeat(indentUnit, w.depth)
}

// Unindent decreases the indentation depth by one level.
// It panics if the depth is already zero, which indicates unbalanced braces.
func (w *Writer) Unindent() {
	if w.depth == 0 {
		panic("textwriter: unbalanced Unindent")
	}
	w.depth--
	w.prefix = strings.Repeat(indentUnit, w.depth)
}

// OpenBrace writes "{" followed by a newline and indents.
func (w *Writer) OpenBrace() {
	w.WriteString("{\n")
	w.Indent()
}

// CloseBrace unindents and writes "}" (or "};" when semicolon is set) and a newline.
func (w *Writer) CloseBrace(semicolon bool) {
	w.Unindent()
	if semicolon {
		w.WriteString("};")
	} else {
		w.WriteString("}")
	}
	w.WriteString("\n")
}

// WriteString appends s. It never fails; the error is always nil.
func (w *Writer) WriteString(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if w.atLineStart() && s[0] != '\n' {
		w.buf.WriteString(w.prefix)
	}
	return w.buf.WriteString(s)
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteString(string(p))
}

// Printf formats according to a format specifier and appends the result.
func (w *Writer) Printf(format string, a ...any) {
	w.WriteString(fmt.Sprintf(format, a...))
}

// String returns the accumulated contents.
func (w *Writer) String() string {
	return w.buf.String()
}

// Len returns the number of accumulated bytes.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteTo writes the accumulated contents to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := io.WriteString(dst, w.buf.String())
	return int64(n), err
}

// SaveToDisk writes the contents to path, creating parent directories as needed.
//
// Parameters:
//   - path: The destination file path. Must not be empty.
//
// Returns:
//   - error: An error if the directory cannot be created or the file cannot be written.
func (w *Writer) SaveToDisk(path string) error {
	if path == "" {
		return fmt.Errorf("no output path given")
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(w.buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to open %q for writing: %w", path, err)
	}
	return nil
}

func (w *Writer) atLineStart() bool {
	if w.noIndent || w.buf.Len() == 0 {
		return false
	}
	s := w.buf.String()
	return s[len(s)-1] == '\n'
}
