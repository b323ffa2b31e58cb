package generator

import "github.com/makebytes/makebytes/internal/textwriter"

// emitPython writes an assignment of a bytes object built from a list literal.
func (g *Generator) emitPython(d Descriptor, w *textwriter.Writer) error {
	if !d.IsConsole() {
		w.Printf("%s = ", d.VarName)
	}

	w.WriteString("bytes([\n")
	w.Indent()
	if err := WriteBytes(w, g.data, g.byteFormat(false)); err != nil {
		return err
	}
	w.Unindent()
	w.WriteString("])\n")
	return nil
}
