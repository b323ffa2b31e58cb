package generator

import "github.com/makebytes/makebytes/internal/textwriter"

// emitC writes a C header with an include guard derived from the output file name.
func (g *Generator) emitC(d Descriptor, w *textwriter.Writer) error {
	var guard string
	if !d.IsConsole() {
		guard = includeGuard(d.Destination)
		w.Printf("#ifndef %s\n", guard)
		w.Printf("#define %s\n", guard)
		w.WriteString("\n")
		w.WriteString("#include <stddef.h>\n")
		w.WriteString("#include <stdint.h>\n")
		w.WriteString("\n")
		w.Printf("static const uint8_t %s[] = ", d.VarName)
	}

	if err := g.writeArray(w, d, false); err != nil {
		return err
	}

	if !d.IsConsole() {
		w.WriteString("\n")
		w.Printf("#endif // %s\n", guard)
	}
	return nil
}

// writeArray writes the brace delimited byte list, closing with "};" for file output.
func (g *Generator) writeArray(w *textwriter.Writer, d Descriptor, signed bool) error {
	w.OpenBrace()
	if err := WriteBytes(w, g.data, g.byteFormat(signed)); err != nil {
		return err
	}
	w.CloseBrace(!d.IsConsole())
	return nil
}
