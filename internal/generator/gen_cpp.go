package generator

import "github.com/makebytes/makebytes/internal/textwriter"

// emitCpp writes a C++ header guarded by #pragma once.
func (g *Generator) emitCpp(d Descriptor, w *textwriter.Writer) error {
	if !d.IsConsole() {
		w.WriteString("#pragma once\n")
		w.WriteString("\n")
		w.WriteString("#include <cstddef>\n")
		w.WriteString("#include <cstdint>\n")
		w.WriteString("\n")
		w.Printf("static const uint8_t %s[] = ", d.VarName)
	}
	return g.writeArray(w, d, false)
}
