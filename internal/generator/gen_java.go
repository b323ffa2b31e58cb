package generator

import "github.com/makebytes/makebytes/internal/textwriter"

// emitJava writes a non-instantiable class with a getData accessor.
// Bytes above 127 are cast since Java bytes are signed.
func (g *Generator) emitJava(d Descriptor, w *textwriter.Writer) error {
	if !d.IsConsole() {
		if d.Namespace != "" {
			w.Printf("package %s;\n", d.Namespace)
			w.WriteString("\n")
		}

		w.Printf("public class %s ", d.VarName)
		w.OpenBrace()

		w.Printf("private %s() ", d.VarName)
		w.OpenBrace()
		w.WriteString("// Not instantiable.\n")
		w.CloseBrace(false)
		w.WriteString("\n")

		w.WriteString("public static byte[] getData() ")
		w.OpenBrace()
		w.WriteString("return m_Data;\n")
		w.CloseBrace(false)
		w.WriteString("\n")

		w.WriteString("private static final byte[] m_Data = ")
	}

	if err := g.writeArray(w, d, true); err != nil {
		return err
	}

	if !d.IsConsole() {
		w.CloseBrace(false)
	}
	return nil
}
