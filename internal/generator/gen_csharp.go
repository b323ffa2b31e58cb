package generator

import "github.com/makebytes/makebytes/internal/textwriter"

// emitCSharp writes a static class exposing the bytes as Data.
// A namespace is required.
func (g *Generator) emitCSharp(d Descriptor, w *textwriter.Writer) error {
	if d.Namespace == "" {
		return ErrNamespaceRequired
	}

	if !d.IsConsole() {
		visibility := "internal"
		if g.isPublic() {
			visibility = "public"
		}

		w.Printf("namespace %s\n", d.Namespace)
		w.OpenBrace()
		w.Printf("%s static class %s\n", visibility, d.VarName)
		w.OpenBrace()
		w.WriteString("public static readonly byte[] Data = new byte[]\n")
	}

	if err := g.writeArray(w, d, false); err != nil {
		return err
	}

	if !d.IsConsole() {
		w.CloseBrace(false)
		w.CloseBrace(false)
	}
	return nil
}
