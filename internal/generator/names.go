package generator

import (
	"path/filepath"
	"strings"
)

// identifier turns s into a valid C-family identifier by replacing every
// character outside [A-Za-z0-9_] with '_' and prefixing a leading digit.
func identifier(s string) string {
	if s == "" {
		return "_"
	}
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// includeGuard derives the C include guard macro from the output file name.
// "gen/logo.h" becomes "LOGO_H_INCLUDED".
func includeGuard(destination string) string {
	return strings.ToUpper(identifier(filepath.Base(destination))) + "_INCLUDED"
}

// DefaultVarName derives a variable name from the input file name.
// "assets/logo.png" becomes "logo_png".
func DefaultVarName(inputPath string) string {
	return identifier(filepath.Base(inputPath))
}

// DefaultClassName derives a class name from the input file name.
// "assets/logo.png" becomes "LogoPng".
func DefaultClassName(inputPath string) string {
	var b strings.Builder
	for _, part := range strings.Split(DefaultVarName(inputPath), "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	name := b.String()
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "_" + name
	}
	return name
}
