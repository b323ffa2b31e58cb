package generator

import (
	"fmt"
	"strings"
)

// ConsoleDestination is the destination that prints output instead of saving it.
const ConsoleDestination = "cout"

// Descriptor is the parsed form of a language option value:
// "[namespace:]varname;destination" or a bare "destination".
type Descriptor struct {
	Namespace   string
	VarName     string
	Destination string
}

// IsConsole reports whether the output should be printed rather than saved.
func (d Descriptor) IsConsole() bool {
	return d.Destination == ConsoleDestination
}

// ParseDescriptor splits a language option value into its parts.
//
// Parameters:
//   - s: The option value, e.g. "MyNs:Var;out.cs" or "out.h".
//
// Returns:
//   - Descriptor: The parsed parts.
//   - error: ErrIllFormed (wrapped) if the value cannot be split.
func ParseDescriptor(s string) (Descriptor, error) {
	semi := strings.IndexByte(s, ';')
	if semi < 0 {
		return Descriptor{Destination: s}, nil
	}

	d := Descriptor{
		VarName:     s[:semi],
		Destination: s[semi+1:],
	}
	if d.Destination == "" {
		return Descriptor{}, fmt.Errorf("%w %q: missing destination", ErrIllFormed, s)
	}

	if colon := strings.IndexByte(d.VarName, ':'); colon >= 0 {
		// The variable name may not contain ':' ("ns:a:b;out" is ill-formed).
		if strings.IndexByte(d.VarName[colon+1:], ':') >= 0 {
			return Descriptor{}, fmt.Errorf("%w %q", ErrIllFormed, s)
		}
		d.Namespace = d.VarName[:colon]
		d.VarName = d.VarName[colon+1:]
	}

	return d, nil
}
