package generator

import "errors"

var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("the file does not exist")
	// ErrNoInput is returned when no input file was named.
	ErrNoInput = errors.New("no input file specified")
	// ErrIllFormed is returned for a language string that cannot be split.
	ErrIllFormed = errors.New("ill-formed language string")
	// ErrNamespaceRequired is returned when C# output is requested without a namespace.
	ErrNamespaceRequired = errors.New("no namespace specified for C#")
)
