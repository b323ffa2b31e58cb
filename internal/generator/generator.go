package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/makebytes/makebytes/internal/args"
	"github.com/makebytes/makebytes/internal/textwriter"
	"github.com/makebytes/makebytes/internal/ui"
)

// PublicFlag is the bare argument that makes the generated C# class public.
const PublicFlag = "public"

// Options contains optional settings for the generation process.
type Options struct {
	// Input overrides the input file taken from the arguments.
	Input string
	// Public makes the C# class public even without the "public" argument.
	// It carries the config file setting.
	Public bool
	// BytesPerLine is the number of literals per line. Zero uses DefaultBytesPerLine.
	BytesPerLine int
	// Stdout receives console output. Defaults to os.Stdout.
	Stdout io.Writer
}

// Generator emits byte array sources for every language requested in its arguments.
type Generator struct {
	args  *args.Arguments
	opts  Options
	input string
	data  []byte
}

// New resolves the input file, reads it fully and returns a Generator.
//
// Parameters:
//   - a: The parsed arguments carrying the language options.
//   - opts: Additional generation options.
//
// Returns:
//   - *Generator: A generator holding the input bytes.
//   - error: ErrNoInput or ErrInputNotFound (wrapped), or a read error.
func New(a *args.Arguments, opts Options) (*Generator, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	input := opts.Input
	if input == "" {
		var ok bool
		if input, ok = InputFromArgs(a); !ok {
			return nil, ErrNoInput
		}
	}

	data, err := ReadInput(input)
	if err != nil {
		return nil, err
	}
	slog.Debug("Read input file", "path", input, "size", len(data))

	return &Generator{args: a, opts: opts, input: input, data: data}, nil
}

// InputFromArgs returns the input file named by the last argument.
// The last argument names a file only if it is a bare token that is not a
// language option or the public flag.
func InputFromArgs(a *args.Arguments) (string, bool) {
	last, ok := a.Last()
	if !ok || last.Value != "" || last.Key == "" || last.Key == PublicFlag || isLanguageKey(last.Key) {
		return "", false
	}
	return last.Key, true
}

// ReadInput reads the whole file at path.
func ReadInput(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to open file %q for reading: %w", path, ErrInputNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q for reading: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("failed to open file %q for reading: is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q for reading: %w", path, err)
	}
	return data, nil
}

// Requested reports whether any language option is present in a.
func Requested(a *args.Arguments) bool {
	for _, l := range languages {
		if a.Has(l.Key) {
			return true
		}
	}
	return false
}

// Generate emits every requested language in a fixed order (C, C++, C#, Java, Python).
// It stops at the first error.
func (g *Generator) Generate(ctx context.Context) error {
	for _, l := range languages {
		if !g.args.Has(l.Key) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.generate(l); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generate(l language) error {
	d, err := ParseDescriptor(g.args.Get(l.Key))
	if err != nil {
		return err
	}
	if d.VarName == "" {
		d.VarName = DefaultVarName(g.input)
	}

	w := textwriter.New()
	if err := l.emit(g, d, w); err != nil {
		return err
	}

	slog.Debug("Emitted source", "language", l.Name, "destination", d.Destination, "bytes", w.Len())
	return g.finish(w, d, l.Name)
}

// finish prints the contents for the console destination or saves them to disk.
func (g *Generator) finish(w *textwriter.Writer, d Descriptor, name string) error {
	if d.IsConsole() {
		_, err := w.WriteTo(g.opts.Stdout)
		return err
	}

	if err := w.SaveToDisk(d.Destination); err != nil {
		return err
	}
	ui.PrintSuccess(name, "-> "+d.Destination)
	return nil
}

func (g *Generator) isPublic() bool {
	return g.opts.Public || g.args.Has(PublicFlag)
}

func (g *Generator) byteFormat(signed bool) ByteFormat {
	return ByteFormat{PerLine: g.opts.BytesPerLine, SignedBytes: signed}
}
