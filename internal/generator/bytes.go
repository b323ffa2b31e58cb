package generator

import (
	"io"
	"strconv"
)

// DefaultBytesPerLine is the number of byte literals written per line.
const DefaultBytesPerLine = 20

// ByteFormat controls how WriteBytes renders the data.
type ByteFormat struct {
	// PerLine is the number of literals per line. Values < 1 use DefaultBytesPerLine.
	PerLine int
	// SignedBytes prefixes bytes above 127 with a "(byte)" cast, for Java.
	SignedBytes bool
}

// WriteBytes writes data as comma separated "0x.." literals.
// Every line, including the last, ends with a newline. Empty data writes nothing.
func WriteBytes(w io.StringWriter, data []byte, f ByteFormat) error {
	perLine := f.PerLine
	if perLine < 1 {
		perLine = DefaultBytesPerLine
	}

	lit := make([]byte, 0, 16)
	for i, b := range data {
		lit = lit[:0]
		if f.SignedBytes && b > 127 {
			lit = append(lit, "(byte)"...)
		}
		lit = append(lit, "0x"...)
		if b < 0x10 {
			lit = append(lit, '0')
		}
		lit = strconv.AppendUint(lit, uint64(b), 16)
		lit = append(lit, ',')

		if (i+1)%perLine == 0 || i == len(data)-1 {
			lit = append(lit, '\n')
		} else {
			lit = append(lit, ' ')
		}

		if _, err := w.WriteString(string(lit)); err != nil {
			return err
		}
	}
	return nil
}
