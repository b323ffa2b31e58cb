package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ANSI Colors
	ColorReset = "\033[0m"
	ColorGreen = "\033[32m"
	ColorCyan  = "\033[36m"
)

// Out receives all status output. Console byte dumps go elsewhere.
var Out io.Writer = os.Stdout

// In is read by Prompt.
var In io.Reader = os.Stdin

// DisableColor clears the ANSI sequences so output stays plain.
func DisableColor() {
	ColorReset, ColorGreen, ColorCyan = "", "", ""
}

// PrintSuccess prints a green check line, e.g. "✔ C  -> out.h".
func PrintSuccess(label, detail string) {
	fmt.Fprintf(Out, "  %s✔%s %-15s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

// Prompt asks the user for input with a label.
func Prompt(label string, defaultValue string) string {
	fmt.Fprintf(Out, "%s? ", label)
	if defaultValue != "" {
		fmt.Fprintf(Out, "[%s] ", defaultValue)
	}
	fmt.Fprint(Out, ColorCyan) // User input color

	reader := bufio.NewReader(In)
	input, _ := reader.ReadString('\n')
	fmt.Fprint(Out, ColorReset)

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}
