package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/makebytes/makebytes/internal/config"
	"github.com/makebytes/makebytes/internal/generator"
	"github.com/makebytes/makebytes/internal/templates"
	"github.com/makebytes/makebytes/internal/ui"
	"github.com/spf13/cobra"
)

var (
	initInput string
	initForce bool
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [config-file]",
	Short: "Write a starter makebytes.yaml",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultFile
		if len(args) == 1 {
			path = args[0]
		}
		input := initInput
		if input == "" {
			input = ui.Prompt("Input file", "data.bin")
		}
		return runInit(path, input, initForce)
	},
}

func init() {
	initCmd.Flags().StringVar(&initInput, "input", "", "Input file to reference in the config")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

// runInit writes a starter configuration for input to path.
//
// Parameters:
//   - path: The config file to create.
//   - input: The binary file the config converts.
//   - force: Overwrite path if it already exists.
//
// Returns:
//   - error: An error if the file exists (without force) or cannot be written.
func runInit(path, input string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data := struct {
		Input     string
		VarName   string
		ClassName string
	}{
		Input:     input,
		VarName:   generator.DefaultVarName(input),
		ClassName: generator.DefaultClassName(input),
	}
	if err := templates.Render(f, "makebytes.yaml.tmpl", data); err != nil {
		return err
	}

	ui.PrintSuccess("Created", path)
	fmt.Fprintln(ui.Out, "Next steps:")
	fmt.Fprintf(ui.Out, "  makebytes --config %s\n", path)
	return nil
}
