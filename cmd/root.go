package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/makebytes/makebytes/internal/ui"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "makebytes <options> <input_file>",
	Short: "Convert a binary file into byte array source code",
	Long: `makebytes reads a binary file and writes it as a byte array literal
for one or more programming languages.

Options:
  c=<var;file>                 Generate a C source file.
  cpp=<var;file>               Generate a C++ source file.
  csharp=<namespace:var;file>  Generate a C# source file.
  java=<namespace:var;file>    Generate a Java source file.
  python=<var;file>            Generate a Python source file.
  public                       Make the generated C# class public.

Use "cout" as file to print the array instead of writing it.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.DisableColor()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings
		if s.Stdout == nil {
			s.Stdout = cmd.OutOrStdout()
		}
		err := runGenerate(cmd.Context(), args, s)
		if errors.Is(err, errShowUsage) {
			return cmd.Help()
		}
		return err
	},
}

// noColor disables ANSI colors in status output. Set via --no-color.
var noColor bool

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Any error is printed to stderr as "error: <message>" and exits the process with status 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored status output")
	rootCmd.Flags().StringVarP(&settings.ConfigPath, "config", "f", "", "Read options from a YAML config file")
	rootCmd.Flags().StringVar(&settings.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&settings.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.Flags().IntVar(&settings.BytesPerLine, "bytes-per-line", 0, "Number of byte literals per line (default 20)")
}
