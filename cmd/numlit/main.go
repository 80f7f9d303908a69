package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"numlit/internal/version"
)

// errFailed завершает процесс с кодом 1 без повторной печати ошибки:
// всё уже выведено командой.
var errFailed = errors.New("failed")

// main runs the CLI and exits with status 1 when a command fails.
func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root, st := newRootCmd()
	root.SetArgs(literalArgs(root, args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	st.close(stderr)
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(stderr, "numlit: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() (*cobra.Command, *state) {
	st := &state{}
	root := &cobra.Command{
		Use:           "numlit",
		Short:         "Python-style numeric literal parser",
		Long:          `numlit parses integer, float and complex literals the way the interpreter's tokenizer and int()/float()/complex() builtins do`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd)
		},
	}

	// Глобальные флаги
	root.PersistentFlags().String("config", "", "path to numlit.toml (default: search upwards from the working directory)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("reporting", "", "error message detail (terse|normal|detailed), overrides [errors].reporting")
	root.PersistentFlags().String("trace", "", "trace output file ('-' for stderr)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	root.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	root.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	root.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")

	root.AddCommand(newIntCmd(st))
	root.AddCommand(newFloatCmd(st))
	root.AddCommand(newComplexCmd(st))
	root.AddCommand(newScanCmd(st))
	root.AddCommand(newVersionCmd())
	return root, st
}

// literalAnnotation marks commands whose positional argument is a numeric
// literal and may start with '-'.
const literalAnnotation = "numlit.literal"

// literalArgs moves negative literals ("-5", "-0x1A", "-.5", "-inf", "-nan")
// of a conversion command behind "--", so pflag does not read them as
// shorthand flags. Flag values are left in place.
func literalArgs(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil || cmd.Annotations[literalAnnotation] == "" || slices.Contains(args, "--") {
		return args
	}
	var rest, literals []string
	seenCmd, wantValue := false, false
	for _, a := range args {
		switch {
		case wantValue:
			wantValue = false
			rest = append(rest, a)
		case seenCmd && isNegativeLiteral(a):
			literals = append(literals, a)
		default:
			if a == cmd.Name() {
				seenCmd = true
			}
			wantValue = flagTakesValue(cmd, a)
			rest = append(rest, a)
		}
	}
	if len(literals) == 0 {
		return args
	}
	return append(append(rest, "--"), literals...)
}

func isNegativeLiteral(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	switch c := a[1]; {
	case '0' <= c && c <= '9', c == '.':
		return true
	case c|0x20 == 'i', c|0x20 == 'n':
		return true
	}
	return false
}

// flagTakesValue reports whether a is a flag of cmd (own or inherited)
// written without "=" whose value is the next argument.
func flagTakesValue(cmd *cobra.Command, a string) bool {
	if !strings.HasPrefix(a, "-") || strings.Contains(a, "=") {
		return false
	}
	name := strings.TrimLeft(a, "-")
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.InheritedFlags().Lookup(name)
	}
	if flag == nil && len(a) == 2 {
		flag = cmd.Flags().ShorthandLookup(name)
	}
	return flag != nil && flag.NoOptDefVal == ""
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int.
}

// useColor resolves the --color flag for the given output.
func useColor(cmd *cobra.Command, w io.Writer) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return isTerminal(w), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}
