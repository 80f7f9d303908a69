package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"numlit/internal/convert"
	"numlit/internal/parsenum"
)

func newIntCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "int TEXT",
		Short:       "Convert TEXT the way int(TEXT, base) does",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{literalAnnotation: "true"},
	}
	cmd.Flags().Int("base", 10, "radix: 0 or 2..36 (0 honours 0x/0o/0b prefixes)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		base, err := cmd.Flags().GetInt("base")
		if err != nil {
			return fmt.Errorf("failed to get base flag: %w", err)
		}
		v, err := convert.Int(st.parser, args[0], base)
		if err != nil {
			return reportValueError(cmd, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v.String())
		return nil
	}
	return cmd
}

func newFloatCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:         "float TEXT",
		Short:       "Convert TEXT the way float(TEXT) does",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{literalAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := convert.Float(st.parser, args[0])
			if err != nil {
				return reportValueError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), parsenum.FloatNumber(v).String())
			return nil
		},
	}
}

func newComplexCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "complex TEXT",
		Short: "Convert TEXT the way complex(TEXT) does",
		Long: `Convert a single real or imaginary literal to a complex value.
A combined form such as 1+2j is not accepted.`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{literalAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := convert.Complex(st.parser, args[0])
			if err != nil {
				return reportValueError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), parsenum.ComplexNumber(v).String())
			return nil
		},
	}
}

// reportValueError prints a conversion failure as the interpreter would and
// turns it into errFailed. Other errors pass through.
func reportValueError(cmd *cobra.Command, err error) error {
	var ve *parsenum.ValueError
	if !errors.As(err, &ve) {
		return err
	}
	colored, cerr := useColor(cmd, cmd.ErrOrStderr())
	if cerr != nil {
		return cerr
	}
	label := color.New(color.FgRed, color.Bold)
	if colored {
		label.EnableColor()
	} else {
		label.DisableColor()
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", label.Sprint("ValueError"), ve.Msg)
	return errFailed
}
