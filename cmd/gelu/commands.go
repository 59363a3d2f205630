package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/born-ml/gelu"
	"github.com/born-ml/gelu/internal/onnx/operators"
	"github.com/born-ml/gelu/tensor"
	"github.com/spf13/cobra"
)

type evalOptions struct {
	approximate string
	dtype       string
	grad        float64
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gelu",
		Short:         "Evaluate the GELU activation and its gradient",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newForwardCmd(), newBackwardCmd(), newOpsCmd(), newVersionCmd())
	return root
}

func newForwardCmd() *cobra.Command {
	opts := &evalOptions{}
	cmd := &cobra.Command{
		Use:   "forward x...",
		Short: "Print GELU(x) for each value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd.OutOrStdout(), args, opts, false)
		},
	}
	addEvalFlags(cmd, opts)
	return cmd
}

func newBackwardCmd() *cobra.Command {
	opts := &evalOptions{}
	cmd := &cobra.Command{
		Use:   "backward x...",
		Short: "Print grad * GELU'(x) for each value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd.OutOrStdout(), args, opts, true)
		},
	}
	addEvalFlags(cmd, opts)
	cmd.Flags().Float64Var(&opts.grad, "grad", 1, "upstream gradient applied to every value")
	return cmd
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the registered GELU operators",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, op := range operators.NewRegistry().SupportedOps() {
				fmt.Fprintln(cmd.OutOrStdout(), op)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gelu %s\n", version)
		},
	}
}

func addEvalFlags(cmd *cobra.Command, opts *evalOptions) {
	cmd.Flags().StringVarP(&opts.approximate, "approximate", "a", "none", `formula variant: "none" (erf) or "tanh"`)
	cmd.Flags().StringVar(&opts.dtype, "dtype", "float64", "element type: float16, float32 or float64")
}

// runEval evaluates the kernels through a tensor of the requested dtype, so
// the printed values carry that dtype's rounding.
func runEval(w io.Writer, args []string, opts *evalOptions, backward bool) error {
	mode, err := tensor.ParseApproximate(opts.approximate)
	if err != nil {
		return err
	}
	dtype, err := tensor.ParseDataType(opts.dtype)
	if err != nil {
		return err
	}

	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values[i] = v
	}

	x, err := newFilled(dtype, values)
	if err != nil {
		return err
	}

	var result *tensor.RawTensor
	if backward {
		grads := make([]float64, len(values))
		for i := range grads {
			grads[i] = opts.grad
		}
		dy, err := newFilled(dtype, grads)
		if err != nil {
			return err
		}
		result, err = gelu.Backward(x, dy, mode)
		if err != nil {
			return err
		}
	} else {
		result, err = gelu.Forward(x, mode)
		if err != nil {
			return err
		}
	}

	out := toFloat64(result)
	for i, arg := range args {
		fmt.Fprintf(w, "%s\t%s\n", arg, strconv.FormatFloat(out[i], 'g', -1, bitSize(dtype)))
	}
	return nil
}
