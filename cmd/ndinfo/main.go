// Command ndinfo prints resolved output shapes for valid correlation with
// down-sampling.
//
// Usage:
//
//	ndinfo [flags]
//
// Dims and steps are given as x-separated extents, first axis fastest.
//
// Examples:
//
//	ndinfo -in 512x512 -kernel 5x5
//	ndinfo -in 512x512 -kernel 5x5 -steps 2x2x1
//	ndinfo -in 64x64x32x3 -kernel 9x9x5 -steps 2x2x2
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ndfilter/nd/shape"
)

func main() {
	inFlag := flag.String("in", "", "input dims, e.g. 512x512 or 64x64x32x3")
	kernelFlag := flag.String("kernel", "", "kernel dims, e.g. 5x5")
	stepsFlag := flag.String("steps", "1x1x1", "down-sampling steps per convolved axis")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ndinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the resolved output shape for valid correlation with down-sampling.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ndinfo -in 512x512 -kernel 5x5\n")
		fmt.Fprintf(os.Stderr, "  ndinfo -in 64x64x32x3 -kernel 9x9x5 -steps 2x2x2\n")
	}
	flag.Parse()

	if *inFlag == "" || *kernelFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	inDims, err := parseExtents(*inFlag)
	if err != nil {
		fatalf("bad -in value %q: %v", *inFlag, err)
	}
	kernelDims, err := parseExtents(*kernelFlag)
	if err != nil {
		fatalf("bad -kernel value %q: %v", *kernelFlag, err)
	}
	stepInts, err := parseExtents(*stepsFlag)
	if err != nil {
		fatalf("bad -steps value %q: %v", *stepsFlag, err)
	}

	steps := make(shape.Steps, len(stepInts))
	copy(steps, stepInts)
	// Trailing unit steps may be omitted on the command line.
	for len(steps) < shape.MaxConvolvedAxes {
		steps = append(steps, 1)
	}

	v, err := shape.Validate(inDims, kernelDims, steps)
	if err != nil {
		fatalf("%v", err)
	}

	outDims := v.OutputDims()
	inElems := v.InputDims().NumElements()
	outElems := outDims.NumElements()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Input\tKernel\tSteps\tOutput\tIn elems\tOut elems\tReduction\n")
	fmt.Fprintf(tw, "-----\t------\t-----\t------\t--------\t---------\t---------\n")
	fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%d\t%d\t%.2fx\n",
		v.InputDims(), v.KernelDims(), v.Steps(), outDims,
		inElems, outElems, float64(inElems)/float64(outElems))
	if err := tw.Flush(); err != nil {
		fatalf("failed to flush output: %v", err)
	}
}

func parseExtents(s string) (shape.Dims, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	dims := make(shape.Dims, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("extent %q is not an integer", p)
		}
		dims = append(dims, n)
	}
	return dims, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
