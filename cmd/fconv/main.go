// Command fconv renders floating point values in their shortest
// round-trip decimal form and prints their IEEE 754 bit patterns.
//
// Values are given as arguments, or streamed one per line when the
// single argument "-" is passed:
//
//	fconv 0.1 3.0e300 -5e-324
//	seq 1 1000000 | awk '{print $1/7}' | fconv --count 1000000 -
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ryugo/internal/util"
	"ryugo/pkg/ryu"
)

var (
	flagF32     bool
	flagBits    bool
	flagVerbose bool
	flagCount   uint64
)

func main() {
	root := &cobra.Command{
		Use:          "fconv [flags] value... | -",
		Short:        "Shortest round-trip decimal formatting for floats",
		Args:         cobra.MinimumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	root.Flags().BoolVar(&flagF32, "f32", false, "treat inputs as float32")
	root.Flags().BoolVar(&flagBits, "bits", false, "also print the IEEE 754 bit pattern")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log timing and progress")
	root.Flags().Uint64Var(&flagCount, "count", 0, "expected number of stdin values (progress reporting)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	var logger *zap.SugaredLogger
	if flagVerbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer zl.Sync()
		logger = zl.Sugar()
	} else {
		logger = zap.NewNop().Sugar()
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	start := time.Now()
	var n uint64

	if len(args) == 1 && args[0] == "-" {
		progress := util.NewProgressLogger(flagCount, "fconv: ", flagVerbose && flagCount > 0)
		sc := bufio.NewScanner(os.Stdin)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			if err := convert(out, sc.Text()); err != nil {
				return err
			}
			n++
			progress.Log()
		}
		if err := sc.Err(); err != nil {
			return err
		}
		progress.Finalize()
	} else {
		for _, a := range args {
			if err := convert(out, a); err != nil {
				return err
			}
			n++
		}
	}

	logger.Infow("converted", "values", n, "elapsed", time.Since(start))
	return nil
}

func convert(w io.Writer, s string) error {
	if flagF32 {
		// ParseFloat32 is deliberately absent from the library: narrowing a
		// parsed float64 can double-round, so take the 32-bit parse from
		// strconv and only the formatting direction from ryu.
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("%q: %w", s, err)
		}
		g := float32(f)
		if flagBits {
			_, err = fmt.Fprintf(w, "%s\t0x%08x\n", ryu.FormatFloat32(g), math.Float32bits(g))
		} else {
			_, err = fmt.Fprintln(w, ryu.FormatFloat32(g))
		}
		return err
	}

	f, err := ryu.ParseFloat64(s)
	if err != nil {
		return fmt.Errorf("%q: %w", s, err)
	}
	if flagBits {
		_, err = fmt.Fprintf(w, "%s\t0x%016x\n", ryu.FormatFloat64(f), math.Float64bits(f))
	} else {
		_, err = fmt.Fprintln(w, ryu.FormatFloat64(f))
	}
	return err
}
