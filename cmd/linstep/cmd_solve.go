// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/linstep/input"
	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/render"
	"github.com/katalvlaran/linstep/solver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputFile  string
	methodName string
	quiet      bool
)

// solveCmd runs one method and prints the full explanation.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a system with one method and show every step",
	Long: `Solves A·x = b and prints the diagonal-dominance analysis, the step log,
the solution and the residual check.

The method is taken from --method, then from the document's "method" key,
then from the configuration's solver.default_method.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&inputFile, "file", "f", "", "system file (.yaml, .yml, .json, .txt, .csv, .dat; - for stdin)")
	solveCmd.Flags().StringVarP(&methodName, "method", "m", "", "solver method (gauss, gauss-jordan, cramer, jacobi)")
	solveCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the solution")
	_ = solveCmd.MarkFlagRequired("file")
}

// resolveMethod applies flag > document > configuration precedence.
func resolveMethod(doc *input.Document) (solver.Method, error) {
	if methodName != "" {
		return solver.ParseMethod(methodName)
	}
	def, err := cfg.Solver.Method()
	if err != nil {
		return 0, err
	}

	return doc.SolverMethod(def)
}

func runSolve(cmd *cobra.Command, args []string) error {
	doc, err := input.Load(inputFile)
	if err != nil {
		return err
	}
	a, b, err := doc.System()
	if err != nil {
		return err
	}
	m, err := resolveMethod(doc)
	if err != nil {
		return err
	}
	dom, err := matrix.CheckDiagonalDominance(a)
	if err != nil {
		return err
	}

	start := time.Now()
	res, solveErr := solver.Run(m, a, b, doc.Options(cfg.Solver.Options()...)...)
	logger.Debug("solve finished",
		zap.String("method", m.String()),
		zap.Int("n", a.Rows()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(solveErr))

	var val *solver.Validation
	if solveErr == nil {
		if val, err = solver.ValidateSolution(a, b, res.Solution); err != nil {
			return err
		}
	}
	rep := render.NewReport(m, res, val, &dom, solveErr)

	out := cmd.OutOrStdout()
	switch {
	case jsonOut:
		if err = writeJSON(out, rep); err != nil {
			return err
		}
	case quiet && solveErr == nil:
		fmt.Fprintln(out, render.PrettySolution(res.Solution))
	default:
		newRenderer(out, render.WithFormatter(matrix.NewFormatter(cfg.Solver.IntegerSnap))).Report(rep)
	}

	return solveErr
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
