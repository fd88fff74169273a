// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/linstep/input"
	"github.com/katalvlaran/linstep/render"
	"github.com/katalvlaran/linstep/solver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// compareCmd runs every method on the same system.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every method on the same system and compare the answers",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&inputFile, "file", "f", "", "system file")
	_ = compareCmd.MarkFlagRequired("file")
}

// compareJSON is the --json shape of one comparison row.
type compareJSON struct {
	Method   string         `json:"method"`
	Result   *solver.Result `json:"result,omitempty"`
	Residual float64        `json:"residual_inf_norm,omitempty"`
	Error    string         `json:"error,omitempty"`
	Code     string         `json:"code,omitempty"`
}

func runCompare(cmd *cobra.Command, args []string) error {
	doc, err := input.Load(inputFile)
	if err != nil {
		return err
	}
	a, b, err := doc.System()
	if err != nil {
		return err
	}
	rep, err := solver.Compare(a, b, doc.Options(cfg.Solver.Options()...)...)
	if err != nil {
		return err
	}
	logger.Debug("compare finished", zap.Float64("max_disagreement", rep.MaxDisagreement))

	if !jsonOut {
		newRenderer(cmd.OutOrStdout()).Comparison(rep)
		return nil
	}
	rows := make([]compareJSON, len(rep.Entries))
	for i, e := range rep.Entries {
		rows[i] = compareJSON{Method: e.Method.String(), Result: e.Result}
		if e.Err != nil {
			rows[i].Error, rows[i].Code = e.Err.Error(), render.ErrorCode(e.Err)
			continue
		}
		rows[i].Residual = e.Validation.ResidualInfNorm
	}

	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"entries":          rows,
		"max_disagreement": rep.MaxDisagreement,
	})
}
