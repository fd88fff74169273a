// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/linstep/input"
	"github.com/katalvlaran/linstep/matrix"
	"github.com/spf13/cobra"
)

// dominanceCmd prints the diagonal-dominance analysis only.
var dominanceCmd = &cobra.Command{
	Use:   "dominance",
	Short: "Check whether A is diagonally dominant",
	RunE:  runDominance,
}

func init() {
	dominanceCmd.Flags().StringVarP(&inputFile, "file", "f", "", "system file")
	_ = dominanceCmd.MarkFlagRequired("file")
}

func runDominance(cmd *cobra.Command, args []string) error {
	doc, err := input.Load(inputFile)
	if err != nil {
		return err
	}
	a, _, err := doc.System()
	if err != nil {
		return err
	}
	rep, err := matrix.CheckDiagonalDominance(a)
	if err != nil {
		return err
	}
	if jsonOut {
		return writeJSON(cmd.OutOrStdout(), rep)
	}
	newRenderer(cmd.OutOrStdout()).Dominance(rep)

	return nil
}
