// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/linstep/solver"
	"github.com/spf13/cobra"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the available solver methods",
	Args:  cobra.NoArgs,
	RunE:  runMethods,
}

func runMethods(cmd *cobra.Command, args []string) error {
	def, err := cfg.Solver.Method()
	if err != nil {
		return err
	}
	if jsonOut {
		names := make([]string, 0, len(solver.Methods()))
		for _, m := range solver.Methods() {
			names = append(names, m.String())
		}
		return writeJSON(cmd.OutOrStdout(), names)
	}

	out := cmd.OutOrStdout()
	for _, m := range solver.Methods() {
		kind := "direct"
		if m.Iterative() {
			kind = "iterative"
		}
		marker := " "
		if m == def {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-18s %s\n", marker, m, kind)
	}

	return nil
}
