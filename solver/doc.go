// Package solver solves small dense linear systems A·x = b and records a
// human-readable trace of every step.
//
// 🚀 What is it for?
//
//	Students verifying textbook procedures by hand get, next to the numeric
//	answer, the exact sequence of decisions and arithmetic the algorithm
//	performed: row swaps and why, elementary row operations in symbolic
//	form, matrix snapshots, determinants, Jacobi iterates and errors.
//
// ✨ Methods:
//   - Gauss        — forward elimination with adaptive partial pivoting,
//     then back substitution; the log opens with an "Execution mode" summary
//     (naive vs partial pivoting, with every swap listed).
//   - GaussJordan  — pivot, normalize, eliminate above and below.
//   - Cramer       — det(A) and det(A_i) by cofactor expansion.
//   - Jacobi       — simultaneous-update iteration with tolerance and cap;
//     non-convergence is a soft outcome (Converged=false), not an error.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 1}, {1, 3}})
//	res, err := solver.Run(solver.MethodGauss, a, []float64{1, 2})
//	if err != nil {
//	  // errors.Is(err, solver.ErrSingular) …; solver.PartialSteps(err) keeps the log so far
//	}
//	for _, s := range res.Steps {
//	  fmt.Println(s.Title)
//	  fmt.Println(s.Content)
//	}
//	v, _ := solver.ValidateSolution(a, []float64{1, 2}, res.Solution)
//
// Guarantees:
//   - Inputs are never mutated: every solver works on a private copy.
//   - Step logs are deterministic: same input, method and options ⇒ identical bytes.
//   - All tolerances are named defaults overridable through Option values.
//
// Systems are limited to 2 ≤ n ≤ 6 (matrix.MinOrder..matrix.MaxOrder).
package solver
