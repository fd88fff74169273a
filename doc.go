// Package linstep is a step-by-step solver for small linear systems A·x = b,
// built for teaching: every solve returns the answer together with an ordered,
// human-readable log of the operations that produced it.
//
// 🚀 What is linstep?
//
//	A compact library plus a CLI and an HTTP API that bring together:
//		• Gaussian elimination with adaptive partial pivoting (naive when it can be)
//		• Gauss-Jordan reduction to the identity
//		• Cramer's rule via cofactor determinants
//		• Jacobi iteration with a tolerance and an iteration cap
//		• Diagonal-dominance analysis and residual validation
//
// ✨ Why linstep?
//
//   - Deterministic – the same input always yields byte-identical step logs
//   - Honest – failures keep the partial log; Jacobi non-convergence is reported, not hidden
//   - Small by intent – 2 ≤ n ≤ 6, dense float64, no hidden state
//
// Under the hood:
//
//	matrix/      — Dense storage, validators, MatVec/Residual/InfNorm/Determinant, formatting, dominance
//	solver/      — the four methods, the dispatcher (Run/ParseMethod), ValidateSolution, Compare
//	input/       — strict parsing of cell grids, YAML/JSON documents and plain-text systems
//	render/      — lipgloss terminal reports and the JSON Report shape
//	config/      — YAML configuration (solver defaults, zap logging, HTTP server)
//	server/      — gin HTTP API with Prometheus metrics
//	cmd/linstep/ — cobra CLI: solve, compare, dominance, methods, serve
//
// Quick example:
//
//	2x − y +  z =  3
//	3x + 3y + 9z = 36      →   x = [1, 2, 3]
//	3x + 3y + 5z = 24
//
//	go install github.com/katalvlaran/linstep/cmd/linstep@latest
package linstep
