// SPDX-License-Identifier: MIT

// Package render writes solve reports to a terminal with lipgloss styles.
//
// The layout follows a fixed order: matrix properties (diagonal dominance),
// the chosen method, every step, the final solution and the residual check.
// A failed solve prints its partial steps and the error instead of a solution.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/solver"
)

const ruleWidth = 60

// Styles names one lipgloss style per kind of text.
type Styles struct {
	H1     lipgloss.Style // section headings
	H2     lipgloss.Style // step titles
	Mode   lipgloss.Style // the execution-mode summary
	Matrix lipgloss.Style // step contents and snapshots
	Res    lipgloss.Style // solution lines and positive verdicts
	Warn   lipgloss.Style // negative verdicts, non-convergence
	Err    lipgloss.Style // failures
	Math   lipgloss.Style // residual figures
}

// DefaultStyles binds the palette to r, so styles degrade to plain text when
// r's output is not a color terminal.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		H1:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#38bdf8")),
		H2:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#f472b6")),
		Mode:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#22d3ee")).Background(lipgloss.Color("#1e293b")),
		Matrix: r.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
		Res:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80")),
		Warn:   r.NewStyle().Foreground(lipgloss.Color("#facc15")),
		Err:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444")),
		Math:   r.NewStyle().Foreground(lipgloss.Color("#c084fc")),
	}
}

// Renderer writes reports to one writer.
type Renderer struct {
	w      io.Writer
	styles Styles
	plain  bool
	f      matrix.Formatter
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlain disables styling entirely.
func WithPlain() Option { return func(r *Renderer) { r.plain = true } }

// WithStyles replaces the default palette.
func WithStyles(s Styles) Option { return func(r *Renderer) { r.styles = s } }

// WithFormatter sets the number formatter used for solution lines.
func WithFormatter(f matrix.Formatter) Option { return func(r *Renderer) { r.f = f } }

// New returns a Renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		w:      w,
		styles: DefaultStyles(lipgloss.NewRenderer(w)),
		f:      matrix.DefaultFormatter,
	}
	for _, o := range opts {
		o(r)
	}

	return r
}

// line styles each line of s separately so multi-line blocks keep their
// own widths, then writes it.
func (r *Renderer) line(st lipgloss.Style, s string) {
	if r.plain {
		fmt.Fprintln(r.w, s)
		return
	}
	for _, l := range strings.Split(s, "\n") {
		fmt.Fprintln(r.w, st.Render(l))
	}
}

func (r *Renderer) rule() { r.line(r.styles.Matrix, strings.Repeat("-", ruleWidth)) }

// Dominance writes the per-row lines and the overall verdict.
func (r *Renderer) Dominance(rep matrix.DominanceReport) {
	r.line(r.styles.H1, "MATRIX PROPERTIES")
	for _, row := range rep.Rows {
		st := r.styles.Res
		if strings.HasSuffix(row, "NOT DOMINANT") {
			st = r.styles.Warn
		}
		r.line(st, "• "+row)
	}
	if rep.Dominant {
		r.line(r.styles.Res, "✓ "+rep.Verdict)
	} else {
		r.line(r.styles.Warn, "⚠ "+rep.Verdict)
	}
}

// Steps writes the explanation log; the execution-mode entry is highlighted.
func (r *Renderer) Steps(steps []solver.Step) {
	for _, s := range steps {
		fmt.Fprintln(r.w)
		if s.Title == "Execution mode" {
			r.line(r.styles.Mode, "["+s.Title+"]")
			r.line(r.styles.Mode, s.Content)
			continue
		}
		r.line(r.styles.H2, s.Title)
		r.line(r.styles.Matrix, s.Content)
	}
}

// Solution writes one "xi = value" line per variable.
func (r *Renderer) Solution(x []float64) {
	fmt.Fprintln(r.w)
	r.line(r.styles.H1, "FINAL SOLUTION")
	for i, v := range x {
		r.line(r.styles.Res, fmt.Sprintf("x%d = %s", i+1, r.f.Number(v)))
	}
}

// Validation writes the residual infinity norm in scientific notation.
func (r *Renderer) Validation(v *solver.Validation) {
	fmt.Fprintln(r.w)
	r.line(r.styles.H1, "VALIDATION")
	r.line(r.styles.Math, fmt.Sprintf("Residual max error = %.2e", v.ResidualInfNorm))
}

// Report writes a complete solve report.
func (r *Renderer) Report(rep Report) {
	if rep.Dominance != nil {
		r.Dominance(*rep.Dominance)
		r.rule()
	}
	r.line(r.styles.H1, "METHOD: "+strings.ToUpper(rep.Method))
	r.Steps(rep.Steps)

	if rep.Error != "" {
		fmt.Fprintln(r.w)
		r.line(r.styles.Err, "SOLVE FAILED:\n"+rep.Error)
		return
	}
	if rep.Iterations > 0 {
		fmt.Fprintln(r.w)
		if rep.Converged {
			r.line(r.styles.Res, fmt.Sprintf("Converged after %d iteration(s)", rep.Iterations))
		} else {
			r.line(r.styles.Warn, fmt.Sprintf("Did not converge within %d iterations", rep.Iterations))
		}
	}
	r.Solution(rep.Solution)
	if rep.Validation != nil {
		r.Validation(rep.Validation)
	}
}

// Comparison writes a one-line summary per method and the largest
// disagreement between converged solutions.
func (r *Renderer) Comparison(rep *solver.ComparisonReport) {
	r.line(r.styles.H1, "METHOD COMPARISON")
	for _, e := range rep.Entries {
		if e.Err != nil {
			r.line(r.styles.Err, fmt.Sprintf("%-18s failed: %v", e.Method, e.Err))
			continue
		}
		st := r.styles.Res
		note := ""
		if e.Method.Iterative() {
			note = fmt.Sprintf("  (%d iterations)", e.Result.Iterations)
			if !e.Result.Converged {
				st = r.styles.Warn
				note = fmt.Sprintf("  (not converged after %d iterations)", e.Result.Iterations)
			}
		}
		r.line(st, fmt.Sprintf("%-18s x = %s  residual = %.2e%s",
			e.Method, r.f.Vector(e.Result.Solution), e.Validation.ResidualInfNorm, note))
	}
	r.rule()
	r.line(r.styles.Math, fmt.Sprintf("Max disagreement = %.2e", rep.MaxDisagreement))
}

// PrettySolution renders x as fixed-width "xi = %10.6f" lines.
func PrettySolution(x []float64) string {
	lines := make([]string, len(x))
	for i, v := range x {
		lines[i] = fmt.Sprintf("x%d = %10.6f", i+1, v)
	}

	return strings.Join(lines, "\n")
}
