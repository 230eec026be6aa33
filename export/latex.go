package export

import (
	"strings"
	"text/template"

	"dccircuit/reducer"
	"dccircuit/superposition"
)

// SolutionDoc bundles the output values a LaTeX solution writeup
// presents: the level-by-level reduction trace and the superposition
// breakdown.
type SolutionDoc struct {
	Levels []reducer.Level
	Cases  []superposition.Case
	Total  *superposition.Total
}

var latexTemplate = template.Must(template.New("latex").Parse(
	`\section*{Reduction}
{{- range .Levels }}
\subsection*{Level {{ .Index }}}
{{- if not .Reductions }}
No further reduction.
{{- end }}
{{- range .Reductions }}
\[ {{ .Presentation }} \]
{{- end }}
{{- end }}

\section*{Superposition}
{{- range .Cases }}
\subsection*{Source {{ .Source }}}
\begin{itemize}
{{- range $id, $q := .Resistors }}
\item $R_{ {{ $id }} }$: $I = {{ printf "%.6g" $q.Current }}\,\mathrm{A}$, $V = {{ printf "%.6g" $q.Voltage }}\,\mathrm{V}$
{{- end }}
\end{itemize}
{{- end }}

\section*{Totals}
\begin{itemize}
{{- range $id, $q := .Total.Resistors }}
\item $R_{ {{ $id }} }$: $I = {{ printf "%.6g" $q.Current }}\,\mathrm{A}$, $V = {{ printf "%.6g" $q.Voltage }}\,\mathrm{V}$
{{- end }}
\end{itemize}
`))

// LaTeX renders doc as a LaTeX solution writeup via text/template — the
// same templated-source-text approach CircuitikZ uses, since both
// problems are "substitute computed values into fixed .tex scaffolding"
// rather than anything a rendering library would help with.
func LaTeX(doc SolutionDoc) (string, error) {
	var b strings.Builder
	if err := latexTemplate.Execute(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}
