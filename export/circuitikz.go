package export

import (
	"fmt"
	"strings"
	"text/template"
)

// circuitikzMacro maps a Drawable.Kind to the circuitikz bipole it
// draws as.
var circuitikzMacro = map[string]string{
	"resistor": "R",
	"ammeter":  "ammeter",
	"vsource":  "V",
	"isource":  "I",
}

var circuitikzTemplate = template.Must(template.New("circuitikz").Parse(
	`\ctikzset{european}
\begin{circuitikz}
{{- range .Lines }}
{{ . }}
{{- end }}
\end{circuitikz}
`))

// CircuitikZ renders a Layout as a standalone circuitikz environment:
// one \draw per drawable, using european resistor/source symbols, the
// stdlib text/template tool for the substitution (no example repo in
// the pack ships a more specific text-templating library; the
// teacher's own LaTeX-adjacent dependency renders images, not source
// text, so it cannot serve this job — see DESIGN.md).
func CircuitikZ(l *Layout) (string, error) {
	lines := make([]string, len(l.Drawables))
	for i, d := range l.Drawables {
		lines[i] = drawLine(d)
	}
	var b strings.Builder
	if err := circuitikzTemplate.Execute(&b, struct{ Lines []string }{lines}); err != nil {
		return "", err
	}
	return b.String(), nil
}

func drawLine(d Drawable) string {
	if d.Kind == "wire" {
		return fmt.Sprintf(`\draw (%d,%d) -- (%d,%d);`, d.From.X, d.From.Y, d.To.X, d.To.Y)
	}
	macro, ok := circuitikzMacro[d.Kind]
	if !ok {
		macro = "short"
	}
	if d.Label == "" {
		return fmt.Sprintf(`\draw (%d,%d) to[%s] (%d,%d);`, d.From.X, d.From.Y, macro, d.To.X, d.To.Y)
	}
	return fmt.Sprintf(`\draw (%d,%d) to[%s, l=$%s$] (%d,%d);`, d.From.X, d.From.Y, macro, d.Label, d.To.X, d.To.Y)
}
