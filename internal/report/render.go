package report

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
)

//go:embed report.tmpl
var reportTpl string

var funcs = template.FuncMap{
	// quote keeps titles with colons valid as YAML scalars.
	"quote": func(s string) string {
		return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
	},
	// cell flattens text for a Markdown table cell.
	"cell": func(s string) string {
		return strings.NewReplacer("|", `\|`, "\n", " ", "\r", "").Replace(s)
	},
}

var compiled = template.Must(template.New("report").Funcs(funcs).Parse(reportTpl))

func Render(d Data) (string, error) {
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
