package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go
// template syntax ({{.VAR_NAME}}) rather than $-substitution, so literal
// dollar signs in config values survive untouched. Tool configs carry
// them routinely:
//   - regex filters on lead domains: ^(?!.*\.gov$).*
//   - pricing strings in tool descriptions: "$0.05/call"
//   - shell snippets in deployment notes: $PATH
//
// Examples:
//   - {{.OUTREACH_API_KEY}} → value of OUTREACH_API_KEY
//   - {{.DB_HOST}}:{{.DB_PORT}} → hostname:port with both expanded
//
// Missing variables expand to the empty string; required-field validation
// catches the ones that matter.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// Not a template; pass the YAML through untouched.
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split on the first = only; values may contain = themselves.
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
