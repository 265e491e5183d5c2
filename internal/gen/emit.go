package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

var fileTemplate = template.Must(template.New("partial").Parse(`// Code generated by layergen; DO NOT EDIT.

package {{.Package}}

import (
{{- range .StdImports}}
	{{template "import" .}}
{{- end}}
{{- if .StdImports}}
{{end}}
{{- range .ModuleImports}}
	{{template "import" .}}
{{- end}}
)
{{range .Structs}}{{$partial := .PartialName}}
// {{$partial}} is the partial counterpart of {{.Name}}.
type {{$partial}} struct {
{{- range .Fields}}
	{{.Name}} {{.PartialType}} ` + "`{{.Tag}}`" + `
{{- end}}
}

// Default returns a {{$partial}} holding the declared defaults.
func ({{$partial}}) Default() {{$partial}} {
{{- if .HasDefaults}}
	return {{$partial}}{
{{- range .Fields}}
{{- if .IsNested}}
		{{.Name}}: config.New[{{.Partial}}]().Default(),
{{- else if .Default}}
		{{.Name}}: config.Ptr[{{.Elem}}]({{.Default}}),
{{- end}}
{{- end}}
	}
{{- else}}
	return {{$partial}}{}
{{- end}}
}

// FromEnv returns a {{$partial}} populated from provider.
func ({{$partial}}) FromEnv(provider env.Provider) ({{$partial}}, error) {
	var (
		out  {{$partial}}
		errs config.FieldErrors
		err  error
	)
{{range .Fields}}
{{- if .IsNested}}
	out.{{.Name}}, err = config.New[{{.Partial}}]().FromEnv(provider)
	errs = errs.NestIfErr(err, {{printf "%q" .Key}})
{{else if .Env}}
	out.{{.Name}}, err = env.FetchFirst(provider, {{.EnvList}}, env.Parse[{{.Elem}}])
	errs = errs.AddIfErr(err, {{printf "%q" .Key}})
{{end}}
{{- end}}
	if err = errs.Result(); err != nil {
		return {{$partial}}{}, err
	}

	return out, nil
}

// Merge returns a {{$partial}} in which every field present in other overrides p.
func (p {{$partial}}) Merge(other {{$partial}}) {{$partial}} {
	return {{$partial}}{
{{- range .Fields}}
{{- if .IsNested}}
		{{.Name}}: p.{{.Name}}.Merge(other.{{.Name}}),
{{- else}}
		{{.Name}}: config.Override(p.{{.Name}}, other.{{.Name}}),
{{- end}}
{{- end}}
	}
}

// Resolve builds a {{.Name}}, or reports every missing or invalid field.
func (p {{$partial}}) Resolve() ({{.Name}}, error) {
	var errs config.FieldErrors
{{range .Fields}}
{{- if .IsNested}}
	{{.Local}}, err := p.{{.Name}}.Resolve()
	errs = errs.NestIfErr(err, {{printf "%q" .Key}})
{{- else if not .Optional}}
	errs = config.AddIfAbsent(errs, p.{{.Name}}, {{printf "%q" .Key}})
{{- end}}
{{- end}}

	if err := errs.Result(); err != nil {
		return {{.Name}}{}, err
	}

	return {{.Name}}{
{{- range .Fields}}
{{- if .IsNested}}
		{{.Name}}: {{.Local}},
{{- else if .Optional}}
		{{.Name}}: p.{{.Name}},
{{- else}}
		{{.Name}}: *p.{{.Name}},
{{- end}}
{{- end}}
	}, nil
}
{{end}}
{{- define "import"}}{{if .Name}}{{.Name}} {{end}}{{printf "%q" .Path}}{{end}}`))

// Generate renders the partial implementations described by schema as a
// formatted Go source file.
func Generate(schema *Schema) ([]byte, error) {
	var buf bytes.Buffer

	err := fileTemplate.Execute(&buf, schema)
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return src, nil
}
