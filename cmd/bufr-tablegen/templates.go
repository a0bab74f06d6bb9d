package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		tableBTmpl +
		tableCTmpl +
		tableDTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

// fileMeta holds the per-file generation context shared by all three
// templates. TypePrefix is "tables." when the output lives outside the
// tables package and empty when generating into it; the unused import is
// stripped by the formatter in the latter case.
type fileMeta struct {
	Package    string
	Source     string
	TypePrefix string
}

// newFileMeta derives the type qualifier from the target package name.
func newFileMeta(pkg, source string) fileMeta {
	meta := fileMeta{Package: pkg, Source: source}
	if pkg != "tables" {
		meta.TypePrefix = "tables."
	}
	return meta
}

type tableBData struct {
	fileMeta
	Entries []tableBEntryData
}

type tableBEntryData struct {
	X, Y        uint8
	ClassName   string
	ElementName string
	Scale       int
	Reference   int
	Bits        int
	Unit        string
}

type tableCData struct {
	fileMeta
	Entries []tableCEntryData
}

type tableCEntryData struct {
	X, Y                uint8
	HasY                bool
	OperatorName        string
	OperationDefinition string
}

type tableDData struct {
	fileMeta
	Entries []tableDEntryData
}

type tableDEntryData struct {
	X, Y     uint8
	Category string
	Title    string
	SubTitle string
	Elements []descriptorData
}

type descriptorData struct {
	F, X, Y uint8
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}// Code generated by bufr-tablegen. DO NOT EDIT.
//
// Source: {{.Source}}

package {{.Package}}

import "github.com/bufrkit/bufr-go/pkg/tables"

{{end}}`

const tableBTmpl = `{{define "tableB"}}
{{- template "header" .}}
{{- $p := .TypePrefix}}
// TableB holds the {{len .Entries}} element descriptor entries of BUFR Table B.
var TableB = [{{len .Entries}}]{{$p}}ElementEntry{
{{- range .Entries}}
{XY: {{$p}}XY{X: {{.X}}, Y: {{.Y}}}, ClassName: {{quote .ClassName}}, ElementName: {{quote .ElementName}}, Scale: {{.Scale}}, ReferenceValue: {{.Reference}}, Unit: {{quote .Unit}}, Bits: {{.Bits}}},
{{- end}}
}
{{end}}`

const tableCTmpl = `{{define "tableC"}}
{{- template "header" .}}
{{- $p := .TypePrefix}}
// TableC holds the {{len .Entries}} operator descriptor entries of BUFR Table C.
var TableC = [{{len .Entries}}]{{$p}}OperatorEntry{
{{- range .Entries}}
{XY: {{$p}}OperatorXY{X: {{.X}}{{if .HasY}}, Y: {{.Y}}, HasY: true{{end}}}, OperatorName: {{quote .OperatorName}}, OperationDefinition: {{quote .OperationDefinition}}},
{{- end}}
}
{{end}}`

const tableDTmpl = `{{define "tableD"}}
{{- template "header" .}}
{{- $p := .TypePrefix}}
// TableD holds the {{len .Entries}} sequence descriptor entries of BUFR Table D.
var TableD = [{{len .Entries}}]{{$p}}SequenceEntry{
{{- range .Entries}}
{
XY: {{$p}}XY{X: {{.X}}, Y: {{.Y}}},
Category: {{quote .Category}},
Title: {{quote .Title}},
SubTitle: {{quote .SubTitle}},
Elements: []{{$p}}Descriptor{
{{- range .Elements}}
{F: {{.F}}, X: {{.X}}, Y: {{.Y}}},
{{- end}}
},
},
{{- end}}
}
{{end}}`
