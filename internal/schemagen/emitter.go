package schemagen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/huandu/xstrings"
)

// Language selects the output language of the generator
type Language string

const (
	LanguageGo         Language = "go"
	LanguageTypeScript Language = "typescript"
)

// Emitter renders converted schemas into source files
type Emitter interface {
	// ChartFile renders the values declaration of one chart
	ChartFile(chart string, root *Type) (name string, content []byte, err error)

	// WorkloadTypesFile renders the workload type enumeration
	WorkloadTypesFile(workloadTypes []string) (name string, content []byte, err error)

	// IndexFile renders the file exposing every chart declaration
	IndexFile(charts []string, withWorkloadTypes bool) (name string, content []byte, err error)

	// IndexFileName is the name IndexFile writes to
	IndexFileName() string
}

// NewEmitter returns the emitter for a language. pkg is the Go package name
// and is ignored for TypeScript.
func NewEmitter(language Language, pkg string) (Emitter, error) {
	switch language {
	case LanguageGo:
		if !isGoIdentifier(pkg) {
			return nil, fmt.Errorf("invalid Go package name %q", pkg)
		}
		return &GoEmitter{Package: pkg}, nil
	case LanguageTypeScript:
		return &TypeScriptEmitter{}, nil
	default:
		return nil, fmt.Errorf("unsupported language %q", language)
	}
}

// pascalCase converts chart names, property names and constants such as
// basic-container-load, maxP95Latency or BASIC_CONTAINER_LOAD
func pascalCase(s string) string {
	if s == strings.ToUpper(s) {
		s = strings.ToLower(s)
	}

	var b strings.Builder
	for _, r := range xstrings.ToPascalCase(xstrings.ToKebabCase(s)) {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" || !unicode.IsLetter([]rune(name)[0]) {
		name = "X" + name
	}
	return name
}

func isGoIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

func isTypeScriptIdentifier(s string) bool {
	return isGoIdentifier(strings.ReplaceAll(s, "$", "_"))
}
