package schemagen

import (
	"fmt"
	"strings"
)

const (
	tsIndent           = "  "
	tsDefaultRootName  = "Values"
	tsWorkloadTypesMod = "workload-types"
)

// TypeScriptEmitter renders TypeScript interfaces with inline object types
type TypeScriptEmitter struct{}

// ChartFile renders <chart>.ts exporting the values interface of the chart
func (e *TypeScriptEmitter) ChartFile(chart string, root *Type) (string, []byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "/**\n * Generated types for %s Helm chart\n * DO NOT EDIT - This file is auto-generated from values.schema.json\n */\n\n", chart)

	name := tsDefaultRootName
	if root.Title != "" {
		name = pascalCase(root.Title)
	}

	if root.Description != "" {
		writeTSComment(&b, root.Description, 0)
	}

	if root.Kind == KindObject {
		fmt.Fprintf(&b, "export interface %s %s\n", name, tsType(root, 0))
	} else {
		fmt.Fprintf(&b, "export type %s = %s;\n", name, tsType(root, 0))
	}

	return chart + ".ts", []byte(b.String()), nil
}

// WorkloadTypesFile renders workload-types.ts with the WorkloadType enum and
// its string literal union
func (e *TypeScriptEmitter) WorkloadTypesFile(workloadTypes []string) (string, []byte, error) {
	var b strings.Builder
	b.WriteString("/**\n * Auto-generated workload type enumeration\n * DO NOT EDIT - This file is auto-generated from chart schemas\n */\n\n")
	b.WriteString("export enum WorkloadType {\n")

	members := make([]string, 0, len(workloadTypes))
	for _, w := range workloadTypes {
		if !isTypeScriptIdentifier(w) {
			return "", nil, fmt.Errorf("workload type %q is not a valid enum member", w)
		}
		members = append(members, fmt.Sprintf("%s%s = %s,", tsIndent, w, tsQuote(w)))
	}
	b.WriteString(strings.Join(members, "\n"))

	b.WriteString("\n}\n\nexport type WorkloadTypeString = `${WorkloadType}`;\n")

	return tsWorkloadTypesMod + ".ts", []byte(b.String()), nil
}

// IndexFile renders the index.ts barrel re-exporting every chart module
func (e *TypeScriptEmitter) IndexFile(charts []string, withWorkloadTypes bool) (string, []byte, error) {
	exports := make([]string, 0, len(charts)+1)
	for _, chart := range charts {
		exports = append(exports, fmt.Sprintf("export * from './%s';", chart))
	}
	if withWorkloadTypes {
		exports = append(exports, fmt.Sprintf("export * from './%s';", tsWorkloadTypesMod))
	}

	var b strings.Builder
	b.WriteString("/**\n * Auto-generated barrel export for workload schemas\n * DO NOT EDIT - This file is auto-generated\n */\n\n")
	b.WriteString(strings.Join(exports, "\n"))
	b.WriteString("\n")

	return e.IndexFileName(), []byte(b.String()), nil
}

// IndexFileName returns index.ts
func (e *TypeScriptEmitter) IndexFileName() string {
	return "index.ts"
}

func tsType(t *Type, depth int) string {
	switch t.Kind {
	case KindString:
		return "string"
	case KindNumber, KindInteger:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindLiteral:
		quoted := make([]string, len(t.Literals))
		for i, l := range t.Literals {
			quoted[i] = tsQuote(l)
		}
		return strings.Join(quoted, " | ")
	case KindObject:
		if len(t.Fields) == 0 {
			return "{}"
		}

		var b strings.Builder
		b.WriteString("{\n")
		for _, field := range t.Fields {
			if field.Type.Description != "" {
				writeTSComment(&b, field.Type.Description, depth+1)
			}

			optional := "?"
			if field.Required {
				optional = ""
			}
			fmt.Fprintf(&b, "%s%s%s: %s;\n", strings.Repeat(tsIndent, depth+1), tsPropertyName(field.Name), optional, tsType(field.Type, depth+1))
		}
		b.WriteString(strings.Repeat(tsIndent, depth) + "}")
		return b.String()
	case KindMap:
		return fmt.Sprintf("{\n%s[k: string]: %s;\n%s}", strings.Repeat(tsIndent, depth+1), tsType(t.Elem, depth+1), strings.Repeat(tsIndent, depth))
	case KindArray:
		elem := tsType(t.Elem, depth)
		if (t.Elem.Kind == KindLiteral && len(t.Elem.Literals) > 1) || t.Elem.Kind == KindUnion {
			elem = "(" + elem + ")"
		}
		return elem + "[]"
	case KindNull:
		return "null"
	case KindUnion:
		variants := make([]string, len(t.Variants))
		for i, v := range t.Variants {
			variants[i] = tsType(v, depth)
		}
		return strings.Join(variants, " | ")
	default:
		return "unknown"
	}
}

func writeTSComment(b *strings.Builder, text string, depth int) {
	indent := strings.Repeat(tsIndent, depth)
	b.WriteString(indent + "/**\n")
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), "*/", "*\\/")
		if line == "" {
			b.WriteString(indent + " *\n")
			continue
		}
		fmt.Fprintf(b, "%s * %s\n", indent, line)
	}
	b.WriteString(indent + " */\n")
}

func tsPropertyName(name string) string {
	if isTypeScriptIdentifier(name) {
		return name
	}
	return tsQuote(name)
}

func tsQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}
