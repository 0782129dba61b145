package schemagen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/huandu/xstrings"
)

const goWorkloadTypeName = "WorkloadType"

// GoEmitter renders Go structs with json tags
type GoEmitter struct {
	// Package is the package clause of the generated files
	Package string
}

func (e *GoEmitter) header(source string) string {
	return fmt.Sprintf("// Code generated by hyper generate from %s. DO NOT EDIT.\n\npackage %s\n\n", source, e.Package)
}

// ChartFile renders <chart>_values.go with a <Chart>Values root type
func (e *GoEmitter) ChartFile(chart string, root *Type) (string, []byte, error) {
	rootName := goValuesTypeName(chart)
	f := &goFile{root: rootName, names: map[string]bool{rootName: true}}

	doc := fmt.Sprintf("%s is the values document of the %s chart", rootName, chart)
	if root.Kind == KindObject && len(root.Fields) > 0 {
		f.declareStruct(rootName, doc, root)
	} else {
		f.decls = append(f.decls, fmt.Sprintf("// %s\ntype %s %s\n", doc, rootName, f.goType(root, rootName, "", false)))
	}

	var b bytes.Buffer
	b.WriteString(e.header(chart + "/values.schema.json"))
	b.WriteString(strings.Join(f.decls, "\n"))

	content, err := format.Source(b.Bytes())
	if err != nil {
		return "", nil, fmt.Errorf("failed to format generated code: %w", err)
	}

	return xstrings.ToSnakeCase(chart) + "_values.go", content, nil
}

// WorkloadTypesFile renders workload_types.go with a WorkloadType string type,
// one constant per workload type and a parser
func (e *GoEmitter) WorkloadTypesFile(workloadTypes []string) (string, []byte, error) {
	var b bytes.Buffer
	b.WriteString(e.header("chart schemas"))
	b.WriteString("import \"fmt\"\n\n")
	b.WriteString("// WorkloadType is the workloadType discriminant of a chart values document\n")
	b.WriteString("type WorkloadType string\n\n")

	b.WriteString("const (\n")
	for _, w := range workloadTypes {
		fmt.Fprintf(&b, "%s WorkloadType = %q\n", goWorkloadTypeConst(w), w)
	}
	b.WriteString(")\n\n")

	b.WriteString("// WorkloadTypes lists every workload type\n")
	b.WriteString("var WorkloadTypes = []WorkloadType{\n")
	for _, w := range workloadTypes {
		fmt.Fprintf(&b, "%s,\n", goWorkloadTypeConst(w))
	}
	b.WriteString("}\n\n")

	b.WriteString(`// ParseWorkloadType converts a string into a WorkloadType
func ParseWorkloadType(s string) (WorkloadType, error) {
	for _, w := range WorkloadTypes {
		if string(w) == s {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown workload type %q", s)
}
`)

	content, err := format.Source(b.Bytes())
	if err != nil {
		return "", nil, fmt.Errorf("failed to format generated code: %w", err)
	}

	return "workload_types.go", content, nil
}

// IndexFile renders index.go with a Charts map from chart name to a
// constructor of its values type
func (e *GoEmitter) IndexFile(charts []string, _ bool) (string, []byte, error) {
	var b bytes.Buffer
	b.WriteString(e.header("chart schemas"))
	b.WriteString("// Charts maps each chart to a constructor of its values document\n")
	b.WriteString("var Charts = map[string]func() any{\n")
	for _, chart := range charts {
		fmt.Fprintf(&b, "%q: func() any { return new(%s) },\n", chart, goValuesTypeName(chart))
	}
	b.WriteString("}\n")

	content, err := format.Source(b.Bytes())
	if err != nil {
		return "", nil, fmt.Errorf("failed to format generated code: %w", err)
	}

	return e.IndexFileName(), content, nil
}

// IndexFileName returns index.go
func (e *GoEmitter) IndexFileName() string {
	return "index.go"
}

func goValuesTypeName(chart string) string {
	return pascalCase(chart) + "Values"
}

func goWorkloadTypeConst(workloadType string) string {
	return goWorkloadTypeName + pascalCase(workloadType)
}

// goFile collects the declarations of one generated file
type goFile struct {
	root  string
	names map[string]bool
	decls []string
}

func (f *goFile) typeName(base string) string {
	name := base
	for i := 2; f.names[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	f.names[name] = true
	return name
}

func (f *goFile) declareStruct(name, doc string, t *Type) {
	// reserve the slot so nested types follow their parent
	idx := len(f.decls)
	f.decls = append(f.decls, "")

	var b strings.Builder
	if doc != "" {
		fmt.Fprintf(&b, "// %s\n", doc)
	}
	fmt.Fprintf(&b, "type %s struct {\n", name)

	fieldNames := map[string]bool{}
	for _, field := range t.Fields {
		fieldName := pascalCase(field.Name)
		for i := 2; fieldNames[fieldName]; i++ {
			fieldName = fmt.Sprintf("%s%d", pascalCase(field.Name), i)
		}
		fieldNames[fieldName] = true

		if field.Type.Description != "" {
			for _, line := range strings.Split(strings.TrimSpace(field.Type.Description), "\n") {
				fmt.Fprintf(&b, "// %s\n", strings.TrimSpace(line))
			}
		}

		tag := field.Name
		if !field.Required {
			tag += ",omitempty"
		}

		fmt.Fprintf(&b, "%s %s `json:%q`\n", fieldName, f.fieldType(field, name), tag)
	}

	b.WriteString("}\n")
	f.decls[idx] = b.String()
}

func (f *goFile) fieldType(field Field, parent string) string {
	// only the root discriminant is backed by the generated enumeration
	if parent == f.root && field.Name == workloadTypeField && isWorkloadTypeConst(field.Type) {
		return pointerIf(!field.Required, goWorkloadTypeName)
	}
	return f.goType(field.Type, parent, pascalCase(field.Name), !field.Required)
}

func (f *goFile) goType(t *Type, parent, field string, optional bool) string {
	switch t.Kind {
	case KindString, KindLiteral:
		return pointerIf(optional, "string")
	case KindNumber:
		return pointerIf(optional, "float64")
	case KindInteger:
		return pointerIf(optional, "int64")
	case KindBoolean:
		return pointerIf(optional, "bool")
	case KindObject:
		if len(t.Fields) == 0 {
			return "map[string]any"
		}
		name := f.typeName(parent + field)
		f.declareStruct(name, "", t)
		return pointerIf(optional, name)
	case KindMap:
		return "map[string]" + f.goType(t.Elem, parent, field+"Value", false)
	case KindArray:
		return "[]" + f.goType(t.Elem, parent, field+"Item", false)
	case KindUnion:
		// a nullable single type keeps its Go type, other unions are untyped
		var types []*Type
		nullable := false
		for _, v := range t.Variants {
			if v.Kind == KindNull {
				nullable = true
				continue
			}
			types = append(types, v)
		}
		if len(types) == 1 {
			return f.goType(types[0], parent, field, optional || nullable)
		}
		return "any"
	default:
		return "any"
	}
}

// isWorkloadTypeConst matches the constants WorkloadTypeOf extracts
func isWorkloadTypeConst(t *Type) bool {
	return t.Kind == KindLiteral && t.Const && len(t.Literals) == 1 && t.Literals[0] != ""
}

func pointerIf(optional bool, typ string) string {
	if optional {
		return "*" + typ
	}
	return typ
}
