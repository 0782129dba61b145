package schemagen

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

const workloadTypeField = "workloadType"

// local reference prefixes, both resolved against the root $defs
var localRefPrefixes = []string{"#/$defs/", "#/definitions/"}

// LoadSchema reads and parses a JSON Schema file
func LoadSchema(path string) (*jsonschema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseSchema(data)
}

// ParseSchema parses a JSON Schema document. Draft-07 definitions and type
// arrays are accepted.
func ParseSchema(data []byte) (*jsonschema.Schema, error) {
	if !json.Valid(data) {
		return nil, errors.New("invalid JSON Schema: malformed JSON")
	}

	normalized, err := normalizeSchema(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON Schema: %w", err)
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(normalized, &schema); err != nil {
		return nil, fmt.Errorf("invalid JSON Schema: %w", err)
	}
	return &schema, nil
}

// WorkloadTypeOf returns the constant of properties.workloadType, if the
// schema declares one as a string
func WorkloadTypeOf(schema *jsonschema.Schema) (string, bool) {
	if schema == nil || schema.Properties == nil {
		return "", false
	}

	property, ok := schema.Properties.Get(workloadTypeField)
	if !ok || property == nil {
		return "", false
	}

	value, ok := property.Const.(string)
	if !ok || value == "" {
		return "", false
	}

	return value, true
}

// Convert turns a JSON Schema into a type declaration. Only local $defs and
// definitions references are resolved.
func Convert(schema *jsonschema.Schema) (*Type, error) {
	c := &converter{
		defs:      schema.Definitions,
		resolving: make(map[string]bool),
	}

	t, err := c.convert(schema)
	if err != nil {
		return nil, err
	}

	t.Title = schema.Title
	return t, nil
}

type converter struct {
	defs      jsonschema.Definitions
	resolving map[string]bool
}

func (c *converter) convert(s *jsonschema.Schema) (*Type, error) {
	if s == nil {
		return &Type{Kind: KindUnknown}, nil
	}

	if s.Ref != "" {
		return c.resolve(s.Ref)
	}

	t := &Type{Description: s.Description}

	if value, ok := s.Const.(string); ok {
		t.Kind = KindLiteral
		t.Literals = []string{value}
		t.Const = true
		return t, nil
	}

	if literals, ok := stringEnum(s.Enum); ok {
		t.Kind = KindLiteral
		t.Literals = literals
		return t, nil
	}

	if s.Type == "" && (len(s.AnyOf) > 0 || len(s.OneOf) > 0) {
		return c.convertUnion(append(append([]*jsonschema.Schema{}, s.AnyOf...), s.OneOf...), t)
	}

	schemaType := s.Type
	if schemaType == "" && s.Properties != nil {
		schemaType = "object"
	}

	switch schemaType {
	case "object":
		return c.convertObject(s, t)
	case "array":
		elem, err := c.convert(s.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		t.Kind = KindArray
		t.Elem = elem
	case "string":
		t.Kind = KindString
	case "number":
		t.Kind = KindNumber
	case "integer":
		t.Kind = KindInteger
	case "boolean":
		t.Kind = KindBoolean
	case "null":
		t.Kind = KindNull
	default:
		t.Kind = KindUnknown
	}

	return t, nil
}

func (c *converter) convertObject(s *jsonschema.Schema, t *Type) (*Type, error) {
	if s.Properties == nil || s.Properties.Len() == 0 {
		if s.AdditionalProperties != nil && !isFalseSchema(s.AdditionalProperties) {
			elem, err := c.convert(s.AdditionalProperties)
			if err != nil {
				return nil, fmt.Errorf("additionalProperties: %w", err)
			}
			t.Kind = KindMap
			t.Elem = elem
			return t, nil
		}

		t.Kind = KindObject
		return t, nil
	}

	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	t.Kind = KindObject
	for p := s.Properties.Oldest(); p != nil; p = p.Next() {
		fieldType, err := c.convert(p.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Key, err)
		}

		t.Fields = append(t.Fields, Field{
			Name:     p.Key,
			Type:     fieldType,
			Required: required[p.Key],
		})
	}

	return t, nil
}

// convertUnion flattens anyOf/oneOf branches into a union. A single branch is
// returned as is.
func (c *converter) convertUnion(branches []*jsonschema.Schema, t *Type) (*Type, error) {
	for i, branch := range branches {
		variant, err := c.convert(branch)
		if err != nil {
			return nil, fmt.Errorf("variant %d: %w", i, err)
		}

		if variant.Kind == KindUnion {
			t.Variants = append(t.Variants, variant.Variants...)
			continue
		}
		t.Variants = append(t.Variants, variant)
	}

	if len(t.Variants) == 1 {
		single := t.Variants[0]
		if single.Description == "" {
			single.Description = t.Description
		}
		return single, nil
	}

	t.Kind = KindUnion
	return t, nil
}

func (c *converter) resolve(ref string) (*Type, error) {
	name, ok := localRefName(ref)
	if !ok {
		return nil, fmt.Errorf("unsupported $ref %q", ref)
	}

	def, ok := c.defs[name]
	if !ok {
		return nil, fmt.Errorf("undefined $ref %q", ref)
	}

	if c.resolving[name] {
		return nil, fmt.Errorf("recursive $ref %q", ref)
	}
	c.resolving[name] = true
	defer delete(c.resolving, name)

	t, err := c.convert(def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	return t, nil
}

func localRefName(ref string) (string, bool) {
	for _, prefix := range localRefPrefixes {
		if strings.HasPrefix(ref, prefix) {
			return strings.TrimPrefix(ref, prefix), true
		}
	}
	return "", false
}

func stringEnum(values []any) ([]string, bool) {
	if len(values) == 0 {
		return nil, false
	}

	literals := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		literals = append(literals, s)
	}
	return literals, true
}

// isFalseSchema reports whether s was decoded from the literal false
func isFalseSchema(s *jsonschema.Schema) bool {
	return reflect.DeepEqual(s, jsonschema.FalseSchema)
}
