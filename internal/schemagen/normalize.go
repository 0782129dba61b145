package schemagen

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	definitionsKey = "definitions"
	defsKey        = "$defs"
)

// keywords holding a map of subschemas
var schemaMapKeywords = map[string]bool{
	"properties":        true,
	"patternProperties": true,
	"dependentSchemas":  true,
	defsKey:             true,
	definitionsKey:      true,
}

// keywords holding a subschema or a list of subschemas
var schemaKeywords = map[string]bool{
	"items":                 true,
	"prefixItems":           true,
	"additionalItems":       true,
	"additionalProperties":  true,
	"unevaluatedItems":      true,
	"unevaluatedProperties": true,
	"contains":              true,
	"propertyNames":         true,
	"not":                   true,
	"if":                    true,
	"then":                  true,
	"else":                  true,
	"allOf":                 true,
	"anyOf":                 true,
	"oneOf":                 true,
}

type schemaObject = orderedmap.OrderedMap[string, json.RawMessage]

// normalizeSchema rewrites draft-07 constructs into the shape the parser
// understands, keeping property order: root definitions are moved under $defs
// and type arrays become anyOf branches
func normalizeSchema(data []byte) ([]byte, error) {
	root, err := normalizeNode(data)
	if err != nil {
		return nil, err
	}

	obj, ok, err := decodeObject(root)
	if err != nil || !ok {
		return root, err
	}

	definitions, ok := obj.Get(definitionsKey)
	if !ok {
		return root, nil
	}
	obj.Delete(definitionsKey)

	defs, err := mergeDefinitions(obj, definitions)
	if err != nil {
		return nil, err
	}
	obj.Set(defsKey, defs)

	return json.Marshal(obj)
}

func mergeDefinitions(obj *schemaObject, definitions json.RawMessage) (json.RawMessage, error) {
	existing, ok := obj.Get(defsKey)
	if !ok {
		return definitions, nil
	}

	merged, isObject, err := decodeObject(existing)
	if err != nil {
		return nil, err
	}
	legacy, legacyIsObject, err := decodeObject(definitions)
	if err != nil {
		return nil, err
	}
	if !isObject || !legacyIsObject {
		return nil, fmt.Errorf("%s and %s must be objects", defsKey, definitionsKey)
	}

	for p := legacy.Oldest(); p != nil; p = p.Next() {
		if _, ok := merged.Get(p.Key); !ok {
			merged.Set(p.Key, p.Value)
		}
	}

	return json.Marshal(merged)
}

// normalizeNode normalizes a schema, a boolean schema or a list of schemas
func normalizeNode(data json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return data, nil
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		for i := range items {
			item, err := normalizeNode(items[i])
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return json.Marshal(items)
	case '{':
		obj, _, err := decodeObject(trimmed)
		if err != nil {
			return nil, err
		}
		return normalizeObject(obj)
	default:
		return data, nil
	}
}

func normalizeObject(obj *schemaObject) (json.RawMessage, error) {
	if raw, ok := obj.Get("type"); ok {
		expanded, err := expandTypeArray(obj, raw)
		if err != nil {
			return nil, err
		}
		if expanded != nil {
			obj = expanded
		}
	}

	for p := obj.Oldest(); p != nil; p = p.Next() {
		var (
			value json.RawMessage
			err   error
		)

		switch {
		case schemaMapKeywords[p.Key]:
			value, err = normalizeSchemaMap(p.Value)
		case schemaKeywords[p.Key]:
			value, err = normalizeNode(p.Value)
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Key, err)
		}
		p.Value = value
	}

	return json.Marshal(obj)
}

func normalizeSchemaMap(data json.RawMessage) (json.RawMessage, error) {
	schemas, ok, err := decodeObject(data)
	if err != nil || !ok {
		return data, err
	}

	for p := schemas.Oldest(); p != nil; p = p.Next() {
		value, err := normalizeNode(p.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Key, err)
		}
		p.Value = value
	}

	return json.Marshal(schemas)
}

// expandTypeArray turns {"type": ["string", "null"], ...} into
// {"anyOf": [{"type": "string", ...}, {"type": "null", ...}]}. It returns nil
// when the type is a single name.
func expandTypeArray(obj *schemaObject, raw json.RawMessage) (*schemaObject, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil
	}

	var types []string
	if err := json.Unmarshal(trimmed, &types); err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}

	if len(types) == 1 {
		single, err := json.Marshal(types[0])
		if err != nil {
			return nil, err
		}
		obj.Set("type", single)
		return nil, nil
	}

	// an existing combinator already describes the alternatives
	_, hasAnyOf := obj.Get("anyOf")
	_, hasOneOf := obj.Get("oneOf")
	if hasAnyOf || hasOneOf || len(types) == 0 {
		obj.Delete("type")
		return nil, nil
	}

	result := orderedmap.New[string, json.RawMessage]()
	for _, key := range []string{"title", "description"} {
		if value, ok := obj.Get(key); ok {
			result.Set(key, value)
		}
	}

	branches := make([]*schemaObject, 0, len(types))
	for _, name := range types {
		branch := orderedmap.New[string, json.RawMessage]()
		for p := obj.Oldest(); p != nil; p = p.Next() {
			switch p.Key {
			case "title", "description":
				continue
			case "type":
				typeName, err := json.Marshal(name)
				if err != nil {
					return nil, err
				}
				branch.Set("type", typeName)
			default:
				branch.Set(p.Key, p.Value)
			}
		}
		branches = append(branches, branch)
	}

	anyOf, err := json.Marshal(branches)
	if err != nil {
		return nil, err
	}
	result.Set("anyOf", anyOf)

	return result, nil
}

func decodeObject(data json.RawMessage) (*schemaObject, bool, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false, nil
	}

	obj := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(trimmed, obj); err != nil {
		return nil, false, err
	}
	return obj, true, nil
}
