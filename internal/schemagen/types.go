package schemagen

// Kind is the shape of a converted schema node
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindNumber
	KindInteger
	KindBoolean
	KindLiteral
	KindObject
	KindMap
	KindArray
	KindNull
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindLiteral:
		return "literal"
	case KindObject:
		return "object"
	case KindMap:
		return "map"
	case KindArray:
		return "array"
	case KindNull:
		return "null"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Type is a language independent type declaration converted from a JSON
// Schema node
type Type struct {
	Kind Kind

	// Title is the schema title, used to name the root declaration
	Title string

	// Description is copied into the generated comments
	Description string

	// Literals holds the allowed values of a KindLiteral type
	Literals []string

	// Const is set when the literal comes from a const keyword
	Const bool

	// Fields holds the properties of a KindObject type, in schema order
	Fields []Field

	// Elem is the item type of a KindArray and the value type of a KindMap
	Elem *Type

	// Variants holds the alternatives of a KindUnion type
	Variants []*Type
}

// Field is one property of an object type
type Field struct {
	Name     string
	Type     *Type
	Required bool
}

// Field returns the named field of an object type
func (t *Type) Field(name string) (*Field, bool) {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i], true
		}
	}
	return nil, false
}
