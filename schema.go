package jtd

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Form identifies which of the eight JTD structural shapes a Schema takes.
// A Schema's Form is fixed at construction time by FromWire and never
// changes; the fields that are meaningful on a Schema value depend
// entirely on its Form.
type Form uint8

const (
	FormEmpty Form = iota
	FormRef
	FormType
	FormEnum
	FormElements
	FormProperties
	FormValues
	FormDiscriminator
)

func (f Form) String() string {
	switch f {
	case FormEmpty:
		return "empty"
	case FormRef:
		return "ref"
	case FormType:
		return "type"
	case FormEnum:
		return "enum"
	case FormElements:
		return "elements"
	case FormProperties:
		return "properties"
	case FormValues:
		return "values"
	case FormDiscriminator:
		return "discriminator"
	default:
		return "unknown"
	}
}

// Primitive is one of the eleven JTD primitive types a Type-form schema may
// name.
type Primitive uint8

const (
	Boolean Primitive = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
	String
	Timestamp
)

// primitivesByName maps the wire "type" string to its Primitive, and is
// also used in reverse by String() below.
var primitivesByName = map[string]Primitive{
	"boolean":   Boolean,
	"int8":      Int8,
	"uint8":     Uint8,
	"int16":     Int16,
	"uint16":    Uint16,
	"int32":     Int32,
	"uint32":    Uint32,
	"float32":   Float32,
	"float64":   Float64,
	"string":    String,
	"timestamp": Timestamp,
}

func (p Primitive) String() string {
	for name, prim := range primitivesByName {
		if prim == p {
			return name
		}
	}
	return "unknown"
}

// intRange holds the inclusive bounds of an integer Primitive, per RFC 8927.
type intRange struct{ min, max float64 }

var intRanges = map[Primitive]intRange{
	Int8:   {-128, 127},
	Uint8:  {0, 255},
	Int16:  {-32768, 32767},
	Uint16: {0, 65535},
	Int32:  {-2147483648, 2147483647},
	Uint32: {0, 4294967295},
}

// SchemaMap is a named sub-schema collection, used for Schema.Definitions,
// Properties.Required, Properties.Optional, and Discriminator.Mapping.
type SchemaMap map[string]*Schema

// Schema is the strict, tagged-variant internal representation of a JTD
// schema. It is immutable once built by FromWire: sub-schemas
// are owned exclusively by their parent, and Ref fields are name-based,
// resolved against the root's Definitions only at validation time.
type Schema struct {
	Form        Form
	Definitions SchemaMap      // only ever non-empty at the root; see ValidateSchema.
	Metadata    map[string]any // opaque to validation.
	Nullable    bool           // meaningless (and ignored) on FormEmpty, which is always nullable.

	// FormRef
	Ref string

	// FormType
	Type Primitive

	// FormEnum
	Enum map[string]struct{}

	// FormElements
	Elements *Schema

	// FormProperties
	Required             SchemaMap
	Optional             SchemaMap
	HasRequired          bool // was the "properties" keyword present, even with an empty map?
	AdditionalProperties bool

	// FormValues
	Values *Schema

	// FormDiscriminator
	Tag     string
	Mapping SchemaMap
}

// IsNullable reports whether a JSON null instance is accepted by s
// irrespective of its form. FormEmpty accepts null unconditionally.
func (s *Schema) IsNullable() bool {
	return s.Form == FormEmpty || s.Nullable
}

// WireSchema is the loose JSON mirror of a schema described by RFC 8927:
// every JTD keyword is independently optional, and it is the Form
// Classifier's job (FromWire) to reject illegal keyword combinations. This
// type exists purely as a decode target; it is never validated or
// evaluated directly.
type WireSchema struct {
	Definitions map[string]*WireSchema `json:"definitions,omitempty"`
	Metadata    map[string]any         `json:"metadata,omitempty"`
	Nullable    *bool                  `json:"nullable,omitempty"`

	Ref *string `json:"ref,omitempty"`

	Type *string `json:"type,omitempty"`

	Enum []string `json:"enum,omitempty"`

	Elements *WireSchema `json:"elements,omitempty"`

	Properties           map[string]*WireSchema `json:"properties,omitempty"`
	OptionalProperties   map[string]*WireSchema `json:"optionalProperties,omitempty"`
	AdditionalProperties *bool                  `json:"additionalProperties,omitempty"`

	Values *WireSchema `json:"values,omitempty"`

	Discriminator *string              `json:"discriminator,omitempty"`
	Mapping       map[string]*WireSchema `json:"mapping,omitempty"`
}

// DecodeWireSchema parses a single JSON-encoded wire schema in strict
// mode: any key not in the RFC 8927 keyword set is rejected,
// rather than silently ignored, at every nesting level.
func DecodeWireSchema(data []byte) (*WireSchema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w WireSchema
	if err := dec.Decode(&w); err != nil {
		return nil, err
	}
	return &w, nil
}
