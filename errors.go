package jtd

import (
	"errors"
	"fmt"
)

// === Form Classification Errors ===
//
// These are returned by FromWire when a wire schema's keyword-presence
// signature does not match one of the thirteen legal JTD forms, or when a
// recognised keyword carries an illegal value.
var (
	// ErrInvalidForm is returned when a wire schema's keyword combination
	// does not correspond to any of the thirteen legal JTD forms.
	ErrInvalidForm = errors.New("invalid form")

	// ErrInvalidType is returned when a "type" keyword's value is not one
	// of the eleven recognised JTD primitives.
	ErrInvalidType = errors.New("invalid type")

	// ErrDuplicatedEnumValue is returned when an "enum" array repeats a
	// string value.
	ErrDuplicatedEnumValue = errors.New("duplicated enum value")
)

// FromWireError wraps a form-classification failure with the offending
// value, where one exists.
type FromWireError struct {
	Err   error
	Value string
}

func (e *FromWireError) Error() string {
	if e.Value == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Value)
}

func (e *FromWireError) Unwrap() error {
	return e.Err
}

func invalidForm() error {
	return &FromWireError{Err: ErrInvalidForm}
}

func invalidType(value string) error {
	return &FromWireError{Err: ErrInvalidType, Value: value}
}

func duplicatedEnumValue(value string) error {
	return &FromWireError{Err: ErrDuplicatedEnumValue, Value: value}
}

// === Schema-Validity Errors ===
//
// These are returned by Schema.ValidateSchema when a strict Schema, though
// well-formed as a tagged variant, breaks one of RFC 8927's schema-validity
// rules.
var (
	// ErrNonRootDefinitions is returned when "definitions" is non-empty at
	// any position other than the root schema.
	ErrNonRootDefinitions = errors.New("non-root definitions")

	// ErrNoSuchDefinition is returned when a Ref names a key absent from
	// the root schema's definitions.
	ErrNoSuchDefinition = errors.New("no such definition")

	// ErrEmptyEnum is returned when an Enum's value set is empty.
	ErrEmptyEnum = errors.New("empty enum")

	// ErrRepeatedProperty is returned when a Properties schema has a key
	// present in both its required and optional maps.
	ErrRepeatedProperty = errors.New("repeated property")

	// ErrNullableMapping is returned when a discriminator mapping value is
	// nullable.
	ErrNullableMapping = errors.New("nullable mapping")

	// ErrNonPropertiesMapping is returned when a discriminator mapping
	// value is not a Properties-form schema.
	ErrNonPropertiesMapping = errors.New("non-properties mapping")

	// ErrRepeatedDiscriminator is returned when a discriminator's tag is
	// also listed under a mapping entry's required or optional properties.
	ErrRepeatedDiscriminator = errors.New("repeated discriminator")
)

// SchemaInvalidError wraps a schema-validity failure with the offending
// name, where one exists (a definition name, a property name, a tag).
type SchemaInvalidError struct {
	Err  error
	Name string
}

func (e *SchemaInvalidError) Error() string {
	if e.Name == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Name)
}

func (e *SchemaInvalidError) Unwrap() error {
	return e.Err
}

func nonRootDefinitions() error {
	return &SchemaInvalidError{Err: ErrNonRootDefinitions}
}

func noSuchDefinition(name string) error {
	return &SchemaInvalidError{Err: ErrNoSuchDefinition, Name: name}
}

func emptyEnum() error {
	return &SchemaInvalidError{Err: ErrEmptyEnum}
}

func repeatedProperty(name string) error {
	return &SchemaInvalidError{Err: ErrRepeatedProperty, Name: name}
}

func nullableMapping() error {
	return &SchemaInvalidError{Err: ErrNullableMapping}
}

func nonPropertiesMapping() error {
	return &SchemaInvalidError{Err: ErrNonPropertiesMapping}
}

func repeatedDiscriminator(tag string) error {
	return &SchemaInvalidError{Err: ErrRepeatedDiscriminator, Name: tag}
}

// === Instance Validation Errors ===
//
// ValidateError is the one runtime failure the Instance Validator can
// surface to its caller, as opposed to the ErrorIndicator values it
// returns as ordinary data.
var (
	// ErrMaxDepthExceeded is returned when a chain of Ref evaluations
	// brings the schema-path stack count up to the configured MaxDepth.
	ErrMaxDepthExceeded = errors.New("max depth exceeded")
)

// ValidateError wraps a runtime validation failure.
type ValidateError struct {
	Err error
}

func (e *ValidateError) Error() string {
	return e.Err.Error()
}

func (e *ValidateError) Unwrap() error {
	return e.Err
}

func maxDepthExceeded() error {
	return &ValidateError{Err: ErrMaxDepthExceeded}
}
