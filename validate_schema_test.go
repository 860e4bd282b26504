package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromWire(t *testing.T, wireJSON string) *Schema {
	t.Helper()
	w := decode(t, wireJSON)
	s, err := FromWire(w)
	require.NoError(t, err)
	return s
}

func TestValidateSchemaOK(t *testing.T) {
	tests := []string{
		`{"type":"string"}`,
		`{"properties":{"a":{"type":"string"}},"optionalProperties":{"b":{"type":"string"}}}`,
		`{"enum":["A","B"]}`,
		`{"definitions":{"a":{"type":"string"}},"ref":"a"}`,
		`{"discriminator":"k","mapping":{"a":{"properties":{"x":{"type":"boolean"}}}}}`,
	}
	for _, wire := range tests {
		s := mustFromWire(t, wire)
		assert.NoError(t, s.ValidateSchema(), wire)
	}
}

func TestValidateSchemaNonRootDefinitions(t *testing.T) {
	s := mustFromWire(t, `{"elements":{"definitions":{"a":{"type":"string"}},"type":"string"}}`)
	err := s.ValidateSchema()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonRootDefinitions)
}

func TestValidateSchemaNoSuchDefinition(t *testing.T) {
	s := mustFromWire(t, `{"ref":"missing"}`)
	err := s.ValidateSchema()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSuchDefinition)
}

func TestValidateSchemaEmptyEnum(t *testing.T) {
	s := mustFromWire(t, `{"enum":[]}`)
	err := s.ValidateSchema()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyEnum)
}

func TestValidateSchemaRepeatedProperty(t *testing.T) {
	s := mustFromWire(t, `{"properties":{"a":{"type":"string"}},"optionalProperties":{"a":{"type":"string"}}}`)
	err := s.ValidateSchema()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRepeatedProperty)
}

func TestValidateSchemaNullableMapping(t *testing.T) {
	s := mustFromWire(t, `{"discriminator":"k","mapping":{"a":{"properties":{},"nullable":true}}}`)
	err := s.ValidateSchema()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNullableMapping)
}

func TestValidateSchemaNonPropertiesMapping(t *testing.T) {
	s := mustFromWire(t, `{"discriminator":"k","mapping":{"a":{"type":"string"}}}`)
	err := s.ValidateSchema()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonPropertiesMapping)
}

func TestValidateSchemaRepeatedDiscriminator(t *testing.T) {
	s := mustFromWire(t, `{"discriminator":"k","mapping":{"a":{"properties":{"k":{"type":"string"}}}}}`)
	err := s.ValidateSchema()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRepeatedDiscriminator)
}
