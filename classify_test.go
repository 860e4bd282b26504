package jtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, wireJSON string) *WireSchema {
	t.Helper()
	w, err := DecodeWireSchema([]byte(wireJSON))
	require.NoError(t, err)
	return w
}

func TestFromWireForms(t *testing.T) {
	tests := []struct {
		name     string
		wire     string
		wantForm Form
	}{
		{"empty", `{}`, FormEmpty},
		{"ref", `{"definitions":{"a":{}},"ref":"a"}`, FormRef},
		{"type", `{"type":"string"}`, FormType},
		{"enum", `{"enum":["A","B"]}`, FormEnum},
		{"elements", `{"elements":{"type":"string"}}`, FormElements},
		{"properties only", `{"properties":{"a":{"type":"string"}}}`, FormProperties},
		{"optionalProperties only", `{"optionalProperties":{"a":{"type":"string"}}}`, FormProperties},
		{"properties+optional", `{"properties":{},"optionalProperties":{}}`, FormProperties},
		{"properties+additional", `{"properties":{},"additionalProperties":true}`, FormProperties},
		{"all three properties keywords", `{"properties":{},"optionalProperties":{},"additionalProperties":true}`, FormProperties},
		{"values", `{"values":{"type":"string"}}`, FormValues},
		{"discriminator", `{"discriminator":"k","mapping":{"a":{"properties":{}}}}`, FormDiscriminator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := decode(t, tt.wire)
			s, err := FromWire(w)
			require.NoError(t, err)
			assert.Equal(t, tt.wantForm, s.Form)
		})
	}
}

func TestFromWireInvalidForm(t *testing.T) {
	tests := []struct {
		name string
		wire string
	}{
		{"additionalProperties alone", `{"additionalProperties":true}`},
		{"type and enum together", `{"type":"string","enum":["A"]}`},
		{"discriminator without mapping", `{"discriminator":"k"}`},
		{"mapping without discriminator", `{"mapping":{"a":{"properties":{}}}}`},
		{"ref and elements together", `{"ref":"a","elements":{"type":"string"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := decode(t, tt.wire)
			_, err := FromWire(w)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidForm)
		})
	}
}

func TestFromWireInvalidType(t *testing.T) {
	w := decode(t, `{"type":"int128"}`)
	_, err := FromWire(w)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestFromWireDuplicatedEnumValue(t *testing.T) {
	w := decode(t, `{"enum":["A","B","A"]}`)
	_, err := FromWire(w)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicatedEnumValue)
}

func TestFromWireDefaults(t *testing.T) {
	w := decode(t, `{"type":"string"}`)
	s, err := FromWire(w)
	require.NoError(t, err)
	assert.False(t, s.Nullable)
	assert.Empty(t, s.Metadata)
	assert.Empty(t, s.Definitions)
}

func TestFromWirePropertiesHasRequired(t *testing.T) {
	withRequired := decode(t, `{"properties":{}}`)
	s, err := FromWire(withRequired)
	require.NoError(t, err)
	assert.True(t, s.HasRequired)

	withoutRequired := decode(t, `{"optionalProperties":{"a":{"type":"string"}}}`)
	s2, err := FromWire(withoutRequired)
	require.NoError(t, err)
	assert.False(t, s2.HasRequired)
}

func TestFromWireRecursive(t *testing.T) {
	w := decode(t, `{
		"definitions": {"point": {"properties": {"x": {"type":"float64"}, "y": {"type":"float64"}}}},
		"elements": {"ref": "point"}
	}`)
	s, err := FromWire(w)
	require.NoError(t, err)
	assert.Equal(t, FormElements, s.Form)
	assert.Equal(t, FormRef, s.Elements.Form)
	require.Contains(t, s.Definitions, "point")
	assert.Equal(t, FormProperties, s.Definitions["point"].Form)
}

func TestDecodeWireSchemaStrictMode(t *testing.T) {
	_, err := DecodeWireSchema([]byte(`{"type":"string","bogus":true}`))
	assert.Error(t, err)
}
