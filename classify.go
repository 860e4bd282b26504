package jtd

// FromWire converts a WireSchema into a strict Schema, classifying its
// form by which JTD keywords are present. It rejects any
// keyword combination that does not match one of the thirteen legal form
// signatures, but does not itself check schema-validity rules that span
// more than the immediate wire schema (emptiness of enums, disjointness of
// required/optional, reference resolution, ...) — those belong to
// Schema.ValidateSchema.
//
// Sub-schemas are converted recursively by the same function; definitions
// are converted as a pass-through without regard to their position (a
// non-root definitions map is a ValidateSchema concern, not a FromWire
// one).
func FromWire(w *WireSchema) (*Schema, error) {
	if w == nil {
		w = &WireSchema{}
	}

	form, err := classifyForm(w)
	if err != nil {
		return nil, err
	}

	s := &Schema{
		Form:     form,
		Nullable: w.Nullable != nil && *w.Nullable,
	}

	if w.Metadata != nil {
		s.Metadata = w.Metadata
	} else {
		s.Metadata = map[string]any{}
	}

	if w.Definitions != nil {
		defs := make(SchemaMap, len(w.Definitions))
		for name, wd := range w.Definitions {
			sd, err := FromWire(wd)
			if err != nil {
				return nil, err
			}
			defs[name] = sd
		}
		s.Definitions = defs
	} else {
		s.Definitions = SchemaMap{}
	}

	switch form {
	case FormRef:
		s.Ref = *w.Ref

	case FormType:
		prim, ok := primitivesByName[*w.Type]
		if !ok {
			return nil, invalidType(*w.Type)
		}
		s.Type = prim

	case FormEnum:
		set := make(map[string]struct{}, len(w.Enum))
		for _, v := range w.Enum {
			if _, dup := set[v]; dup {
				return nil, duplicatedEnumValue(v)
			}
			set[v] = struct{}{}
		}
		s.Enum = set

	case FormElements:
		sub, err := FromWire(w.Elements)
		if err != nil {
			return nil, err
		}
		s.Elements = sub

	case FormProperties:
		s.HasRequired = w.Properties != nil
		s.AdditionalProperties = w.AdditionalProperties != nil && *w.AdditionalProperties

		required := make(SchemaMap, len(w.Properties))
		for name, wp := range w.Properties {
			sp, err := FromWire(wp)
			if err != nil {
				return nil, err
			}
			required[name] = sp
		}
		s.Required = required

		optional := make(SchemaMap, len(w.OptionalProperties))
		for name, wp := range w.OptionalProperties {
			sp, err := FromWire(wp)
			if err != nil {
				return nil, err
			}
			optional[name] = sp
		}
		s.Optional = optional

	case FormValues:
		sub, err := FromWire(w.Values)
		if err != nil {
			return nil, err
		}
		s.Values = sub

	case FormDiscriminator:
		s.Tag = *w.Discriminator

		mapping := make(SchemaMap, len(w.Mapping))
		for name, wm := range w.Mapping {
			sm, err := FromWire(wm)
			if err != nil {
				return nil, err
			}
			mapping[name] = sm
		}
		s.Mapping = mapping
	}

	return s, nil
}

// classifyForm computes the ten-keyword presence vector of RFC 8927 and
// matches it against the thirteen legal patterns.
func classifyForm(w *WireSchema) (Form, error) {
	hasRef := w.Ref != nil
	hasType := w.Type != nil
	hasEnum := w.Enum != nil
	hasElements := w.Elements != nil
	hasProperties := w.Properties != nil
	hasOptionalProperties := w.OptionalProperties != nil
	hasAdditionalProperties := w.AdditionalProperties != nil
	hasValues := w.Values != nil
	hasDiscriminator := w.Discriminator != nil
	hasMapping := w.Mapping != nil

	present := 0
	for _, b := range []bool{hasRef, hasType, hasEnum, hasElements, hasProperties,
		hasOptionalProperties, hasAdditionalProperties, hasValues, hasDiscriminator, hasMapping} {
		if b {
			present++
		}
	}

	switch {
	case present == 0:
		return FormEmpty, nil

	case present == 1 && hasRef:
		return FormRef, nil

	case present == 1 && hasType:
		return FormType, nil

	case present == 1 && hasEnum:
		return FormEnum, nil

	case present == 1 && hasElements:
		return FormElements, nil

	case (hasProperties || hasOptionalProperties) &&
		!hasRef && !hasType && !hasEnum && !hasElements && !hasValues && !hasDiscriminator && !hasMapping:
		return FormProperties, nil

	case present == 1 && hasValues:
		return FormValues, nil

	case hasDiscriminator && hasMapping &&
		!hasRef && !hasType && !hasEnum && !hasElements && !hasProperties && !hasOptionalProperties &&
		!hasAdditionalProperties && !hasValues:
		return FormDiscriminator, nil
	}

	return 0, invalidForm()
}
