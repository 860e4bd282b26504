package jtd

// ValidateSchema performs the RFC 8927 schema-validity pass over s,
// treating s as the candidate root. It threads the root by
// reference through the recursive walk so that Ref can check the root's
// Definitions, and returns the first SchemaInvalidError it finds.
//
// Traversal order among sibling sub-schemas is unspecified by RFC 8927.
// This implementation checks a schema's own local rules before descending
// into its children, except that each discriminator mapping entry is
// checked and then descended into before the next entry is checked; a
// schema's own definitions are visited last. Sub-schemas held in maps are
// visited in Go's map iteration order, so when a schema breaks more than
// one rule, which of those errors is returned can differ between calls.
func (s *Schema) ValidateSchema() error {
	return s.validateAgainstRoot(s, true)
}

func (s *Schema) validateAgainstRoot(root *Schema, isRoot bool) error {
	if !isRoot && len(s.Definitions) > 0 {
		return nonRootDefinitions()
	}

	switch s.Form {
	case FormRef:
		if _, ok := root.Definitions[s.Ref]; !ok {
			return noSuchDefinition(s.Ref)
		}

	case FormEnum:
		if len(s.Enum) == 0 {
			return emptyEnum()
		}

	case FormElements:
		if err := s.Elements.validateAgainstRoot(root, false); err != nil {
			return err
		}

	case FormProperties:
		for name := range s.Required {
			if _, dup := s.Optional[name]; dup {
				return repeatedProperty(name)
			}
		}
		for _, sub := range s.Required {
			if err := sub.validateAgainstRoot(root, false); err != nil {
				return err
			}
		}
		for _, sub := range s.Optional {
			if err := sub.validateAgainstRoot(root, false); err != nil {
				return err
			}
		}

	case FormValues:
		if err := s.Values.validateAgainstRoot(root, false); err != nil {
			return err
		}

	case FormDiscriminator:
		for _, sub := range s.Mapping {
			if sub.Form != FormProperties {
				return nonPropertiesMapping()
			}
			if sub.Nullable {
				return nullableMapping()
			}
			if _, ok := sub.Required[s.Tag]; ok {
				return repeatedDiscriminator(s.Tag)
			}
			if _, ok := sub.Optional[s.Tag]; ok {
				return repeatedDiscriminator(s.Tag)
			}
			if err := sub.validateAgainstRoot(root, false); err != nil {
				return err
			}
		}
	}

	for _, def := range s.Definitions {
		if err := def.validateAgainstRoot(root, false); err != nil {
			return err
		}
	}

	return nil
}
