package jtd

import "strconv"

// Options configures the Instance Validator.
type Options struct {
	// MaxDepth bounds the number of stacked Ref evaluations, guarding
	// against cyclic ref schemas. Zero disables the limit.
	MaxDepth int

	// MaxErrors stops evaluation once this many error indicators have
	// been produced. Zero disables the limit (collect all).
	MaxErrors int
}

// ErrorIndicator is the RFC 8927 §3.2 error shape: a pair of token
// sequences locating the failure in the instance and in the schema.
type ErrorIndicator struct {
	InstancePath []string `json:"instancePath"`
	SchemaPath   []string `json:"schemaPath"`
}

// Validate walks schema (which must already be schema-valid, i.e. have
// passed Schema.ValidateSchema) alongside instance and returns every error
// indicator found, or a *ValidateError if the schema's ref graph pushed
// the schema-path stack count up to opts.MaxDepth.
//
// instance must be built from Go's standard "decode JSON into any" shapes:
// nil, bool, float64 (or a type implementing Float64() (float64, error),
// such as encoding/json.Number or goccy/go-json's equivalent), string,
// []any, and map[string]any.
func Validate(schema *Schema, instance any, opts Options) ([]ErrorIndicator, error) {
	st := &evalState{
		root:         schema,
		opts:         opts,
		schemaStacks: [][]string{{}},
	}

	_, err := st.eval(schema, instance, "")
	if err != nil {
		return nil, err
	}
	return st.errors, nil
}

// evalState is the Instance Validator's per-call state: the two path
// stacks of RFC 8927 (schemaStacks is the "stack of stacks") and the
// accumulated error list. Every validation call owns its own evalState;
// nothing here is shared across concurrent calls.
type evalState struct {
	root         *Schema
	opts         Options
	instancePath []string
	schemaStacks [][]string
	errors       []ErrorIndicator
}

func (st *evalState) pushInstance(tok string) {
	st.instancePath = append(st.instancePath, tok)
}

func (st *evalState) popInstance() {
	st.instancePath = st.instancePath[:len(st.instancePath)-1]
}

func (st *evalState) pushSchema(tok string) {
	top := len(st.schemaStacks) - 1
	st.schemaStacks[top] = append(st.schemaStacks[top], tok)
}

func (st *evalState) popSchema() {
	top := len(st.schemaStacks) - 1
	s := st.schemaStacks[top]
	st.schemaStacks[top] = s[:len(s)-1]
}

// pushRef starts a fresh inner schema-path stack rooted at
// ["definitions", def].
func (st *evalState) pushRef(def string) error {
	st.schemaStacks = append(st.schemaStacks, []string{"definitions", def})
	if st.opts.MaxDepth != 0 && len(st.schemaStacks) == st.opts.MaxDepth {
		return maxDepthExceeded()
	}
	return nil
}

func (st *evalState) popRef() {
	st.schemaStacks = st.schemaStacks[:len(st.schemaStacks)-1]
}

// addError snapshots the current instance and schema paths into a new
// ErrorIndicator and reports whether the caller should unwind because
// opts.MaxErrors has just been reached.
func (st *evalState) addError() (done bool) {
	ip := append([]string{}, st.instancePath...)
	sp := append([]string{}, st.schemaStacks[len(st.schemaStacks)-1]...)
	st.errors = append(st.errors, ErrorIndicator{InstancePath: ip, SchemaPath: sp})

	return st.opts.MaxErrors != 0 && len(st.errors) == st.opts.MaxErrors
}

// eval validates instance against schema, pushing and popping path tokens
// around each recursive step so every addError call snapshots the path at
// the moment of failure. parentTag carries the discriminator tag field
// name down into a Properties schema reached through a Discriminator
// mapping, so that field is not also flagged as an unrecognised
// additional property.
//
// The returned bool is true once opts.MaxErrors has been reached and the
// caller should stop recursing without treating it as a failure.
func (st *evalState) eval(schema *Schema, instance any, parentTag string) (bool, error) {
	if instance == nil && schema.IsNullable() {
		return false, nil
	}

	switch schema.Form {
	case FormEmpty:
		return false, nil

	case FormRef:
		return st.evalRef(schema, instance)

	case FormType:
		st.pushSchema("type")
		defer st.popSchema()
		if checkType(schema.Type, instance) {
			return false, nil
		}
		return st.addError(), nil

	case FormEnum:
		st.pushSchema("enum")
		defer st.popSchema()
		s, ok := instance.(string)
		if ok {
			if _, inSet := schema.Enum[s]; inSet {
				return false, nil
			}
		}
		return st.addError(), nil

	case FormElements:
		return st.evalElements(schema, instance)

	case FormProperties:
		return st.evalProperties(schema, instance, parentTag)

	case FormValues:
		return st.evalValues(schema, instance)

	case FormDiscriminator:
		return st.evalDiscriminator(schema, instance)
	}

	return false, nil
}

func (st *evalState) evalRef(schema *Schema, instance any) (bool, error) {
	if err := st.pushRef(schema.Ref); err != nil {
		return false, err
	}
	defer st.popRef()

	target := st.root.Definitions[schema.Ref]
	return st.eval(target, instance, "")
}

func (st *evalState) evalElements(schema *Schema, instance any) (bool, error) {
	st.pushSchema("elements")
	defer st.popSchema()

	arr, ok := instance.([]any)
	if !ok {
		return st.addError(), nil
	}

	for i, elem := range arr {
		st.pushInstance(strconv.Itoa(i))
		done, err := st.eval(schema.Elements, elem, "")
		st.popInstance()
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
	return false, nil
}

func (st *evalState) evalProperties(schema *Schema, instance any, parentTag string) (bool, error) {
	obj, ok := instance.(map[string]any)
	if !ok {
		tok := "optionalProperties"
		if schema.HasRequired {
			tok = "properties"
		}
		st.pushSchema(tok)
		done := st.addError()
		st.popSchema()
		return done, nil
	}

	st.pushSchema("properties")
	for name, sub := range schema.Required {
		st.pushSchema(name)
		val, present := obj[name]
		var done bool
		if present {
			var err error
			st.pushInstance(name)
			done, err = st.eval(sub, val, "")
			st.popInstance()
			if err != nil {
				st.popSchema()
				st.popSchema()
				return false, err
			}
		} else {
			done = st.addError()
		}
		st.popSchema()
		if done {
			st.popSchema()
			return true, nil
		}
	}
	st.popSchema()

	st.pushSchema("optionalProperties")
	for name, sub := range schema.Optional {
		val, present := obj[name]
		if !present {
			continue
		}
		st.pushSchema(name)
		st.pushInstance(name)
		done, err := st.eval(sub, val, "")
		st.popInstance()
		st.popSchema()
		if err != nil {
			st.popSchema()
			return false, err
		}
		if done {
			st.popSchema()
			return true, nil
		}
	}
	st.popSchema()

	if !schema.AdditionalProperties {
		for key := range obj {
			if key == parentTag {
				continue
			}
			if _, ok := schema.Required[key]; ok {
				continue
			}
			if _, ok := schema.Optional[key]; ok {
				continue
			}
			st.pushInstance(key)
			done := st.addError()
			st.popInstance()
			if done {
				return true, nil
			}
		}
	}

	return false, nil
}

func (st *evalState) evalValues(schema *Schema, instance any) (bool, error) {
	st.pushSchema("values")
	defer st.popSchema()

	obj, ok := instance.(map[string]any)
	if !ok {
		return st.addError(), nil
	}

	for name, val := range obj {
		st.pushInstance(name)
		done, err := st.eval(schema.Values, val, "")
		st.popInstance()
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
	return false, nil
}

func (st *evalState) evalDiscriminator(schema *Schema, instance any) (bool, error) {
	obj, ok := instance.(map[string]any)
	if !ok {
		st.pushSchema("discriminator")
		done := st.addError()
		st.popSchema()
		return done, nil
	}

	tagVal, present := obj[schema.Tag]
	if !present {
		st.pushSchema("discriminator")
		done := st.addError()
		st.popSchema()
		return done, nil
	}

	tagStr, isStr := tagVal.(string)
	if !isStr {
		st.pushSchema("discriminator")
		st.pushInstance(schema.Tag)
		done := st.addError()
		st.popInstance()
		st.popSchema()
		return done, nil
	}

	mapped, ok := schema.Mapping[tagStr]
	if !ok {
		st.pushSchema("mapping")
		st.pushInstance(schema.Tag)
		done := st.addError()
		st.popInstance()
		st.popSchema()
		return done, nil
	}

	st.pushSchema("mapping")
	st.pushSchema(tagStr)
	done, err := st.eval(mapped, instance, schema.Tag)
	st.popSchema()
	st.popSchema()
	return done, err
}
