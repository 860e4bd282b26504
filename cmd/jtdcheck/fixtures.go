package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/kaptinlin/jtd"
)

// invalid_schemas fixture files are a JSON object mapping case name to wire
// schema, not an array of named entries: {"name": {...wire schema...}, ...}.
// validation fixture files are likewise a map from case name to
// validationCase, not an array.

// validationCase is one entry of a validation fixture file: a wire schema,
// an instance to check it against, and the error indicators that must
// come back from Validate. It carries its own error-indicator shape,
// rather than jtd.ErrorIndicator directly, because goccy/go-yaml matches
// on yaml struct tags and jtd.ErrorIndicator only carries json ones.
type validationCase struct {
	Schema   json.RawMessage    `json:"schema" yaml:"schema"`
	Instance any                `json:"instance" yaml:"instance"`
	Errors   []fixtureIndicator `json:"errors" yaml:"errors"`
}

type fixtureIndicator struct {
	InstancePath []string `json:"instancePath" yaml:"instancePath"`
	SchemaPath   []string `json:"schemaPath" yaml:"schemaPath"`
}

func loadFixture(path, format string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("jtdcheck: reading %s: %w", path, err)
	}
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("jtdcheck: decoding %s as yaml: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("jtdcheck: decoding %s as json: %w", path, err)
		}
	}
	return nil
}

// runInvalidSchemas loads an invalid_schemas fixture file and checks that
// every listed schema is rejected, either at strict decoding
// (DecodeWireSchema), at the wire-classification stage (FromWire) or at
// the schema-validity stage (Schema.ValidateSchema). A schema that makes
// it through all three stages without error is a failure of this corpus
// entry.
func runInvalidSchemas(out *printer, path, format string, verbose bool) (total, failed int) {
	var cases map[string]json.RawMessage
	if err := loadFixture(path, format, &cases); err != nil {
		out.failf(path, err.Error())
		return 1, 1
	}

	for name, raw := range cases {
		total++
		wire, err := jtd.DecodeWireSchema(raw)
		if err != nil {
			if verbose {
				out.passf(name)
			}
			continue
		}

		schema, err := jtd.FromWire(wire)
		if err != nil {
			if verbose {
				out.passf(name)
			}
			continue
		}

		if err := schema.ValidateSchema(); err != nil {
			if verbose {
				out.passf(name)
			}
			continue
		}

		failed++
		out.failf(name, "schema was accepted, want rejection")
	}
	return total, failed
}

// runValidationCases loads a validation fixture file and checks that
// Validate reports exactly the expected error indicators for each case,
// independent of order.
func runValidationCases(out *printer, path, format string, verbose bool) (total, failed int) {
	var cases map[string]validationCase
	if err := loadFixture(path, format, &cases); err != nil {
		out.failf(path, err.Error())
		return 1, 1
	}

	for name, c := range cases {
		total++

		wire, err := jtd.DecodeWireSchema(c.Schema)
		if err != nil {
			failed++
			out.failf(name, fmt.Sprintf("decoding schema: %s", err))
			continue
		}

		schema, err := jtd.FromWire(wire)
		if err != nil {
			failed++
			out.failf(name, fmt.Sprintf("FromWire: %s", err))
			continue
		}

		if err := schema.ValidateSchema(); err != nil {
			failed++
			out.failf(name, fmt.Sprintf("ValidateSchema: %s", err))
			continue
		}

		got, err := jtd.Validate(schema, c.Instance, jtd.Options{})
		if err != nil {
			failed++
			out.failf(name, fmt.Sprintf("Validate: %s", err))
			continue
		}

		if !sameErrorSet(got, c.Errors) {
			failed++
			out.failf(name, fmt.Sprintf("got %d error indicators, want %d", len(got), len(c.Errors)))
			continue
		}

		if verbose {
			out.passf(name)
		}
	}
	return total, failed
}

// sameErrorSet reports whether got and want contain the same error
// indicators, ignoring order, since RFC 8927 leaves indicator order
// unspecified.
func sameErrorSet(got []jtd.ErrorIndicator, want []fixtureIndicator) bool {
	if len(got) != len(want) {
		return false
	}
	remaining := make([]fixtureIndicator, len(want))
	copy(remaining, want)

	for _, g := range got {
		found := -1
		for i, w := range remaining {
			if pathsEqual(g.InstancePath, w.InstancePath) && pathsEqual(g.SchemaPath, w.SchemaPath) {
				found = i
				break
			}
		}
		if found == -1 {
			return false
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	return true
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
