// Package jtd implements RFC 8927, the JSON Type Definition (JTD)
// specification: a schema format for describing the shape of JSON data,
// and a validator that checks a JSON instance against a schema, returning
// RFC 8927 §3.2 error indicators.
//
// The package is split into three stages. FromWire converts a loose,
// keyword-optional WireSchema into a strict, tagged Schema. ValidateSchema
// checks schema-validity rules that span the whole schema tree (reference
// resolution, enum non-emptiness, property disjointness, discriminator
// mapping constraints). Validate walks a schema-valid Schema alongside a
// JSON instance and returns the errors found.
package jtd
