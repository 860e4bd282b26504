package jtd

import "math"

// numberValue reports the float64 value of instance if it decoded as a
// JSON number, in either the default any-decoding shape (float64) or the
// json.Number shape a caller may have chosen via a Decoder.UseNumber()
// (goccy/go-json mirrors encoding/json's two decoding shapes here).
func numberValue(instance any) (float64, bool) {
	switch v := instance.(type) {
	case float64:
		return v, true
	case jsonNumber:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// jsonNumber mirrors encoding/json.Number and goccy/go-json's equivalent,
// without importing either package just for this one interface shape.
type jsonNumber interface {
	Float64() (float64, error)
}

// checkType implements the Type-form numeric and string matching rules of
// RFC 8927: booleans and strings match their Go kind directly, floats
// accept any JSON number, and the six integer primitives additionally
// require a zero fractional part within the primitive's inclusive range.
func checkType(prim Primitive, instance any) bool {
	switch prim {
	case Boolean:
		_, ok := instance.(bool)
		return ok

	case Float32, Float64:
		_, ok := numberValue(instance)
		return ok

	case Int8, Uint8, Int16, Uint16, Int32, Uint32:
		f, ok := numberValue(instance)
		if !ok || f != math.Trunc(f) {
			return false
		}
		r := intRanges[prim]
		return f >= r.min && f <= r.max

	case String:
		_, ok := instance.(string)
		return ok

	case Timestamp:
		s, ok := instance.(string)
		return ok && isRFC3339(s)
	}

	return false
}
