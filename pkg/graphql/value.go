// Package graphql renders captured GraphQL variables payloads into plain
// JSON text. Payloads arrive as strings that may carry commented-out
// fields and dynamic-value references; both are handled leniently, so
// anything that cannot be parsed or resolved degrades to a readable
// string instead of an error.
package graphql

import "encoding/json"

// Value is one node of a parsed variables payload. Exactly six concrete
// types implement it: String, Number, Bool, Null, Array and Object.
type Value interface {
	isValue()
}

// String is a JSON string.
type String string

// Number is a JSON number kept in its original textual form, so
// re-serialization does not alter precision or formatting.
type Number string

// Bool is a JSON boolean.
type Bool bool

// Null is the JSON null literal.
type Null struct{}

// Array is an ordered JSON array.
type Array []Value

// Object is a JSON object whose fields keep their source order.
type Object []Field

// Field is a single key/value pair inside an Object.
type Field struct {
	Key   string
	Value Value
}

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Get returns the value of the named field. When a key appears more
// than once the last occurrence wins, matching common JSON decoder
// behavior.
func (o Object) Get(key string) (Value, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// toInterface converts a Value into the representation encoding/json
// expects. Object fields collapse into a map, so duplicate keys keep
// their last value and encoding produces a stable, sorted key order.
func toInterface(v Value) interface{} {
	switch val := v.(type) {
	case String:
		return string(val)
	case Number:
		return json.Number(val)
	case Bool:
		return bool(val)
	case Null:
		return nil
	case Array:
		out := make([]interface{}, len(val))
		for i, elem := range val {
			out[i] = toInterface(elem)
		}
		return out
	case Object:
		out := make(map[string]interface{}, len(val))
		for _, f := range val {
			out[f.Key] = toInterface(f.Value)
		}
		return out
	default:
		return nil
	}
}
