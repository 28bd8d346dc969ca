package graphql

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Context supplies environment-variable values during resolution.
type Context interface {
	// EnvironmentVariable returns the current value of the variable
	// with the given id and whether the variable exists.
	EnvironmentVariable(id string) (string, bool)
}

// maxResolveDepth bounds recursion while walking a variables tree.
const maxResolveDepth = 200

// errTooDeep reports a variables tree nested beyond maxResolveDepth.
var errTooDeep = errors.New("variables nested too deeply")

// Resolve replaces every dynamic-value reference in v with its resolved
// text and returns the rewritten tree.
func Resolve(v Value, ctx Context) (Value, error) {
	return resolveValue(v, ctx, 0)
}

func resolveValue(v Value, ctx Context, depth int) (Value, error) {
	if depth > maxResolveDepth {
		return nil, errTooDeep
	}

	switch val := v.(type) {
	case String:
		// A string may itself encode a JSON structure carrying
		// references. Only structures are re-resolved; a string that
		// happens to parse as a scalar (e.g. "42") stays a string.
		parsed, err := parseStripped(string(val))
		if err != nil {
			return val, nil
		}
		switch parsed.(type) {
		case Object, Array:
			return resolveValue(parsed, ctx, depth+1)
		}
		return val, nil
	case Array:
		return resolveSequence(val, ctx, depth)
	case Object:
		if ident, ok := referenceIdentifier(val); ok {
			return resolveReference(ident, val, ctx, depth)
		}
		return resolveMapping(val, ctx, depth)
	default:
		return v, nil
	}
}

// resolveSequence resolves each element in order and joins their text
// forms into one string, the shape expected of a dynamic string made of
// concatenated parts.
func resolveSequence(arr Array, ctx Context, depth int) (Value, error) {
	var b strings.Builder
	for _, elem := range arr {
		resolved, err := resolveValue(elem, ctx, depth+1)
		if err != nil {
			return nil, err
		}
		text, err := valueText(resolved)
		if err != nil {
			return nil, err
		}
		b.WriteString(text)
	}
	return String(b.String()), nil
}

// resolveMapping resolves every field value, and every key that itself
// encodes a reference, keeping field order.
func resolveMapping(obj Object, ctx Context, depth int) (Value, error) {
	resolved := make(Object, 0, len(obj))
	for _, f := range obj {
		key, err := resolveKey(f.Key, ctx, depth)
		if err != nil {
			return nil, err
		}
		value, err := resolveValue(f.Value, ctx, depth+1)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, Field{Key: key, Value: value})
	}
	return resolved, nil
}

// resolveKey re-parses an object key, since keys can encode dynamic
// value references. Keys that do not parse to a reference stay
// unchanged.
func resolveKey(key string, ctx Context, depth int) (string, error) {
	parsed, err := parseStripped(key)
	if err != nil {
		return key, nil
	}
	obj, ok := parsed.(Object)
	if !ok {
		return key, nil
	}
	if _, ok := referenceIdentifier(obj); !ok {
		return key, nil
	}

	resolved, err := resolveValue(obj, ctx, depth+1)
	if err != nil {
		return "", err
	}
	return valueText(resolved)
}

// referenceIdentifier reports whether obj is a dynamic-value reference
// and returns its identifier.
func referenceIdentifier(obj Object) (string, bool) {
	v, ok := obj.Get("identifier")
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	if !ok {
		return "", false
	}
	return string(s), true
}

// resolveReference dispatches on the reference identifier. Unknown
// identifiers fall through to the raw identifier text, so every
// reference resolves to something printable.
func resolveReference(ident string, obj Object, ctx Context, depth int) (Value, error) {
	if ident == envVariableIdentifier {
		return resolveEnvironmentVariable(obj, ctx, depth)
	}
	if name, ok := unsupportedKinds[ident]; ok {
		return String(unsupportedPlaceholder(name)), nil
	}
	return String(ident), nil
}

// resolveEnvironmentVariable looks up the referenced variable through
// ctx. Absent variables resolve to the literal text "null".
func resolveEnvironmentVariable(obj Object, ctx Context, depth int) (Value, error) {
	id, err := environmentVariableID(obj, ctx, depth)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		return String("null"), nil
	}
	value, ok := ctx.EnvironmentVariable(id)
	if !ok {
		return String("null"), nil
	}
	return String(value), nil
}

// environmentVariableID extracts the variable id from the reference's
// data mapping. The id can itself be a dynamic value, so it is resolved
// before use.
func environmentVariableID(obj Object, ctx Context, depth int) (string, error) {
	data, ok := obj.Get("data")
	if !ok {
		return "", nil
	}
	dataObj, ok := data.(Object)
	if !ok {
		return "", nil
	}
	raw, ok := dataObj.Get(envVariableDataKey)
	if !ok {
		return "", nil
	}

	resolved, err := resolveValue(raw, ctx, depth+1)
	if err != nil {
		return "", err
	}
	return valueText(resolved)
}

// valueText renders a resolved value as plain text for use inside a
// concatenated sequence or as an object key.
func valueText(v Value) (string, error) {
	switch val := v.(type) {
	case String:
		return string(val), nil
	case Number:
		return string(val), nil
	case Bool:
		return strconv.FormatBool(bool(val)), nil
	case Null:
		return "null", nil
	default:
		encoded, err := json.Marshal(toInterface(v))
		if err != nil {
			return "", fmt.Errorf("failed to encode value: %w", err)
		}
		return string(encoded), nil
	}
}
