package graphql

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// blockCommentPattern matches /* ... */ comments non-greedily. It does
// not track nesting, so a comment wrapping another comment leaves a
// dangling "*/" behind and the subsequent parse fails. That failure
// mode is documented behavior and covered by tests.
var blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)

// maxParseDepth bounds recursion while building the value tree.
const maxParseDepth = 200

// ParseLenient strips block comments from text and parses the result as
// JSON. On any failure it returns the input unchanged as a String;
// callers distinguish the two outcomes by type.
func ParseLenient(text string) Value {
	v, err := parseStripped(text)
	if err != nil {
		return String(text)
	}
	return v
}

// parseStripped runs the comment strip and the strict JSON parse,
// keeping the error for callers that need to know whether parsing
// succeeded.
func parseStripped(text string) (Value, error) {
	stripped := blockCommentPattern.ReplaceAllString(text, "")

	dec := json.NewDecoder(strings.NewReader(stripped))
	dec.UseNumber()

	v, err := parseValue(dec, 0)
	if err != nil {
		return nil, err
	}
	// A payload must be a single document with nothing after it.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

// parseValue reads the next complete value from the decoder.
func parseValue(dec *json.Decoder, depth int) (Value, error) {
	if depth > maxParseDepth {
		return nil, fmt.Errorf("value nested deeper than %d levels", maxParseDepth)
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec, depth)
		case '[':
			return parseArray(dec, depth)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// parseObject reads object fields in source order until the closing
// brace.
func parseObject(dec *json.Decoder, depth int) (Value, error) {
	obj := Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", keyTok)
		}

		val, err := parseValue(dec, depth+1)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Field{Key: key, Value: val})
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseArray reads array elements in order until the closing bracket.
func parseArray(dec *json.Decoder, depth int) (Value, error) {
	arr := Array{}
	for dec.More() {
		val, err := parseValue(dec, depth+1)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
