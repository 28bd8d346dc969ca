package graphql

import (
	"strings"
	"testing"
)

func TestParseLenient_StripsCommentedFields(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantKey string
		skipKey string
	}{
		{
			name:    "trailing field commented out",
			input:   `{"a": 1/*, "b": 2*/}`,
			wantKey: "a",
			skipKey: "b",
		},
		{
			name:    "leading field commented out",
			input:   `{/*"a": 1,*/ "b": 2}`,
			wantKey: "b",
			skipKey: "a",
		},
		{
			name:    "multiline comment",
			input:   "{\"a\": 1/*,\n  \"b\": 2\n*/}",
			wantKey: "a",
			skipKey: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseLenient(tt.input)
			obj, ok := v.(Object)
			if !ok {
				t.Fatalf("ParseLenient(%q) = %T, want Object", tt.input, v)
			}
			if _, ok := obj.Get(tt.wantKey); !ok {
				t.Errorf("field %q missing from parsed object", tt.wantKey)
			}
			if _, ok := obj.Get(tt.skipKey); ok {
				t.Errorf("commented-out field %q survived the strip", tt.skipKey)
			}
		})
	}
}

func TestParseLenient_NestedCommentFallsBackToRaw(t *testing.T) {
	// The strip pattern does not track nesting, so a comment wrapping
	// another comment breaks the parse and the raw input comes back.
	input := `{"a": 1/*, "b": {"c": 2/*, "d": 3*/}*/}`

	v := ParseLenient(input)
	s, ok := v.(String)
	if !ok {
		t.Fatalf("ParseLenient(%q) = %T, want String", input, v)
	}
	if string(s) != input {
		t.Errorf("fallback = %q, want the input unchanged", s)
	}
}

func TestParseLenient_RawFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "plain text", input: "hello world"},
		{name: "empty string", input: ""},
		{name: "truncated object", input: `{"a": `},
		{name: "trailing garbage", input: `{"a": 1} extra`},
		{name: "two documents", input: `{"a": 1}{"b": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseLenient(tt.input)
			s, ok := v.(String)
			if !ok {
				t.Fatalf("ParseLenient(%q) = %T, want String", tt.input, v)
			}
			if string(s) != tt.input {
				t.Errorf("fallback = %q, want %q", s, tt.input)
			}
		})
	}
}

func TestParseLenient_PreservesFieldOrderAndNumberText(t *testing.T) {
	v := ParseLenient(`{"zebra": 1.50, "alpha": [true, null, "x"]}`)
	obj, ok := v.(Object)
	if !ok {
		t.Fatalf("ParseLenient = %T, want Object", v)
	}
	if len(obj) != 2 {
		t.Fatalf("parsed %d fields, want 2", len(obj))
	}
	if obj[0].Key != "zebra" || obj[1].Key != "alpha" {
		t.Errorf("field order = [%q, %q], want [zebra, alpha]", obj[0].Key, obj[1].Key)
	}

	num, ok := obj[0].Value.(Number)
	if !ok {
		t.Fatalf("zebra = %T, want Number", obj[0].Value)
	}
	if string(num) != "1.50" {
		t.Errorf("number text = %q, want %q", num, "1.50")
	}

	arr, ok := obj[1].Value.(Array)
	if !ok {
		t.Fatalf("alpha = %T, want Array", obj[1].Value)
	}
	if len(arr) != 3 {
		t.Fatalf("alpha has %d elements, want 3", len(arr))
	}
	if _, ok := arr[0].(Bool); !ok {
		t.Errorf("alpha[0] = %T, want Bool", arr[0])
	}
	if _, ok := arr[1].(Null); !ok {
		t.Errorf("alpha[1] = %T, want Null", arr[1])
	}
}

func TestParseLenient_DepthBound(t *testing.T) {
	shallow := strings.Repeat("[", 50) + strings.Repeat("]", 50)
	if _, ok := ParseLenient(shallow).(Array); !ok {
		t.Errorf("50 levels of nesting should parse")
	}

	deep := strings.Repeat("[", maxParseDepth+10) + strings.Repeat("]", maxParseDepth+10)
	if _, ok := ParseLenient(deep).(String); !ok {
		t.Errorf("nesting beyond the depth bound should fall back to the raw string")
	}
}

func TestObjectGet_LastOccurrenceWins(t *testing.T) {
	obj := Object{
		{Key: "a", Value: String("first")},
		{Key: "a", Value: String("second")},
	}
	v, ok := obj.Get("a")
	if !ok {
		t.Fatal("Get(a) reported missing")
	}
	if s := v.(String); string(s) != "second" {
		t.Errorf("Get(a) = %q, want %q", s, "second")
	}
}
