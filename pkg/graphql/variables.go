package graphql

import (
	"bytes"
	"encoding/json"
	"strings"
)

// resolveFallback stands in for the whole payload when resolution fails
// unexpectedly, so the surrounding document still renders.
const resolveFallback = "[Unable to resolve variables.]"

// RenderVariables turns a captured GraphQL variables payload into the
// text shown under a request body: pretty-printed JSON for structured
// payloads, the raw payload when it cannot be parsed, and the empty
// string when there is nothing to show.
func RenderVariables(payload string, ctx Context) (out string) {
	// A broken payload must never abort the document render.
	defer func() {
		if r := recover(); r != nil {
			out = resolveFallback
		}
	}()

	if strings.TrimSpace(payload) == "" {
		return ""
	}

	parsed, err := parseStripped(payload)
	if err != nil {
		// Not JSON at all. Show the payload as captured.
		return payload
	}

	resolved, err := Resolve(parsed, ctx)
	if err != nil {
		return resolveFallback
	}
	return renderResolved(resolved)
}

// renderResolved serializes a fully resolved tree for display. An empty
// top-level mapping renders as the empty string, which callers read as
// "omit this section".
func renderResolved(v Value) string {
	switch val := v.(type) {
	case Object:
		if len(val) == 0 {
			return ""
		}
		return prettyJSON(val)
	case String:
		return string(val)
	default:
		return prettyJSON(v)
	}
}

// prettyJSON encodes v with two-space indentation and sorted keys.
// HTML escaping is off so payload text appears verbatim.
func prettyJSON(v Value) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toInterface(v)); err != nil {
		return resolveFallback
	}
	return strings.TrimRight(buf.String(), "\n")
}
