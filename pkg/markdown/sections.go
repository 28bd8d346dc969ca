package markdown

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/blackcoderx/reqmd/pkg/graphql"
	"github.com/blackcoderx/reqmd/pkg/storage"
)

// Sentinels shown in place of empty section content.
const (
	emptyHeaders = "null"
	emptyParams  = "Empty URL Parameters"
	emptyBody    = "Empty Body"
)

// Titles used by collapsed section blocks.
const (
	titleRequestHeaders  = "Request Headers"
	titleRequestParams   = "Request URL Parameters"
	titleRequestBody     = "Request Body"
	titleGraphQLVars     = "GraphQL Variables"
	titleResponseHeaders = "Response Headers"
	titleResponseBody    = "Response Body"
)

// headerLines renders headers one per line as "Name: Value".
func headerLines(headers []storage.Header) string {
	if len(headers) == 0 {
		return emptyHeaders
	}
	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(h.Name + ": " + h.Value)
	}
	return b.String()
}

// paramLines renders URL parameters one per line as "Name: Value".
func paramLines(params []storage.Param) string {
	if len(params) == 0 {
		return emptyParams
	}
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.Name + ": " + p.Value)
	}
	return b.String()
}

// sectionBlock picks the plain or collapsed rendering for one section.
func sectionBlock(lang, content, title string, collapsed bool) string {
	if collapsed {
		return CollapsedBlock(lang, content, title)
	}
	return CodeBlock(lang, content)
}

// requestHeadersBlock renders the request headers section.
func requestHeadersBlock(r *storage.Request, collapsed bool) string {
	return sectionBlock("", headerLines(r.Headers), titleRequestHeaders, collapsed)
}

// requestParamsBlock renders the request URL parameters section.
func requestParamsBlock(r *storage.Request, collapsed bool) string {
	return sectionBlock("", paramLines(r.Params), titleRequestParams, collapsed)
}

// requestBodyBlock renders the request body section. GraphQL bodies
// render as a query fence plus, when the variables payload resolves to
// anything, a second fence holding the resolved variables.
func requestBodyBlock(r *storage.Request, ctx graphql.Context, collapsed bool) string {
	switch r.Body.Kind() {
	case storage.BodyGraphQL:
		return graphqlBodyBlocks(r.Body.GraphQL, ctx, collapsed)
	case storage.BodyJSON:
		return sectionBlock("json", r.Body.JSON, titleRequestBody, collapsed)
	case storage.BodyForm:
		return sectionBlock("", r.Body.Form, titleRequestBody, collapsed)
	case storage.BodyText:
		return sectionBlock("", r.Body.Text, titleRequestBody, collapsed)
	default:
		return sectionBlock("", emptyBody, titleRequestBody, collapsed)
	}
}

// graphqlBodyBlocks renders the query and its resolved variables.
func graphqlBodyBlocks(gql *storage.GraphQLBody, ctx graphql.Context, collapsed bool) string {
	query := strings.TrimSpace(gql.Query)
	if query == "" {
		query = emptyBody
	}

	out := sectionBlock("graphql", query, titleRequestBody, collapsed)
	if vars := graphql.RenderVariables(gql.Variables, ctx); vars != "" {
		out += "\n\n" + sectionBlock("json", vars, titleGraphQLVars, collapsed)
	}
	return out
}

// responseHeadersBlock renders the response headers of an exchange.
func responseHeadersBlock(ex *storage.Exchange, collapsed bool) string {
	return sectionBlock("", headerLines(ex.Headers), titleResponseHeaders, collapsed)
}

// responseBodyBlock renders the response body of an exchange. JSON
// bodies are pretty-printed; anything else appears as captured.
func responseBodyBlock(ex *storage.Exchange, collapsed bool) string {
	lang, content := responseBody(ex.Body)
	return sectionBlock(lang, content, titleResponseBody, collapsed)
}

// responseBody pretty-prints JSON bodies and falls back to the raw
// text for everything else.
func responseBody(body string) (lang, content string) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "", emptyBody
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(trimmed), "", "  "); err != nil {
		return "", trimmed
	}
	return "json", pretty.String()
}
