// Package replay executes captured requests again to refresh their
// recorded exchanges before rendering documentation.
package replay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/blackcoderx/reqmd/pkg/graphql"
	"github.com/blackcoderx/reqmd/pkg/storage"
)

// Executor replays captured requests against their live endpoints.
type Executor struct {
	client *http.Client
	chain  *storage.EnvChain
}

// NewExecutor creates an executor that resolves {{VAR}} placeholders
// through chain before sending.
func NewExecutor(chain *storage.EnvChain) *Executor {
	return &Executor{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		chain: chain,
	}
}

// Execute replays req and returns the captured exchange.
func (e *Executor) Execute(ctx context.Context, req *storage.Request) (*storage.Exchange, error) {
	applied := e.chain.ApplyEnvironment(req)

	fullURL, err := buildURL(applied)
	if err != nil {
		return nil, err
	}

	bodyReader, contentType := e.requestBody(applied.Body)

	httpReq, err := http.NewRequestWithContext(ctx, strings.ToUpper(applied.Method), fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers, letting explicit headers override the derived
	// content type.
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for _, h := range applied.Headers {
		httpReq.Header.Set(h.Name, h.Value)
	}
	if err := applyAuth(ctx, httpReq, applied.Auth); err != nil {
		return nil, err
	}

	httpResp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer httpResp.Body.Close()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &storage.Exchange{
		URL:        fullURL,
		Status:     httpResp.StatusCode,
		Headers:    responseHeaders(httpResp.Header),
		Body:       string(bodyBytes),
		CapturedAt: time.Now().UTC(),
	}, nil
}

// buildURL merges the request's parameters into its URL query string.
func buildURL(req *storage.Request) (string, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return "", fmt.Errorf("failed to parse URL %q: %w", req.URL, err)
	}
	if len(req.Params) > 0 {
		q := u.Query()
		for _, p := range req.Params {
			q.Add(p.Name, p.Value)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// requestBody builds the outgoing body reader and its content type.
func (e *Executor) requestBody(body *storage.Body) (io.Reader, string) {
	switch body.Kind() {
	case storage.BodyJSON:
		return strings.NewReader(body.JSON), "application/json"
	case storage.BodyForm:
		return strings.NewReader(body.Form), "application/x-www-form-urlencoded"
	case storage.BodyText:
		return strings.NewReader(body.Text), "text/plain"
	case storage.BodyGraphQL:
		return e.graphqlEnvelope(body.GraphQL), "application/json"
	default:
		return nil, ""
	}
}

// graphqlEnvelope serializes the query and its resolved variables into
// the standard GraphQL-over-HTTP request body. Variables go through the
// same resolution as rendered documentation, so dynamic references hit
// the wire with their current values.
func (e *Executor) graphqlEnvelope(gql *storage.GraphQLBody) io.Reader {
	envelope := map[string]interface{}{"query": gql.Query}
	if rendered := graphql.RenderVariables(gql.Variables, e.chain); rendered != "" {
		var vars interface{}
		if err := json.Unmarshal([]byte(rendered), &vars); err == nil {
			envelope["variables"] = vars
		}
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return strings.NewReader("")
	}
	return bytes.NewReader(data)
}

// responseHeaders flattens the response header map into a sorted list,
// so repeated captures produce stable YAML.
func responseHeaders(h http.Header) []storage.Header {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := make([]storage.Header, 0, len(names))
	for _, name := range names {
		headers = append(headers, storage.Header{Name: name, Value: strings.Join(h[name], ", ")})
	}
	return headers
}
