package storage

import "time"

// Header is one captured HTTP header, order preserved.
type Header struct {
	Name  string `yaml:"name"`  // Header name as sent on the wire
	Value string `yaml:"value"` // Header value
}

// Param is one captured URL query parameter, order preserved.
type Param struct {
	Name  string `yaml:"name"`  // Parameter name
	Value string `yaml:"value"` // Parameter value
}

// GraphQLBody holds a GraphQL query and the variables payload captured
// alongside it. Variables stay in their raw textual form until render
// time, when references and comments are resolved.
type GraphQLBody struct {
	Query     string `yaml:"query"`               // GraphQL query or mutation text
	Variables string `yaml:"variables,omitempty"` // Raw variables payload
}

// Body is a captured request body. At most one field is set; Kind
// reports which one.
type Body struct {
	JSON    string       `yaml:"json,omitempty"`    // JSON body text
	Form    string       `yaml:"form,omitempty"`    // URL-encoded form body
	Text    string       `yaml:"text,omitempty"`    // Plain text body
	GraphQL *GraphQLBody `yaml:"graphql,omitempty"` // GraphQL query plus variables
}

// BodyKind identifies which representation a Body carries.
type BodyKind int

const (
	BodyEmpty BodyKind = iota
	BodyJSON
	BodyForm
	BodyText
	BodyGraphQL
)

// Kind reports the representation carried by the body. GraphQL wins
// over the plain fields when more than one is set.
func (b *Body) Kind() BodyKind {
	switch {
	case b == nil:
		return BodyEmpty
	case b.GraphQL != nil:
		return BodyGraphQL
	case b.JSON != "":
		return BodyJSON
	case b.Form != "":
		return BodyForm
	case b.Text != "":
		return BodyText
	default:
		return BodyEmpty
	}
}

// Auth configures how a replayed request authenticates.
type Auth struct {
	Kind         string   `yaml:"kind"`                    // bearer, basic or oauth2
	Token        string   `yaml:"token,omitempty"`         // Bearer token (can contain variables)
	Username     string   `yaml:"username,omitempty"`      // Basic auth user
	Password     string   `yaml:"password,omitempty"`      // Basic auth password
	ClientID     string   `yaml:"client_id,omitempty"`     // OAuth2 client id
	ClientSecret string   `yaml:"client_secret,omitempty"` // OAuth2 client secret
	TokenURL     string   `yaml:"token_url,omitempty"`     // OAuth2 token endpoint
	Scopes       []string `yaml:"scopes,omitempty"`        // OAuth2 scopes
}

// Exchange is one captured execution of a request: the URL actually
// hit, the response status, headers and body.
type Exchange struct {
	URL        string    `yaml:"url"`                   // Final request URL
	Status     int       `yaml:"status"`                // HTTP status code
	Headers    []Header  `yaml:"headers,omitempty"`     // Response headers
	Body       string    `yaml:"body,omitempty"`        // Response body text
	CapturedAt time.Time `yaml:"captured_at,omitempty"` // When the exchange was captured
}

// Request is one captured API request together with its documentation
// description and, when available, its last captured exchange.
type Request struct {
	Name         string    `yaml:"name"`                    // Unique name within the collection
	Description  string    `yaml:"description,omitempty"`   // Markdown description, may contain markers
	Method       string    `yaml:"method"`                  // HTTP method (GET, POST, etc.)
	URL          string    `yaml:"url"`                     // Request URL (can contain variables)
	Headers      []Header  `yaml:"headers,omitempty"`       // Request headers
	Params       []Param   `yaml:"params,omitempty"`        // URL query parameters
	Body         *Body     `yaml:"body,omitempty"`          // Request body
	Auth         *Auth     `yaml:"auth,omitempty"`          // Replay authentication
	LastExchange *Exchange `yaml:"last_exchange,omitempty"` // Most recent captured exchange
}

// Group nests requests under a named section of the generated document.
// Groups can contain further groups.
type Group struct {
	Name     string    `yaml:"name"`               // Section heading text
	Requests []Request `yaml:"requests,omitempty"` // Requests in this group
	Groups   []Group   `yaml:"groups,omitempty"`   // Nested subgroups
}

// Collection is a set of captured requests documented together.
type Collection struct {
	Title    string    `yaml:"title"`              // Document title
	Requests []Request `yaml:"requests,omitempty"` // Ungrouped requests
	Groups   []Group   `yaml:"groups,omitempty"`   // Grouped requests
}

// Environment is a named set of variables used to resolve references
// during rendering and replay.
type Environment struct {
	Name      string            `yaml:"name,omitempty"` // Environment name (e.g., "dev", "prod")
	Variables map[string]string `yaml:",inline"`        // Key-value pairs for variables
}
