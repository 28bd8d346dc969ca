package markdown

import (
	"strings"
	"testing"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

// stubEnv implements graphql.Context for testing.
type stubEnv map[string]string

func (s stubEnv) EnvironmentVariable(id string) (string, bool) {
	v, ok := s[id]
	return v, ok
}

// sampleRequest builds a fully populated request with a captured
// exchange.
func sampleRequest() *storage.Request {
	return &storage.Request{
		Name:   "List Users",
		Method: "GET",
		URL:    "https://api.example.com/users",
		Headers: []storage.Header{
			{Name: "Authorization", Value: "Bearer abc123"},
			{Name: "Accept", Value: "application/json"},
		},
		Params: []storage.Param{
			{Name: "page", Value: "2"},
			{Name: "limit", Value: "50"},
		},
		Body: &storage.Body{JSON: `{"active": true}`},
		LastExchange: &storage.Exchange{
			URL:    "https://api.example.com/users?page=2&limit=50",
			Status: 200,
			Headers: []storage.Header{
				{Name: "Content-Type", Value: "application/json"},
			},
			Body: `{"users":[]}`,
		},
	}
}

func TestRenderRequest_DefaultLayout(t *testing.T) {
	got := RenderRequest(sampleRequest(), stubEnv{})

	if !strings.HasPrefix(got, "# List Users\n") {
		t.Errorf("document does not start with the request heading:\n%s", got)
	}

	wantParts := []string{
		"## Request",
		"<summary>Request Headers</summary>",
		"<summary>Request URL Parameters</summary>",
		"<summary>Request Body</summary>",
		"## Response",
		"<summary>Response Headers</summary>",
		"<summary>Response Body</summary>",
		"---",
		"*Generated by reqmd on ",
	}
	last := -1
	for _, part := range wantParts {
		idx := strings.Index(got, part)
		if idx < 0 {
			t.Fatalf("default layout missing %q:\n%s", part, got)
		}
		if idx < last {
			t.Errorf("%q appears out of order", part)
		}
		last = idx
	}

	if normalize(got) != got {
		t.Error("rendered document is not stable under normalization")
	}
}

func TestRenderRequest_DefaultLayoutWithoutExchange(t *testing.T) {
	r := sampleRequest()
	r.LastExchange = nil

	got := RenderRequest(r, stubEnv{})
	if strings.Contains(got, "## Response") {
		t.Errorf("document has a response section without an exchange:\n%s", got)
	}
	if !strings.Contains(got, "## Request") {
		t.Errorf("document lost its request section:\n%s", got)
	}
}

func TestRenderRequest_DefaultLayoutEmptySections(t *testing.T) {
	r := &storage.Request{Name: "Ping", Method: "GET", URL: "https://api.example.com/ping"}

	got := RenderRequest(r, stubEnv{})
	for _, sentinel := range []string{"null", "Empty URL Parameters", "Empty Body"} {
		if !strings.Contains(got, "```\n"+sentinel+"\n```") {
			t.Errorf("empty section sentinel %q missing:\n%s", sentinel, got)
		}
	}
}

func TestRenderRequest_PlainMarkers(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   string
	}{
		{
			name:   "request headers",
			marker: "<!-- request:headers -->",
			want:   "```\nAuthorization: Bearer abc123\nAccept: application/json\n```",
		},
		{
			name:   "request urlparams",
			marker: "<!-- request:urlparams -->",
			want:   "```\npage: 2\nlimit: 50\n```",
		},
		{
			name:   "request urlparameters alias",
			marker: "<!-- request:urlparameters -->",
			want:   "```\npage: 2\nlimit: 50\n```",
		},
		{
			name:   "request body",
			marker: "<!-- request:body -->",
			want:   "```json\n{\"active\": true}\n```",
		},
		{
			name:   "response headers",
			marker: "<!-- response:headers -->",
			want:   "```\nContent-Type: application/json\n```",
		},
		{
			name:   "response body",
			marker: "<!-- response:body -->",
			want:   "```json\n{\n  \"users\": []\n}\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleRequest()
			r.Description = "Before.\n\n" + tt.marker + "\n\nAfter."

			got := RenderRequest(r, stubEnv{})
			if !strings.Contains(got, tt.want) {
				t.Errorf("substituted content missing.\ngot:\n%s\nwant substring:\n%s", got, tt.want)
			}
			if strings.Contains(got, "<!--") {
				t.Errorf("residual marker text left in output:\n%s", got)
			}
			if strings.Contains(got, "<details>") {
				t.Errorf("plain marker produced a collapsed block:\n%s", got)
			}
		})
	}
}

func TestRenderRequest_CollapsedMarkers(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		title  string
	}{
		{"request headers", "<!-- request:headers:collapsed -->", "Request Headers"},
		{"request urlparams", "<!-- request:urlparams:collapsed -->", "Request URL Parameters"},
		{"request urlparameters alias", "<!-- request:urlparameters:collapsed -->", "Request URL Parameters"},
		{"request body", "<!-- request:body:collapsed -->", "Request Body"},
		{"response headers", "<!-- response:headers:collapsed -->", "Response Headers"},
		{"response body", "<!-- response:body:collapsed -->", "Response Body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleRequest()
			r.Description = tt.marker

			got := RenderRequest(r, stubEnv{})
			if !strings.Contains(got, "<details>\n<summary>"+tt.title+"</summary>\n\n```") {
				t.Errorf("collapsed block for %q missing.\ngot:\n%s", tt.title, got)
			}
			if strings.Contains(got, "<!--") {
				t.Errorf("residual marker text left in output:\n%s", got)
			}
		})
	}
}

func TestRenderRequest_RepeatedMarkerReplacesEveryOccurrence(t *testing.T) {
	r := sampleRequest()
	r.Description = "<!-- request:body -->\n\nAgain:\n\n<!-- request:body -->"

	got := RenderRequest(r, stubEnv{})
	if n := strings.Count(got, "```json\n{\"active\": true}\n```"); n != 2 {
		t.Errorf("body block substituted %d times, want 2:\n%s", n, got)
	}
	if strings.Contains(got, "<!--") {
		t.Errorf("residual marker text left in output:\n%s", got)
	}
}

func TestSubstituteMarkers_SecondPassIsNoOp(t *testing.T) {
	r := sampleRequest()
	r.Description = "<!-- request:body -->\n\n<!-- request:headers:collapsed -->"

	once := substituteMarkers(r, stubEnv{})

	again := sampleRequest()
	again.Description = once
	if twice := substituteMarkers(again, stubEnv{}); twice != once {
		t.Errorf("second substitution pass changed the output.\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
}

func TestRenderRequest_ResponseMarkerWithoutExchange(t *testing.T) {
	r := sampleRequest()
	r.LastExchange = nil
	r.Description = "Start.\n\n<!-- response:body -->\n\nEnd."

	got := RenderRequest(r, stubEnv{})
	want := "Start.\n\nEnd."
	if got != want {
		t.Errorf("RenderRequest = %q, want %q", got, want)
	}
}

func TestRenderRequest_UnknownMarkerDoesNotTriggerCustomLayout(t *testing.T) {
	r := sampleRequest()
	r.Description = "<!-- response:urlparams -->"

	got := RenderRequest(r, stubEnv{})
	if !strings.HasPrefix(got, "# List Users") {
		t.Errorf("marker-shaped text without a real section should keep the default layout:\n%s", got)
	}
	if !strings.Contains(got, "<!-- response:urlparams -->") {
		t.Errorf("description text was altered:\n%s", got)
	}
}

func TestRenderRequest_UnknownMarkerSurvivesSubstitution(t *testing.T) {
	r := sampleRequest()
	r.Description = "<!-- response:urlparams -->\n\n<!-- request:headers -->"

	got := RenderRequest(r, stubEnv{})
	if !strings.Contains(got, "<!-- response:urlparams -->") {
		t.Errorf("unknown marker text should stay verbatim:\n%s", got)
	}
	if !strings.Contains(got, "Authorization: Bearer abc123") {
		t.Errorf("valid marker in the same description was not substituted:\n%s", got)
	}
}

func TestRenderRequest_GraphQLBody(t *testing.T) {
	r := sampleRequest()
	r.Body = &storage.Body{GraphQL: &storage.GraphQLBody{
		Query:     "query($id: ID!) { user(id: $id) { name } }",
		Variables: `{"id": {"identifier":"com.luckymarmot.EnvironmentVariableDynamicValue","data":{"environmentVariable":"USER_ID"}}}`,
	}}
	r.Description = "<!-- request:body -->"

	got := RenderRequest(r, stubEnv{"USER_ID": "42"})
	if !strings.Contains(got, "```graphql\nquery($id: ID!) { user(id: $id) { name } }\n```") {
		t.Errorf("query fence missing:\n%s", got)
	}
	if !strings.Contains(got, "```json\n{\n  \"id\": \"42\"\n}\n```") {
		t.Errorf("resolved variables fence missing:\n%s", got)
	}
}

func TestRenderRequest_GraphQLBodyCollapsed(t *testing.T) {
	r := sampleRequest()
	r.Body = &storage.Body{GraphQL: &storage.GraphQLBody{
		Query:     "{ viewer { login } }",
		Variables: `{"a": 1}`,
	}}
	r.Description = "<!-- request:body:collapsed -->"

	got := RenderRequest(r, stubEnv{})
	if !strings.Contains(got, "<summary>Request Body</summary>") {
		t.Errorf("collapsed query block missing:\n%s", got)
	}
	if !strings.Contains(got, "<summary>GraphQL Variables</summary>") {
		t.Errorf("collapsed variables block missing:\n%s", got)
	}
}

func TestRenderRequest_GraphQLBodyWithoutVariables(t *testing.T) {
	r := sampleRequest()
	r.Body = &storage.Body{GraphQL: &storage.GraphQLBody{
		Query:     "{ viewer { login } }",
		Variables: "{}",
	}}
	r.Description = "<!-- request:body -->"

	got := RenderRequest(r, stubEnv{})
	if !strings.Contains(got, "```graphql\n{ viewer { login } }\n```") {
		t.Errorf("query fence missing:\n%s", got)
	}
	if strings.Count(got, "```") != 2 {
		t.Errorf("empty variables should produce no second fence:\n%s", got)
	}
}

func TestResponseBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantLang    string
		wantContent string
	}{
		{
			name:        "json pretty printed",
			body:        `{"ok":true}`,
			wantLang:    "json",
			wantContent: "{\n  \"ok\": true\n}",
		},
		{
			name:        "non-json kept raw",
			body:        "plain text response",
			wantLang:    "",
			wantContent: "plain text response",
		},
		{
			name:        "empty body sentinel",
			body:        "",
			wantLang:    "",
			wantContent: "Empty Body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, content := responseBody(tt.body)
			if lang != tt.wantLang || content != tt.wantContent {
				t.Errorf("responseBody = (%q, %q), want (%q, %q)", lang, content, tt.wantLang, tt.wantContent)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "three newlines collapse to two",
			input: "a\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "long runs collapse to two",
			input: "a\n\n\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "windows line endings",
			input: "a\r\n\r\n\r\nb",
			want:  "a\n\nb",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "\n\na\n\n",
			want:  "a",
		},
		{
			name:  "single blank line untouched",
			input: "a\n\nb",
			want:  "a\n\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.input)
			if got != tt.want {
				t.Errorf("normalize = %q, want %q", got, tt.want)
			}
			if normalize(got) != got {
				t.Errorf("normalize is not idempotent for %q", tt.input)
			}
		})
	}
}
