package markdown

import (
	"strings"
	"testing"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

func TestRenderCollection_SingleRequestRendersDirectly(t *testing.T) {
	c := &storage.Collection{
		Title:    "My API",
		Requests: []storage.Request{*sampleRequest()},
	}

	got := RenderCollection(c, stubEnv{})
	want := RenderRequest(&c.Requests[0], stubEnv{})
	if got != want {
		t.Errorf("single-request collection should render as the request alone.\ngot:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, "# My API") {
		t.Errorf("single-request collection should not emit a document title:\n%s", got)
	}
}

func TestRenderCollection_MultipleRequests(t *testing.T) {
	second := *sampleRequest()
	second.Name = "Create User"
	second.Method = "POST"

	c := &storage.Collection{
		Title:    "My API",
		Requests: []storage.Request{*sampleRequest(), second},
	}

	got := RenderCollection(c, stubEnv{})
	if !strings.HasPrefix(got, "# My API\n") {
		t.Errorf("document does not start with the collection title:\n%s", got)
	}

	first := strings.Index(got, "## List Users")
	if first < 0 {
		t.Fatalf("first request heading missing:\n%s", got)
	}
	if idx := strings.Index(got, "## Create User"); idx < first {
		t.Errorf("request order not preserved:\n%s", got)
	}
}

func TestRenderCollection_GroupsDeepenHeadings(t *testing.T) {
	inner := *sampleRequest()
	inner.Name = "Delete User"

	c := &storage.Collection{
		Title:    "My API",
		Requests: []storage.Request{*sampleRequest()},
		Groups: []storage.Group{
			{
				Name: "Admin",
				Groups: []storage.Group{
					{Name: "Danger Zone", Requests: []storage.Request{inner}},
				},
			},
		},
	}

	got := RenderCollection(c, stubEnv{})
	order := []string{"# My API", "## List Users", "## Admin", "### Danger Zone", "#### Delete User"}
	last := -1
	for _, h := range order {
		idx := strings.Index(got, h+"\n")
		if idx < 0 {
			t.Fatalf("heading %q missing:\n%s", h, got)
		}
		if idx < last {
			t.Errorf("heading %q appears out of order", h)
		}
		last = idx
	}
}

func TestHeadingClamp(t *testing.T) {
	tests := []struct {
		depth int
		want  string
	}{
		{0, "#"},
		{1, "#"},
		{3, "###"},
		{6, "######"},
		{9, "######"},
	}

	for _, tt := range tests {
		if got := heading(tt.depth); got != tt.want {
			t.Errorf("heading(%d) = %q, want %q", tt.depth, got, tt.want)
		}
	}
}
