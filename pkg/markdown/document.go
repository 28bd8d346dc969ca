package markdown

import (
	"strings"

	"github.com/blackcoderx/reqmd/pkg/graphql"
	"github.com/blackcoderx/reqmd/pkg/storage"
)

// RenderCollection assembles the Markdown document for a whole
// collection. A collection holding exactly one ungrouped request
// renders as that request's document alone, without a document title.
func RenderCollection(c *storage.Collection, ctx graphql.Context) string {
	if len(c.Groups) == 0 && len(c.Requests) == 1 {
		return RenderRequest(&c.Requests[0], ctx)
	}

	var b strings.Builder
	b.WriteString("# " + c.Title + "\n\n")

	for i := range c.Requests {
		b.WriteString(renderRequestDepth(&c.Requests[i], ctx, 2) + "\n\n")
	}
	for i := range c.Groups {
		writeGroup(&b, &c.Groups[i], ctx, 2)
	}
	return normalize(b.String())
}

// writeGroup renders a group heading followed by the group's requests
// and subgroups, one heading level deeper per nesting level.
func writeGroup(b *strings.Builder, g *storage.Group, ctx graphql.Context, depth int) {
	b.WriteString(heading(depth) + " " + g.Name + "\n\n")
	for i := range g.Requests {
		b.WriteString(renderRequestDepth(&g.Requests[i], ctx, depth+1) + "\n\n")
	}
	for i := range g.Groups {
		writeGroup(b, &g.Groups[i], ctx, depth+1)
	}
}
