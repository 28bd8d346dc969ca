package markdown

import (
	"regexp"
	"strings"
	"time"

	"github.com/blackcoderx/reqmd/pkg/graphql"
	"github.com/blackcoderx/reqmd/pkg/storage"
)

// markerPattern matches one marker occurrence. Markers are
// case-sensitive; scope and section are validated separately because
// response URL parameters name no real section.
var markerPattern = regexp.MustCompile(`<!--\s*(request|response):(headers|urlparameters|urlparams|body)(:collapsed)?\s*-->`)

// RenderRequest renders one request into Markdown. A description
// containing markers controls its own layout; anything else gets the
// default layout.
func RenderRequest(r *storage.Request, ctx graphql.Context) string {
	return renderRequestDepth(r, ctx, 1)
}

// renderRequestDepth renders a request with its headings starting at
// the given depth. Marker-driven descriptions ignore the depth, since
// their authors write their own headings.
func renderRequestDepth(r *storage.Request, ctx graphql.Context, depth int) string {
	if hasMarker(r.Description) {
		return normalize(substituteMarkers(r, ctx))
	}
	return normalize(defaultLayout(r, ctx, depth))
}

// hasMarker reports whether the description contains at least one
// recognizable marker.
func hasMarker(desc string) bool {
	for _, m := range markerPattern.FindAllStringSubmatch(desc, -1) {
		if validMarker(m[1], m[2]) {
			return true
		}
	}
	return false
}

// validMarker filters out marker-shaped text that names no real
// section.
func validMarker(scope, section string) bool {
	if scope == "response" {
		return section == "headers" || section == "body"
	}
	return true
}

// substituteMarkers replaces every marker occurrence with its rendered
// section in one pass over the description. Response markers with no
// captured exchange render to nothing, deleting the marker.
func substituteMarkers(r *storage.Request, ctx graphql.Context) string {
	return markerPattern.ReplaceAllStringFunc(r.Description, func(marker string) string {
		m := markerPattern.FindStringSubmatch(marker)
		scope, section := m[1], m[2]
		collapsed := m[3] != ""

		if !validMarker(scope, section) {
			return marker
		}
		if scope == "request" {
			switch section {
			case "headers":
				return requestHeadersBlock(r, collapsed)
			case "body":
				return requestBodyBlock(r, ctx, collapsed)
			default:
				return requestParamsBlock(r, collapsed)
			}
		}
		if r.LastExchange == nil {
			return ""
		}
		if section == "headers" {
			return responseHeadersBlock(r.LastExchange, collapsed)
		}
		return responseBodyBlock(r.LastExchange, collapsed)
	})
}

// defaultLayout builds the fixed document used when a description
// carries no markers: heading, description, request section, response
// section when an exchange exists, separator and footer.
func defaultLayout(r *storage.Request, ctx graphql.Context, depth int) string {
	var b strings.Builder

	b.WriteString(heading(depth) + " " + r.Name + "\n\n")
	if desc := strings.TrimSpace(r.Description); desc != "" {
		b.WriteString(desc + "\n\n")
	}

	b.WriteString(heading(depth+1) + " Request\n\n")
	b.WriteString(requestHeadersBlock(r, true) + "\n\n")
	b.WriteString(requestParamsBlock(r, true) + "\n\n")
	b.WriteString(requestBodyBlock(r, ctx, true) + "\n\n")

	if r.LastExchange != nil {
		b.WriteString(heading(depth+1) + " Response\n\n")
		b.WriteString(responseHeadersBlock(r.LastExchange, true) + "\n\n")
		b.WriteString(responseBodyBlock(r.LastExchange, true) + "\n\n")
	}

	b.WriteString("---\n\n")
	b.WriteString(footerLine())
	return b.String()
}

// heading returns a Markdown heading prefix clamped to h6.
func heading(depth int) string {
	if depth < 1 {
		depth = 1
	}
	if depth > 6 {
		depth = 6
	}
	return strings.Repeat("#", depth)
}

// footerLine stamps the generated document.
func footerLine() string {
	return "*Generated by reqmd on " + time.Now().Format("January 2, 2006") + "*"
}
