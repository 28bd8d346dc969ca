// Package markdown generates API documentation from captured request
// collections. Each request renders through a tag substitution engine:
// descriptions carrying markers control their own layout, everything
// else receives a fixed default layout.
package markdown

// CodeBlock wraps content in a fenced code block tagged with lang.
// Content is inserted verbatim; callers substitute sentinels for empty
// content before calling.
func CodeBlock(lang, content string) string {
	return "```" + lang + "\n" + content + "\n```"
}

// CollapsedBlock additionally wraps the fenced block in a disclosure
// widget labeled title. The blank line after the summary is required
// before a fenced block inside raw HTML.
func CollapsedBlock(lang, content, title string) string {
	return "<details>\n<summary>" + title + "</summary>\n\n" + CodeBlock(lang, content) + "\n</details>"
}
