package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

// describeSystemPrompt steers the model toward short, factual summaries
// that can sit under a request heading in generated documentation.
const describeSystemPrompt = `## IDENTITY
You write one-paragraph descriptions for captured API requests. The text
sits directly under the request heading in generated Markdown docs.

## RULES
1. Describe what the request does, not how HTTP works.
2. Two sentences maximum. No headings, no lists, no code fences.
3. Name the resource and the effect (reads, creates, updates, deletes).
4. Never invent fields that are not in the request summary.
5. Reply with the description text only.`

// Describe asks the configured provider to draft a description for req.
func Describe(ctx context.Context, client Client, req *storage.Request) (string, error) {
	messages := []Message{
		{Role: "system", Content: describeSystemPrompt},
		{Role: "user", Content: buildRequestSummary(req)},
	}

	response, err := client.Chat(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to draft description: %w", err)
	}

	description := CleanDescription(response)
	if description == "" {
		return "", fmt.Errorf("model returned an empty description")
	}
	return description, nil
}

// buildRequestSummary renders the request as structured context for the
// model.
func buildRequestSummary(req *storage.Request) string {
	var sb strings.Builder

	sb.WriteString("Name: " + req.Name + "\n")
	sb.WriteString("Method: " + strings.ToUpper(req.Method) + "\n")
	sb.WriteString("URL: " + req.URL + "\n")

	if len(req.Params) > 0 {
		sb.WriteString("URL Parameters:\n")
		for _, p := range req.Params {
			sb.WriteString("  " + p.Name + ": " + p.Value + "\n")
		}
	}

	if len(req.Headers) > 0 {
		sb.WriteString("Headers:\n")
		for _, h := range req.Headers {
			sb.WriteString("  " + h.Name + ": " + h.Value + "\n")
		}
	}

	switch req.Body.Kind() {
	case storage.BodyJSON:
		sb.WriteString("JSON Body:\n" + indentLines(req.Body.JSON) + "\n")
	case storage.BodyForm:
		sb.WriteString("Form Body:\n" + indentLines(req.Body.Form) + "\n")
	case storage.BodyText:
		sb.WriteString("Text Body:\n" + indentLines(req.Body.Text) + "\n")
	case storage.BodyGraphQL:
		sb.WriteString("GraphQL Query:\n" + indentLines(req.Body.GraphQL.Query) + "\n")
	}

	if req.LastExchange != nil {
		sb.WriteString(fmt.Sprintf("Last Response Status: %d\n", req.LastExchange.Status))
	}

	return sb.String()
}

// indentLines prefixes every line with two spaces.
func indentLines(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}

// CleanDescription strips the wrapping a chat model tends to add:
// code fences, surrounding quotes, a leading "Description:" label.
func CleanDescription(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimPrefix(cleaned, "```")
		// Drop a language tag left on the first fence line.
		if idx := strings.Index(cleaned, "\n"); idx >= 0 && idx <= 12 && !strings.Contains(cleaned[:idx], " ") {
			cleaned = cleaned[idx+1:]
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	cleaned = strings.TrimPrefix(cleaned, "Description:")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.Trim(cleaned, `"`)
	return strings.TrimSpace(cleaned)
}
