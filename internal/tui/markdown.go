package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const markdownWidth = 72

// renderMarkdown renders a project description as terminal markdown.
// Falls back to the raw text when rendering fails.
func renderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width <= 0 || width > markdownWidth {
		width = markdownWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
