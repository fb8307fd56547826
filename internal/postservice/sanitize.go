package postservice

import "regexp"

var (
	// script, iframe, object and embed elements, with their bodies
	embeddedElementPattern = regexp.MustCompile(`(?is)<\s*(script|iframe|object|embed)\b[^>]*>.*?<\s*/\s*(script|iframe|object|embed)\s*>`)
	// unterminated or self-closed openers of the same elements
	embeddedOpenerPattern = regexp.MustCompile(`(?i)<\s*/?\s*(script|iframe|object|embed)\b[^>]*>`)
	// markdown link or image targets using the javascript: scheme
	javascriptTargetPattern = regexp.MustCompile(`(?i)\]\(\s*javascript:[^)]*\)`)
)

// sanitizeMarkdown strips embedded executable content from stored post markdown.
// Rendering additionally escapes raw HTML, so this only has to cover what a client
// would execute when it renders the markdown itself.
func sanitizeMarkdown(markdown string) string {
	markdown = embeddedElementPattern.ReplaceAllString(markdown, "")
	markdown = embeddedOpenerPattern.ReplaceAllString(markdown, "")
	return javascriptTargetPattern.ReplaceAllString(markdown, "]()")
}
