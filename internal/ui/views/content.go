package views

import (
	"strings"
	"unicode"
)

// LineKind classifies a line of document content
type LineKind int

const (
	LineParagraph LineKind = iota
	LineHeading
	LineBullet
)

// ClassifyLine decides how a non-blank content line is shown. Headings
// are upper case or end with a colon; bullets start with '-' or '•'.
func ClassifyLine(line string) LineKind {
	line = strings.TrimSpace(line)
	if strings.HasSuffix(line, ":") || isUpper(line) {
		return LineHeading
	}
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") {
		return LineBullet
	}
	return LineParagraph
}

// isUpper reports whether s has letters and none of them is lower case
func isUpper(s string) bool {
	letters := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters = true
		}
	}
	return letters
}

// FormatContent renders document text for the viewport: blank lines are
// dropped, and headings, bullets and paragraphs are styled and wrapped.
func (r *Renderer) FormatContent(content string, width int) string {
	var b strings.Builder
	prev := LineKind(-1)
	for _, line := range strings.Split(content, "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		kind := ClassifyLine(text)
		if prev >= 0 && !(prev == LineBullet && kind == LineBullet) {
			b.WriteString("\n\n")
		} else if prev >= 0 {
			b.WriteString("\n")
		}

		switch kind {
		case LineHeading:
			b.WriteString(r.styles.Heading.Width(width).Render(text))
		case LineBullet:
			item := strings.TrimLeft(strings.TrimPrefix(strings.TrimPrefix(text, "-"), "•"), " \t")
			b.WriteString(r.styles.Bullet.Width(width).Render("• " + item))
		default:
			b.WriteString(r.styles.Paragraph.Width(width).Render(text))
		}
		prev = kind
	}
	return b.String()
}
