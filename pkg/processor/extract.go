package processor

import (
	"strings"

	"github.com/xhad/medqa/internal/models"
)

// ExtractBetween returns the text after the first paragraph containing
// start, up to the first occurrence of end in any later paragraph. The
// boolean is false when start is missing or end never follows it. An empty
// string with true is a real, empty match.
//
// end == EndOfDocument matches the end of the paragraphs.
func ExtractBetween(paragraphs []models.Paragraph, start, end string) (string, bool) {
	var content strings.Builder
	found := false

	for _, para := range paragraphs {
		text := para.Text()

		if !found {
			_, after, ok := strings.Cut(text, start)
			if !ok {
				continue
			}
			found = true

			if end != EndOfDocument {
				if before, _, ok := strings.Cut(after, end); ok {
					return before, true
				}
			}
			content.WriteString(after)
			continue
		}

		content.WriteString("\n")
		content.WriteString(text)
		if end != EndOfDocument && strings.Contains(text, end) {
			before, _, _ := strings.Cut(content.String(), end)
			return before, true
		}
	}

	if found && end == EndOfDocument {
		return content.String(), true
	}
	return "", false
}
