package processor

import (
	"github.com/xhad/medqa/internal/models"
)

// EndOfDocument is appended after the last label so that it too has a
// boundary. ExtractBetween treats it as the end of the paragraph sequence.
const EndOfDocument = "\n"

// ExtractBoldLabels joins consecutive bold runs of each paragraph into
// labels. A non-bold run or the end of the paragraph closes a label.
func ExtractBoldLabels(paragraphs []models.Paragraph) []string {
	var labels []string

	for _, para := range paragraphs {
		current := ""
		for _, run := range para.Runs {
			if run.Bold {
				current += run.Text
				continue
			}
			if current != "" {
				labels = append(labels, current)
				current = ""
			}
		}
		if current != "" {
			labels = append(labels, current)
		}
	}

	return append(labels, EndOfDocument)
}
