package processor

import (
	"strings"
	"unicode"
)

var punctuation = strings.NewReplacer(
	"，", ",", "。", ".", "！", "!", "？", "?", "；", ";", "：", ":",
	"“", `"`, "”", `"`, "‘", "'", "’", "'", "【", "[", "】", "]",
	"（", "(", "）", ")", "《", "<", "》", ">", "、", ",", "——", "-",
	"／", "/",
)

// stripSet is trimmed from both ends of cleaned strings.
const stripSet = " \t\n\r\f\v`~!@#$%^&*()_+-=[]{}|;:'\",.<>?/\\"

// NormalizePunctuation maps full-width and CJK punctuation to ASCII.
func NormalizePunctuation(text string) string {
	return punctuation.Replace(text)
}

// CleanString collapses whitespace runs to a single space and trims
// punctuation and whitespace from both ends.
func CleanString(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		b.WriteRune(r)
		space = false
	}

	return strings.Trim(b.String(), stripSet)
}
