package highlights

import (
	"regexp"
	"strings"
)

var (
	bookTitleRE = regexp.MustCompile(`(?s)<div class="bookTitle">(.*?)</div>`)
	noteTextRE  = regexp.MustCompile(`(?s)<div class="noteText">(.*?)</div>`)
)

// ExtractFromHTML parses a Kindle-style HTML clippings export. The title is
// the first bookTitle div, highlights are every noteText div in document
// order. HTML entities are left encoded; the exports have always been
// rendered back into HTML so nothing downstream expects decoded text.
func ExtractFromHTML(text string) *Extract {
	out := &Extract{Title: UnknownTitle, Highlights: []string{}}

	if m := bookTitleRE.FindStringSubmatch(text); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			out.Title = title
		}
	}

	for _, m := range noteTextRE.FindAllStringSubmatch(text, -1) {
		if h := strings.TrimSpace(m[1]); h != "" {
			out.Highlights = append(out.Highlights, h)
		}
	}

	return out
}

// LooksLikeHTML reports whether an import payload should go through the
// HTML extractor rather than the markdown one.
func LooksLikeHTML(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "<") || strings.Contains(text, `class="bookTitle"`) || strings.Contains(text, `class="noteText"`)
}
