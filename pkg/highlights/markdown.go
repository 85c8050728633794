// Package highlights parses user-supplied markdown and exported HTML into
// ordered highlight lists. Two markdown parsers exist on purpose: the file
// import variant strips Kindle-style location parentheticals, the free-text
// variant used when editing a book's highlights does not. They are not
// interchangeable.
package highlights

import (
	"regexp"
	"strings"
)

// UnknownTitle is used when no title can be found in the input.
const UnknownTitle = "Unknown Title"

// Extract is a parsed highlights document.
type Extract struct {
	Title      string   `json:"title"`
	Highlights []string `json:"highlights"`
}

var (
	// Frontmatter title block; the quotes are required.
	frontmatterTitleRE = regexp.MustCompile(`---\s*\n\s*title:\s*"([^"]*)"\s*\n\s*---`)
	// Trailing "(location 123-124)" style parenthetical.
	locationRE = regexp.MustCompile(`(?i)\(location[^)]*\)\s*$`)
	// Leading markdown list markers recognized by the free-text splitter.
	listMarkerRE = regexp.MustCompile(`^(- |\* |\d+\.\s)`)
)

// ExtractFromMarkdown parses a markdown highlights file: an optional
// frontmatter title plus one "- " line per highlight. Lines that aren't
// list items are ignored. Absence of structure yields an empty result,
// never an error.
func ExtractFromMarkdown(text string) *Extract {
	out := &Extract{Title: UnknownTitle, Highlights: []string{}}

	if m := frontmatterTitleRE.FindStringSubmatch(text); m != nil {
		out.Title = m[1]
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "- ") {
			continue
		}
		h := strings.TrimPrefix(trimmed, "- ")
		h = locationRE.ReplaceAllString(h, "")
		h = strings.TrimSpace(h)
		if h != "" {
			out.Highlights = append(out.Highlights, h)
		}
	}

	return out
}

// SplitFreeText turns free-form text into a highlight list. If any line
// carries a markdown list marker ("- ", "* ", "1. ") the marked lines
// become the highlights; otherwise the whole text, if non-empty, is one
// highlight. Location parentheticals are preserved here; only the file
// import strips them.
func SplitFreeText(text string) []string {
	lines := strings.Split(text, "\n")

	isList := false
	for _, line := range lines {
		if listMarkerRE.MatchString(strings.TrimSpace(line)) {
			isList = true
			break
		}
	}

	if !isList {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []string{trimmed}
		}
		return []string{}
	}

	out := []string{}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !listMarkerRE.MatchString(trimmed) {
			continue
		}
		h := strings.TrimSpace(listMarkerRE.ReplaceAllString(trimmed, ""))
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}
