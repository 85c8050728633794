// Package htmlutil cleans up the light markup that catalog descriptions
// sometimes carry.
package htmlutil

import (
	"html"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

var multipleSpacesPattern = regexp.MustCompile(`\s{2,}`)

// blockTags are replaced with newlines before stripping so paragraph breaks
// survive.
var blockTags = []string{"</p>", "</div>", "<br>", "<br/>", "<br />", "</li>", "</h1>", "</h2>", "</h3>", "</h4>", "</h5>", "</h6>"}

// StripTags removes HTML tags from a string, decodes entities, and
// normalizes whitespace. Block-level closing tags become newlines.
func StripTags(s string) string {
	if s == "" {
		return ""
	}

	result := s
	for _, tag := range blockTags {
		result = strings.ReplaceAll(result, tag, "\n")
		result = strings.ReplaceAll(result, strings.ToUpper(tag), "\n")
	}

	result = tagPattern.ReplaceAllString(result, "")
	result = html.UnescapeString(result)

	lines := strings.Split(result, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(multipleSpacesPattern.ReplaceAllString(line, " "))
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}
