package bookrecord

import (
	"github.com/segmentio/encoding/json"
)

// Normalize converts a raw stored record into a Record. It is a total
// function: malformed JSON, absent columns, and wrongly-typed values all
// decode to the field's empty default. One corrupt record must never break
// library-wide listing, so no error is ever returned.
func Normalize(raw Raw) *Record {
	return &Record{
		ID:                  stringValue(raw["id"]),
		Title:               stringValue(raw["title"]),
		Authors:             decodeAuthors(raw["authors"]),
		ImageLinks:          decodeImageLinks(raw["image_links"]),
		IndustryIdentifiers: decodeIdentifiers(raw["industry_identifiers"]),
		Highlights:          decodeStringList(raw["highlights"]),
		Subjects:            decodeStringList(raw["subjects"]),
		Tags:                decodeStringList(raw["tags"]),
		PageCount:           intPointer(raw["page_count"]),
		PublishedDate:       stringPointer(raw["published_date"]),
		FullPublishDate:     stringPointer(raw["full_publish_date"]),
		Publisher:           stringPointer(raw["publisher"]),
		Description:         stringPointer(raw["book_description"]),
		StartedOn:           stringPointer(raw["started_on"]),
		FinishedOn:          stringPointer(raw["finished_on"]),
		ReadingMedium:       stringValueDefault(raw["reading_medium"], DefaultReadingMedium),
		Shelf:               ParseShelf(stringValue(raw["shelf"])),
		HasHighlights:       boolValue(raw["has_highlights"]),
		ReadingProgress:     intValue(raw["reading_progress"]),
	}
}

// decodeStringList decodes a list column. Accepted inputs: an actual list, a
// JSON-encoded list in a string, or nothing. Everything else decodes to the
// empty list. Non-string elements inside a decoded list are dropped.
func decodeStringList(v any) []string {
	switch val := v.(type) {
	case []string:
		return append([]string{}, val...)
	case []any:
		return stringElements(val)
	case string:
		if val == "" {
			return []string{}
		}
		var out []any
		if err := json.Unmarshal([]byte(val), &out); err == nil {
			return stringElements(out)
		}
	}
	return []string{}
}

// decodeAuthors is decodeStringList with one extra rule: a string that is
// not a JSON array is treated as a single author name, not as garbage. Old
// rows stored a bare name in this column.
func decodeAuthors(v any) []string {
	if s, ok := v.(string); ok && s != "" {
		var out []any
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return []string{s}
		}
		return stringElements(out)
	}
	return decodeStringList(v)
}

func decodeImageLinks(v any) map[string]string {
	links := map[string]string{}
	switch val := v.(type) {
	case map[string]string:
		for k, s := range val {
			links[k] = s
		}
	case map[string]any:
		for k, el := range val {
			if s, ok := el.(string); ok {
				links[k] = s
			}
		}
	case string:
		if val == "" {
			return links
		}
		var out map[string]any
		if err := json.Unmarshal([]byte(val), &out); err != nil {
			return links
		}
		for k, el := range out {
			if s, ok := el.(string); ok {
				links[k] = s
			}
		}
	}
	return links
}

func decodeIdentifiers(v any) []Identifier {
	switch val := v.(type) {
	case []Identifier:
		return append([]Identifier{}, val...)
	case string:
		if val == "" {
			return []Identifier{}
		}
		var out []Identifier
		if err := json.Unmarshal([]byte(val), &out); err == nil {
			return out
		}
	case []any:
		// Already-decoded payload shape; round-trip through JSON.
		b, err := json.Marshal(val)
		if err != nil {
			return []Identifier{}
		}
		var out []Identifier
		if err := json.Unmarshal(b, &out); err == nil {
			return out
		}
	}
	return []Identifier{}
}

func stringElements(vals []any) []string {
	out := []string{}
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func stringValueDefault(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

func stringPointer(v any) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}

func intValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func intPointer(v any) *int {
	switch n := v.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	}
	return nil
}

func boolValue(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int:
		return b != 0
	case int64:
		return b != 0
	case float64:
		return b != 0
	}
	return false
}
