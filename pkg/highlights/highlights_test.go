package highlights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFromMarkdown(t *testing.T) {
	t.Parallel()

	input := "---\ntitle: \"Foo\"\n---\n- First highlight (location 12)\n- Second\n\nNot a highlight"
	out := ExtractFromMarkdown(input)

	assert.Equal(t, "Foo", out.Title)
	assert.Equal(t, []string{"First highlight", "Second"}, out.Highlights)
}

func TestExtractFromMarkdownMissingTitle(t *testing.T) {
	t.Parallel()

	out := ExtractFromMarkdown("- One\n- Two")
	assert.Equal(t, UnknownTitle, out.Title)
	assert.Equal(t, []string{"One", "Two"}, out.Highlights)
}

func TestExtractFromMarkdownLocationCaseInsensitive(t *testing.T) {
	t.Parallel()

	out := ExtractFromMarkdown("- Keep me (Location 44-45)\n- Also (LOCATION 9)")
	assert.Equal(t, []string{"Keep me", "Also"}, out.Highlights)
}

func TestExtractFromMarkdownEmptyResult(t *testing.T) {
	t.Parallel()

	out := ExtractFromMarkdown("no list items here\njust prose")
	assert.Equal(t, UnknownTitle, out.Title)
	assert.Empty(t, out.Highlights)

	// A marker with only a location parenthetical yields nothing.
	out = ExtractFromMarkdown("- (location 3)")
	assert.Empty(t, out.Highlights)
}

func TestExtractFromHTML(t *testing.T) {
	t.Parallel()

	input := `<div class="bookTitle">Bar</div><div class="noteText">Quote one</div><div class="noteText">Quote two</div>`
	out := ExtractFromHTML(input)

	assert.Equal(t, "Bar", out.Title)
	assert.Equal(t, []string{"Quote one", "Quote two"}, out.Highlights)
}

func TestExtractFromHTMLNoMatches(t *testing.T) {
	t.Parallel()

	out := ExtractFromHTML("<p>nothing useful</p>")
	assert.Equal(t, UnknownTitle, out.Title)
	assert.Empty(t, out.Highlights)
}

func TestExtractFromHTMLKeepsEntitiesEncoded(t *testing.T) {
	t.Parallel()

	out := ExtractFromHTML(`<div class="noteText">Tom &amp; Jerry</div>`)
	assert.Equal(t, []string{"Tom &amp; Jerry"}, out.Highlights)
}

func TestSplitFreeTextListInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"one", "two"}, SplitFreeText("- one\n- two"))
	assert.Equal(t, []string{"one", "two"}, SplitFreeText("* one\n* two"))
	assert.Equal(t, []string{"one", "two"}, SplitFreeText("1. one\n2. two"))
}

func TestSplitFreeTextBlockInput(t *testing.T) {
	t.Parallel()

	// A non-list block of text becomes a single highlight.
	assert.Equal(t, []string{"just one big quote"}, SplitFreeText("  just one big quote \n"))
	assert.Empty(t, SplitFreeText("   \n \n"))
}

func TestSplitFreeTextKeepsLocations(t *testing.T) {
	t.Parallel()

	// Unlike the file import, locations survive free-text editing.
	assert.Equal(t, []string{"quote (location 12)"}, SplitFreeText("- quote (location 12)"))
}

func TestLooksLikeHTML(t *testing.T) {
	t.Parallel()

	assert.True(t, LooksLikeHTML(`<div class="bookTitle">X</div>`))
	assert.True(t, LooksLikeHTML("  <html><body></body></html>"))
	assert.False(t, LooksLikeHTML("---\ntitle: \"Foo\"\n---\n- x"))
}
