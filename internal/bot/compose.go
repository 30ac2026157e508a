package bot

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/oljoi/brainwormsbot/internal/dictionary"
)

// maxInlineResults caps one inline answer; the chat service rejects longer
// lists.
const maxInlineResults = 20

// cardTemplate is the reply card for a single entry. Entry fields are
// untrusted and the template engine escapes them for HTML.
var cardTemplate = template.Must(template.New("card").Parse(`<b>{{.ReadableName}}</b>
<blockquote expandable>{{.ReadableName}} — {{.Description}}</blockquote>
Source: <a href="https://t.me/brainwormsbot?start=source">{{.AddedBy}}</a>
`))

// FormatCard renders the HTML reply card for one entry.
func FormatCard(entry dictionary.Entry) string {
	var b strings.Builder
	// the template is fixed and strings.Builder does not fail writes
	_ = cardTemplate.Execute(&b, entry)
	return b.String()
}

// NothingFoundResult builds the placeholder card used when an inline search
// matches nothing. Build it once and reuse it; it is never mutated.
func NothingFoundResult() InlineResult {
	return InlineResult{
		ID:          "nothing_found",
		Title:       "No such word found",
		Description: "Found nothing :(",
		MessageHTML: "Found nothing :(",
	}
}

// ComposeInlineResults maps entries to inline cards in the order given,
// capped at maxInlineResults. An empty input yields the placeholder alone.
func ComposeInlineResults(entries []dictionary.Entry, nothingFound InlineResult) []InlineResult {
	if len(entries) == 0 {
		return []InlineResult{nothingFound}
	}
	if len(entries) > maxInlineResults {
		entries = entries[:maxInlineResults]
	}

	results := make([]InlineResult, 0, len(entries))
	for _, entry := range entries {
		results = append(results, InlineResult{
			ID:          strconv.FormatInt(entry.ID, 10),
			Title:       entry.ReadableName,
			Description: entry.Description,
			MessageHTML: FormatCard(entry),
		})
	}
	return results
}
