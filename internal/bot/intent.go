package bot

import (
	"strings"
	"unicode"
)

// Intent classifies one inbound message into the action to perform.
type Intent int

const (
	// IntentNone means stay silent. Unrecognized commands and a bare
	// /start (reserved for onboarding) both land here.
	IntentNone Intent = iota
	// IntentShowSource sends the bundled dictionary document.
	IntentShowSource
	// IntentShowInfo sends the static attribution text.
	IntentShowInfo
	// IntentSearchOne looks up a single entry for the argument.
	IntentSearchOne
	// IntentPromptForTerm asks the user to supply a search term.
	IntentPromptForTerm
)

// classifyMessage maps raw message text to an intent and its argument. The
// text is lowercased first; the first whitespace-separated token is the
// command and the rest, with leading whitespace trimmed, is the argument.
// Every input maps to exactly one intent, including the empty string.
func classifyMessage(text string) (Intent, string) {
	command, argument := splitCommand(strings.ToLower(text))

	switch command {
	case "/start":
		if argument == "source" {
			return IntentShowSource, ""
		}
		return IntentNone, ""
	case "/source", "source":
		return IntentShowSource, ""
	case "/search", "search", "s":
		if argument == "" {
			return IntentPromptForTerm, ""
		}
		return IntentSearchOne, argument
	case "/info", "info":
		return IntentShowInfo, ""
	}
	return IntentNone, ""
}

func splitCommand(text string) (string, string) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimLeftFunc(text[i:], unicode.IsSpace)
}
