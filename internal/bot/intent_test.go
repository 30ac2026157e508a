package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     Intent
		wantTerm string
	}{
		{
			name: "empty text does nothing",
			text: "",
			want: IntentNone,
		},
		{
			name: "whitespace only does nothing",
			text: "   \t ",
			want: IntentNone,
		},
		{
			name: "bare start is reserved and silent",
			text: "/start",
			want: IntentNone,
		},
		{
			name: "start with source deep link",
			text: "/start source",
			want: IntentShowSource,
		},
		{
			name: "start with any other argument is silent",
			text: "/start hello",
			want: IntentNone,
		},
		{
			name: "slash source",
			text: "/source",
			want: IntentShowSource,
		},
		{
			name: "bare source",
			text: "source",
			want: IntentShowSource,
		},
		{
			name:     "search with a term",
			text:     "/search hello",
			want:     IntentSearchOne,
			wantTerm: "hello",
		},
		{
			name:     "input is lowercased before matching",
			text:     "/SEARCH Hello",
			want:     IntentSearchOne,
			wantTerm: "hello",
		},
		{
			name:     "short alias",
			text:     "s worm",
			want:     IntentSearchOne,
			wantTerm: "worm",
		},
		{
			name: "short alias without a term asks for one",
			text: "s",
			want: IntentPromptForTerm,
		},
		{
			name: "search without a term asks for one",
			text: "/search",
			want: IntentPromptForTerm,
		},
		{
			name:     "argument keeps internal whitespace",
			text:     "search  multi  word term",
			want:     IntentSearchOne,
			wantTerm: "multi  word term",
		},
		{
			name: "slash info",
			text: "/info",
			want: IntentShowInfo,
		},
		{
			name: "bare info",
			text: "info",
			want: IntentShowInfo,
		},
		{
			name: "unknown command is silent",
			text: "/frobnicate now",
			want: IntentNone,
		},
		{
			name: "plain chatter is silent",
			text: "hello there",
			want: IntentNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, term := classifyMessage(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTerm, term)
		})
	}
}
