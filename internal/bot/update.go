// Package bot routes inbound chat updates to dictionary lookups and
// composes the replies. Handlers hold no state across updates; every
// invocation is independent.
package bot

// Message is a direct chat message received from the transport.
type Message struct {
	ChatID int64
	Text   string
}

// InlineQuery is an inline search received from the transport. There is no
// chat context; the reply is a list of selectable cards.
type InlineQuery struct {
	ID    string
	Query string
}

// Document is a named byte blob sent as a file attachment.
type Document struct {
	Name string
	Data []byte
}

// InlineResult is one selectable card in an inline query response.
// MessageHTML is the message sent when the user picks the card;
// Description is a plain display field and is not HTML.
type InlineResult struct {
	ID          string
	Title       string
	Description string
	MessageHTML string
}
