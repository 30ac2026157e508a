// Package assets bundles static files shipped with the bot.
package assets

import _ "embed"

// DictionaryFileName is the file name presented to chat clients.
const DictionaryFileName = "brainworms.pdf"

//go:embed brainworms.pdf
var dictionaryPDF []byte

// DictionaryPDF returns the bundled dictionary document.
func DictionaryPDF() []byte {
	return dictionaryPDF
}
