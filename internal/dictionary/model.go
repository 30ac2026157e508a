// Package dictionary provides read access to the word dictionary.
package dictionary

// Entry is one dictionary record. Name is the normalized lookup key and is
// not shown to users; ReadableName is the display title.
type Entry struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	ReadableName string `db:"readable_name"`
	Description  string `db:"desc"`
	AddedBy      string `db:"added_by"`
	Lang         string `db:"lang"`
}
