// Package model defines the data structures shared by the declaration fixer.
package model

// Path represents a file system path.
type Path string

// Source is the full text of the target file together with where it came from.
type Source struct {
	Origin Path
	Text   string
}

// Len returns the number of characters (runes) in the source text.
func (s Source) Len() int {
	return len([]rune(s.Text))
}
