package model

// TrackedVariable is a variable whose declaration must appear exactly once in
// the target file and carry Value as its string literal.
type TrackedVariable struct {
	Name  string
	Value string
}

// DeclarationMatch describes one occurrence of a tracked declaration.
type DeclarationMatch struct {
	// Start and End delimit the statement itself, End exclusive.
	Start int
	End   int
	// MarkerStart is the offset of the marker comment line directly above the
	// statement, or -1 when there is none.
	MarkerStart int
}

// HasMarker reports whether a marker comment line precedes the declaration.
func (d DeclarationMatch) HasMarker() bool {
	return d.MarkerStart >= 0
}

// Span returns the range that removing this declaration deletes.
func (d DeclarationMatch) Span() (int, int) {
	if d.HasMarker() {
		return d.MarkerStart, d.End
	}

	return d.Start, d.End
}
