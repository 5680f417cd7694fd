package model

// VariableReport holds the per-variable counts of a single fix run.
type VariableReport struct {
	Name    string
	Before  int // declarations found before deduplication
	Removed int // duplicates deleted
	After   int // declarations left in the saved text
}

// Passed is true when exactly one declaration remains.
func (r VariableReport) Passed() bool {
	return r.After == 1
}

// DiffStats summarises how much text a run changed.
type DiffStats struct {
	Inserted int
	Deleted  int
}

// Changed reports whether the run modified the text at all.
func (d DiffStats) Changed() bool {
	return d.Inserted > 0 || d.Deleted > 0
}

// FixReport is the outcome of a fix run.
type FixReport struct {
	Path        Path
	CharsBefore int
	CharsAfter  int
	Variables   []VariableReport
	Diff        DiffStats
}

// Passed is true when every tracked variable passed verification.
func (r FixReport) Passed() bool {
	for _, v := range r.Variables {
		if !v.Passed() {
			return false
		}
	}

	return true
}
