package domain

import (
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	m "github.com/mouse-blink/declfix/internal/model"
)

// diffStats counts the characters inserted and deleted between two texts.
func diffStats(before, after string) m.DiffStats {
	var stats m.DiffStats

	if before == after {
		return stats
	}

	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, true))

	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			stats.Inserted += utf8.RuneCountInString(d.Text)
		case diffpatch.DiffDelete:
			stats.Deleted += utf8.RuneCountInString(d.Text)
		case diffpatch.DiffEqual:
		}
	}

	return stats
}
