// Package domain contains the duplicate-declaration fixer and its workflow.
package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/declfix/internal/model"
)

const (
	// DeclarationKeyword opens every tracked declaration statement.
	DeclarationKeyword = "declare"
	// MarkerComment identifies the section header written above declarations.
	MarkerComment = "// ===== CURRENT INFO"
)

// Patcher finds, deduplicates and rewrites `<keyword> <name> = '<literal>';`
// statements in plain text. It is not safe for concurrent use.
type Patcher struct {
	keyword string
	marker  string
	exprs   map[string]*regexp.Regexp
}

// NewPatcher returns a Patcher using DeclarationKeyword and MarkerComment.
func NewPatcher() *Patcher {
	return NewPatcherWith(DeclarationKeyword, MarkerComment)
}

// NewPatcherWith returns a Patcher for a custom keyword and marker substring.
func NewPatcherWith(keyword, marker string) *Patcher {
	return &Patcher{
		keyword: keyword,
		marker:  marker,
		exprs:   make(map[string]*regexp.Regexp),
	}
}

// Count returns how many times the opening fragment `<keyword> <name> =`
// occurs in text.
func (p *Patcher) Count(text, name string) int {
	return strings.Count(text, p.keyword+" "+name+" =")
}

// FindDeclarations returns every complete declaration of name in ascending
// offset order.
func (p *Patcher) FindDeclarations(text, name string) []m.DeclarationMatch {
	locs := p.expr(name).FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]m.DeclarationMatch, 0, len(locs))

	for i, loc := range locs {
		floor := 0
		if i > 0 {
			floor = locs[i-1][1]
		}

		matches = append(matches, m.DeclarationMatch{
			Start:       loc[0],
			End:         loc[1],
			MarkerStart: p.markerStart(text, loc[0], floor),
		})
	}

	return matches
}

// Deduplicate keeps the first declaration of name and deletes the others,
// together with a marker comment line sitting directly above each of them.
// It returns the new text and the number of declarations removed.
func (p *Patcher) Deduplicate(text, name string) (string, int) {
	matches := p.FindDeclarations(text, name)
	if len(matches) < 2 {
		return text, 0
	}

	// Highest offset first so pending spans stay valid.
	for i := len(matches) - 1; i >= 1; i-- {
		start, end := matches[i].Span()
		text = text[:start] + text[end:]
	}

	return text, len(matches) - 1
}

// Retarget rewrites the first declaration of v.Name so that its literal is
// v.Value. It reports false, leaving text unchanged, when there is none.
func (p *Patcher) Retarget(text string, v m.TrackedVariable) (string, bool) {
	loc := p.expr(v.Name).FindStringIndex(text)
	if loc == nil {
		return text, false
	}

	return text[:loc[0]] + p.Declaration(v) + text[loc[1]:], true
}

// Declaration renders the statement Retarget writes for v.
func (p *Patcher) Declaration(v m.TrackedVariable) string {
	return fmt.Sprintf("%s %s = '%s';", p.keyword, v.Name, v.Value)
}

func (p *Patcher) expr(name string) *regexp.Regexp {
	if re, ok := p.exprs[name]; ok {
		return re
	}

	re := regexp.MustCompile(regexp.QuoteMeta(p.keyword+" "+name+" = '") + `[^']*';`)
	p.exprs[name] = re

	return re
}

// markerStart returns the offset of the line before the one holding the
// declaration at start when that line contains the marker, or -1. Only
// whitespace may sit between the line start and the declaration, and the
// marker line must begin at or after floor so an earlier declaration is
// never swallowed.
func (p *Patcher) markerStart(text string, start, floor int) int {
	lineStart := strings.LastIndexByte(text[:start], '\n') + 1
	if lineStart == 0 || strings.TrimSpace(text[lineStart:start]) != "" {
		return -1
	}

	prevStart := strings.LastIndexByte(text[:lineStart-1], '\n') + 1
	if prevStart < floor {
		return -1
	}

	if !strings.Contains(text[prevStart:lineStart-1], p.marker) {
		return -1
	}

	return prevStart
}
