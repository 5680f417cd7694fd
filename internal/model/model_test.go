package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclarationMatch_Span(t *testing.T) {
	plain := DeclarationMatch{Start: 10, End: 20, MarkerStart: -1}
	start, end := plain.Span()
	assert.False(t, plain.HasMarker())
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	marked := DeclarationMatch{Start: 10, End: 20, MarkerStart: 3}
	start, end = marked.Span()
	assert.True(t, marked.HasMarker())
	assert.Equal(t, 3, start)
	assert.Equal(t, 20, end)
}

func TestFixReport_Passed(t *testing.T) {
	report := FixReport{Variables: []VariableReport{
		{Name: "a", After: 1},
		{Name: "b", After: 1},
	}}
	assert.True(t, report.Passed())

	report.Variables = append(report.Variables, VariableReport{Name: "c", After: 0})
	assert.False(t, report.Passed())

	report.Variables[2].After = 2
	assert.False(t, report.Passed())
}

func TestSource_Len(t *testing.T) {
	assert.Equal(t, 0, Source{}.Len())
	assert.Equal(t, 4, Source{Text: "🏦 ok"}.Len())
}

func TestDiffStats_Changed(t *testing.T) {
	assert.False(t, DiffStats{}.Changed())
	assert.True(t, DiffStats{Deleted: 1}.Changed())
}
