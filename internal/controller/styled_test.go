package controller

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/mouse-blink/declfix/internal/adapter"
	m "github.com/mouse-blink/declfix/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestStyledUI_FullRun(t *testing.T) {
	var buf bytes.Buffer

	ui := NewStyledUI(&buf)
	report := sampleReport()
	report.Variables = report.Variables[:1]

	ui.Start("src/hooks/useBotMarket.js")
	ui.DisplayLoaded(m.Source{Text: "abc"})
	ui.DisplayCounts(report.Variables)
	ui.DisplayRemoved("currentUser", 1)
	ui.DisplayRetargeted(m.TrackedVariable{Name: "currentUser", Value: "Vishalsnw"}, true)
	ui.DisplaySaved(report)
	ui.DisplayVerification(report)
	ui.DisplaySuccess(report)

	output := buf.String()
	for _, want := range []string{
		"Fixing duplicate declarations",
		"src/hooks/useBotMarket.js",
		"3 characters",
		"currentUser: removed 1 duplicate(s)",
		"currentUser = 'Vishalsnw'",
		"80 characters (+9/-49)",
		passMark,
		"SUCCESS!",
	} {
		assert.Contains(t, output, want)
	}
}

func TestStyledUI_DisplayFailure(t *testing.T) {
	var buf bytes.Buffer

	NewStyledUI(&buf).DisplayFailure(fmt.Errorf("load x.js: %w", adapter.ErrNotFound))

	assert.Contains(t, buf.String(), "ERROR: ")
	assert.Contains(t, buf.String(), "load x.js: file not found")
	assert.Contains(t, buf.String(), "directory that contains the target file")
}
