// Package controller provides output adapters for reporting fix progress.
package controller

import (
	m "github.com/mouse-blink/declfix/internal/model"
)

// UI defines the interface for reporting the progress of a fix run.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	Start(target m.Path)
	DisplayLoaded(source m.Source)
	DisplayCounts(variables []m.VariableReport)
	DisplayRemoved(name string, removed int)
	DisplayRetargeted(variable m.TrackedVariable, found bool)
	DisplaySaved(report m.FixReport)
	DisplayVerification(report m.FixReport)
	DisplaySuccess(report m.FixReport)
	DisplayFailure(err error)
}
