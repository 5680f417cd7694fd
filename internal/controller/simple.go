package controller

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/declfix/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start prints the run header.
func (s *SimpleUI) Start(target m.Path) {
	s.printf("Fixing duplicate declarations\n")
	s.printf("Target: %s\n", target)
	s.printf("%s\n", strings.Repeat("-", 50))
}

// DisplayLoaded confirms the target was read.
func (s *SimpleUI) DisplayLoaded(source m.Source) {
	s.printf("File loaded: %d characters\n", source.Len())
}

// DisplayCounts prints the declaration counts found before fixing.
func (s *SimpleUI) DisplayCounts(variables []m.VariableReport) {
	s.printf("\nAnalyzing duplicate declarations...\n%s", renderCounts(variables))
	s.printf("\nRemoving duplicate declarations...\n")
}

// DisplayRemoved reports the duplicates deleted for one variable.
func (s *SimpleUI) DisplayRemoved(name string, removed int) {
	s.printf("%s\n", removedLine(name, removed))
}

// DisplayRetargeted reports the value written for one variable.
func (s *SimpleUI) DisplayRetargeted(variable m.TrackedVariable, found bool) {
	s.printf("%s\n", retargetedLine(variable, found))
}

// DisplaySaved confirms the write.
func (s *SimpleUI) DisplaySaved(report m.FixReport) {
	s.printf("\n%s\n", savedLine(report))
}

// DisplayVerification prints the post-fix declaration counts.
func (s *SimpleUI) DisplayVerification(report m.FixReport) {
	s.printf("\nVerifying fix...\n%s", renderVerification(report))
}

// DisplaySuccess prints the final banner.
func (s *SimpleUI) DisplaySuccess(report m.FixReport) {
	if !report.Passed() {
		s.printf("\nDone, but some declarations did not verify.\n")

		return
	}

	s.printf("\nSUCCESS! Duplicate declarations removed.\n")
}

// DisplayFailure prints err and a hint when one applies.
func (s *SimpleUI) DisplayFailure(err error) {
	out := s.cmd.ErrOrStderr()

	_, _ = fmt.Fprintf(out, "ERROR: %v\n", err)
	if hint := failureHint(err); hint != "" {
		_, _ = fmt.Fprintln(out, hint)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
