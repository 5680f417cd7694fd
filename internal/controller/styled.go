package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/declfix/internal/model"
)

// StyledUI implements UI with lipgloss colouring for interactive terminals.
type StyledUI struct {
	output io.Writer

	title   lipgloss.Style
	section lipgloss.Style
	accent  lipgloss.Style
	faint   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// NewStyledUI creates a new StyledUI writing to output.
func NewStyledUI(output io.Writer) *StyledUI {
	r := lipgloss.NewRenderer(output)

	return &StyledUI{
		output: output,
		title: r.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("8")),
		section: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		accent:  r.NewStyle().Foreground(lipgloss.Color("11")),
		faint:   r.NewStyle().Foreground(lipgloss.Color("8")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Start prints the run header.
func (s *StyledUI) Start(target m.Path) {
	s.println(s.title.Render("Fixing duplicate declarations"))
	s.println("Target: " + s.accent.Render(string(target)))
}

// DisplayLoaded confirms the target was read.
func (s *StyledUI) DisplayLoaded(source m.Source) {
	s.println(s.success.Render("File loaded") + fmt.Sprintf(": %d characters", source.Len()))
}

// DisplayCounts prints the declaration counts found before fixing.
func (s *StyledUI) DisplayCounts(variables []m.VariableReport) {
	s.println("\n" + s.section.Render("Analyzing duplicate declarations"))
	s.print(renderCounts(variables))
	s.println("\n" + s.section.Render("Removing duplicate declarations"))
}

// DisplayRemoved reports the duplicates deleted for one variable.
func (s *StyledUI) DisplayRemoved(name string, removed int) {
	line := removedLine(name, removed)
	if removed == 0 {
		line = s.faint.Render(line)
	}

	s.println(line)
}

// DisplayRetargeted reports the value written for one variable.
func (s *StyledUI) DisplayRetargeted(variable m.TrackedVariable, found bool) {
	line := retargetedLine(variable, found)
	if !found {
		line = s.faint.Render(line)
	}

	s.println(line)
}

// DisplaySaved confirms the write.
func (s *StyledUI) DisplaySaved(report m.FixReport) {
	s.println("\n" + s.success.Render(savedLine(report)))
}

// DisplayVerification prints the post-fix declaration counts.
func (s *StyledUI) DisplayVerification(report m.FixReport) {
	s.println("\n" + s.section.Render("Verifying fix"))
	s.print(renderVerification(report))
}

// DisplaySuccess prints the final banner.
func (s *StyledUI) DisplaySuccess(report m.FixReport) {
	if !report.Passed() {
		s.println("\n" + s.accent.Render("Done, but some declarations did not verify."))

		return
	}

	s.println("\n" + s.success.Render("SUCCESS! Duplicate declarations removed."))
}

// DisplayFailure prints err and a hint when one applies.
func (s *StyledUI) DisplayFailure(err error) {
	s.println(s.failure.Render("ERROR: ") + err.Error())
	if hint := failureHint(err); hint != "" {
		s.println(s.faint.Render(hint))
	}
}

func (s *StyledUI) print(text string) {
	_, _ = fmt.Fprint(s.output, text)
}

func (s *StyledUI) println(text string) {
	_, _ = fmt.Fprintln(s.output, text)
}
