package domain

import (
	"fmt"
	"unicode/utf8"

	"github.com/mouse-blink/declfix/internal/adapter"
	"github.com/mouse-blink/declfix/internal/controller"
	m "github.com/mouse-blink/declfix/internal/model"
)

// FixArgs holds the parameters of a fix run.
type FixArgs struct {
	// Target is the file to rewrite. Empty means DefaultTarget.
	Target m.Path
	// Variables is the tracked table. Nil means DefaultVariables.
	Variables []m.TrackedVariable
}

func (a FixArgs) withDefaults() FixArgs {
	if a.Target == "" {
		a.Target = DefaultTarget
	}

	if a.Variables == nil {
		a.Variables = DefaultVariables
	}

	return a
}

// Workflow defines the interface for the declaration fix operation.
type Workflow interface {
	// Fix runs Load, Count, Deduplicate, Retarget, Save and Verify once
	// against args.Target, reporting progress through the UI.
	Fix(args FixArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	patcher   *Patcher
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI, patcher *Patcher) Workflow {
	if patcher == nil {
		patcher = NewPatcher()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		patcher:   patcher,
	}
}

func (w *workflow) Fix(args FixArgs) error {
	args = args.withDefaults()

	w.ui.Start(args.Target)

	report, err := w.run(args)
	if err != nil {
		w.ui.DisplayFailure(err)

		return err
	}

	w.ui.DisplaySuccess(report)

	return nil
}

func (w *workflow) run(args FixArgs) (m.FixReport, error) {
	report := m.FixReport{Path: args.Target}

	if err := ValidateVariables(args.Variables); err != nil {
		return report, err
	}

	source, err := w.fsAdapter.ReadFile(args.Target)
	if err != nil {
		return report, fmt.Errorf("load %s: %w", args.Target, err)
	}

	report.CharsBefore = source.Len()
	w.ui.DisplayLoaded(source)

	variables := make([]m.VariableReport, len(args.Variables))
	for i, v := range args.Variables {
		variables[i] = m.VariableReport{
			Name:   v.Name,
			Before: w.patcher.Count(source.Text, v.Name),
		}
	}

	w.ui.DisplayCounts(variables)

	text := source.Text

	for i, v := range args.Variables {
		var removed int

		text, removed = w.patcher.Deduplicate(text, v.Name)
		variables[i].Removed = removed
		w.ui.DisplayRemoved(v.Name, removed)
	}

	for _, v := range args.Variables {
		var found bool

		text, found = w.patcher.Retarget(text, v)
		w.ui.DisplayRetargeted(v, found)
	}

	if err := w.save(args.Target, text); err != nil {
		return report, err
	}

	report.CharsAfter = utf8.RuneCountInString(text)
	report.Diff = diffStats(source.Text, text)
	w.ui.DisplaySaved(report)

	for i, v := range args.Variables {
		variables[i].After = w.patcher.Count(text, v.Name)
	}

	report.Variables = variables
	w.ui.DisplayVerification(report)

	return report, nil
}

func (w *workflow) save(target m.Path, text string) error {
	info, err := w.fsAdapter.FileInfo(target)
	if err != nil {
		return fmt.Errorf("save %s: %w", target, err)
	}

	if err := w.fsAdapter.WriteFile(target, text, info.Mode().Perm()); err != nil {
		return fmt.Errorf("save %s: %w", target, err)
	}

	return nil
}
