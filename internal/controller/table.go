package controller

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mouse-blink/declfix/internal/adapter"
	m "github.com/mouse-blink/declfix/internal/model"
	"github.com/olekukonko/tablewriter"
)

const (
	passMark = "✅"
	failMark = "❌"
)

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderCounts(variables []m.VariableReport) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Variable", "Declarations"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, v := range variables {
		table.Append([]string{v.Name, fmt.Sprintf("%d", v.Before)})
	}

	table.Render()

	return buf.String()
}

func renderVerification(report m.FixReport) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Status", "Variable", "Before", "Removed", "After"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, v := range report.Variables {
		mark := failMark
		if v.Passed() {
			mark = passMark
		}

		table.Append([]string{
			mark,
			v.Name,
			fmt.Sprintf("%d", v.Before),
			fmt.Sprintf("%d", v.Removed),
			fmt.Sprintf("%d", v.After),
		})
	}

	table.Render()

	return buf.String()
}

func removedLine(name string, removed int) string {
	if removed == 0 {
		return fmt.Sprintf("  %s: no duplicates", name)
	}

	return fmt.Sprintf("  %s: removed %d duplicate(s)", name, removed)
}

func retargetedLine(v m.TrackedVariable, found bool) string {
	if !found {
		return fmt.Sprintf("  %s: not declared, nothing to update", v.Name)
	}

	return fmt.Sprintf("  %s = '%s'", v.Name, v.Value)
}

func savedLine(report m.FixReport) string {
	return fmt.Sprintf("File updated: %d characters (+%d/-%d)", report.CharsAfter, report.Diff.Inserted, report.Diff.Deleted)
}

func failureHint(err error) string {
	if errors.Is(err, adapter.ErrNotFound) {
		return "Make sure you are running from the directory that contains the target file."
	}

	return ""
}
