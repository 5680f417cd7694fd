// Package cmd provides the root command and CLI setup for declfix.
package cmd

import (
	"os"

	"github.com/mouse-blink/declfix/internal/adapter"
	"github.com/mouse-blink/declfix/internal/controller"
	"github.com/mouse-blink/declfix/internal/domain"
	"github.com/spf13/cobra"
)

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter, ui, domain.NewPatcher())
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "declfix",
		Short: "Remove duplicate tracked declarations from " + string(domain.DefaultTarget),
		Long: `declfix rewrites ` + string(domain.DefaultTarget) + ` in place, relative to the
current directory. For every tracked variable it keeps the first
"declare <name> = '<value>';" statement, deletes the later ones (and a
"` + domain.MarkerComment + `" comment line directly above them), then sets
the surviving statement to its fixed value:
` + trackedTable() + `
The file is overwritten without a backup.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Fix(domain.FixArgs{
				Target:    domain.DefaultTarget,
				Variables: domain.DefaultVariables,
			})
		},
	}

	return cmd
}

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func trackedTable() string {
	var s string
	for _, v := range domain.DefaultVariables {
		s += "\n  " + v.Name + " = '" + v.Value + "'"
	}

	return s + "\n"
}
