// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package uninstallcmd

import (
	"os/user"

	"github.com/spf13/cobra"

	"github.com/snowball-lang/installer/pkg/application"
	"github.com/snowball-lang/installer/pkg/binutils"
	"github.com/snowball-lang/installer/pkg/constants"
	"github.com/snowball-lang/installer/pkg/shell"
	"github.com/snowball-lang/installer/pkg/ux"
)

func NewCmd(app *application.Snowball) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the installed Snowball toolchain",
		Long: `Deletes the target directory and everything in it. The PATH export line
in your shell profile is reported but left in place.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runUninstall(app)
		},
	}
}

func runUninstall(app *application.Snowball) error {
	if !app.BaseDirExists() {
		ux.Logger.PrintToUser("Nothing to do: %s does not exist", app.GetBaseDir())
		return nil
	}

	// default answer is No: deleting an installation should take an
	// explicit confirmation
	confirmed, err := app.Prompt.CaptureNoYes("Remove " + app.GetBaseDir() + " and everything in it?")
	if err != nil {
		return err
	}
	if !confirmed {
		ux.Logger.PrintToUser("Uninstall cancelled")
		return constants.ErrUserAborted
	}

	binDir := app.GetBinDir()
	if err := binutils.RemovePrevious(app); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Removed %s", app.GetBaseDir())

	reportLeftoverExport(app, binDir)
	return nil
}

// reportLeftoverExport tells the user which profile still carries the PATH
// line. Best-effort: shell detection failures only skip the report.
func reportLeftoverExport(app *application.Snowball, binDir string) {
	kind, err := shell.Detect()
	if err != nil {
		app.Log.Infow("skipping profile report", "error", err)
		return
	}
	usr, err := user.Current()
	if err != nil {
		return
	}
	candidates, err := shell.CandidateProfiles(kind, usr.HomeDir)
	if err != nil {
		return
	}
	for _, profile := range candidates {
		if has, err := shell.ProfileHasExport(profile, binDir); err == nil && has {
			ux.Logger.PrintToUser("Note: %s still contains the line below; remove it by hand if you wish:", profile)
			ux.Logger.PrintToUser("  %s", shell.ExportLine(binDir))
		}
	}
}
