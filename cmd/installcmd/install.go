// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package installcmd

import (
	"fmt"
	"os/user"
	"time"

	"github.com/spf13/cobra"

	"github.com/snowball-lang/installer/pkg/application"
	"github.com/snowball-lang/installer/pkg/binutils"
	"github.com/snowball-lang/installer/pkg/constants"
	"github.com/snowball-lang/installer/pkg/platform"
	"github.com/snowball-lang/installer/pkg/prompts"
	"github.com/snowball-lang/installer/pkg/shell"
	"github.com/snowball-lang/installer/pkg/ux"
)

var toolchainVersion string

func NewCmd(app *application.Snowball) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Download and install the Snowball toolchain",
		Long: `Detects the host platform, downloads the matching Snowball release
archive, installs it under the target directory and adds the toolchain
to your shell's PATH.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runInstall(app)
		},
	}

	cmd.Flags().StringVar(&toolchainVersion, "version", "", "release tag to install (default: latest)")

	return cmd
}

func runInstall(app *application.Snowball) error {
	// platform check comes first: unsupported hosts must fail before any
	// network access
	desc, err := platform.Detect(platform.NewArchProber())
	if err != nil {
		ux.Logger.PrintError("%s", err)
		return err
	}
	app.Log.Infow("detected platform", "os", desc.OS, "arch", desc.Arch)

	if toolchainVersion != "" {
		if err := prompts.ValidateVersion(toolchainVersion); err != nil {
			return fmt.Errorf("invalid --version %q: %w", toolchainVersion, err)
		}
	}

	if err := handlePreviousInstall(app); err != nil {
		return err
	}

	if err := binutils.CreateTargetDir(app); err != nil {
		return err
	}

	tracker := ux.NewStepTracker(ux.Logger, 2*time.Minute)
	tracker.Start(fmt.Sprintf("Installing %s into %s", describeVersion(), app.GetBaseDir()))
	if err := binutils.InstallRelease(app, desc, toolchainVersion); err != nil {
		tracker.Failed(err.Error())
		return err
	}
	binutils.ChownToInvokingUser(app, app.GetBaseDir())
	tracker.CompleteSuccess()

	if err := updatePath(app); err != nil {
		return err
	}

	if prev := app.Conf.LastInstalledVersion(); prev != "" && prev != describeVersion() {
		ux.Logger.PrintToUser("Replaced previously installed release %s", prev)
	}
	if err := app.Conf.RecordInstalledVersion(describeVersion()); err != nil {
		app.Log.Warnw("could not record installed version", "error", err)
	}

	printSummary(app)
	return nil
}

func describeVersion() string {
	if toolchainVersion == "" {
		return "latest"
	}
	return toolchainVersion
}

// handlePreviousInstall offers to delete an existing target directory. A
// declined removal is not an error: extraction merges into the existing
// directory.
func handlePreviousInstall(app *application.Snowball) error {
	if !app.BaseDirExists() {
		return nil
	}

	ux.Logger.PrintToUser("Found a previous installation at %s", app.GetBaseDir())
	remove, err := app.Prompt.CaptureYesNo("Remove the previous installation before installing?")
	if err != nil {
		return err
	}
	if !remove {
		ux.Logger.PrintToUser("Keeping existing files; the new release will be extracted over them")
		return nil
	}

	if err := binutils.RemovePrevious(app); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Removed previous installation")
	return nil
}

// updatePath appends the PATH export to the user's shell profile. Shell
// detection failures and an unwritable profile set are fatal; a declined
// append is not.
func updatePath(app *application.Snowball) error {
	kind, err := shell.Detect()
	if err != nil {
		ux.Logger.PrintError("%s", err)
		return err
	}
	app.Log.Infow("detected shell", "shell", kind.String())

	usr, err := user.Current()
	if err != nil {
		return err
	}
	candidates, err := shell.CandidateProfiles(kind, usr.HomeDir)
	if err != nil {
		return err
	}
	profile, err := shell.FirstWritableProfile(candidates)
	if err != nil {
		ux.Logger.PrintError("%s", err)
		return err
	}

	binDir := app.GetBinDir()
	has, err := shell.ProfileHasExport(profile, binDir)
	if err != nil {
		return err
	}
	if has {
		ux.Logger.GreenCheckmarkToUser("PATH already configured in %s", profile)
		return nil
	}

	confirmed, err := app.Prompt.CaptureYesNo(fmt.Sprintf("Add %s to your PATH in %s?", binDir, profile))
	if err != nil {
		return err
	}
	if !confirmed {
		ux.Logger.PrintToUser("Skipping PATH update. Add this line to %s yourself:", profile)
		ux.Logger.PrintToUser("  %s", shell.ExportLine(binDir))
		return nil
	}

	if err := shell.AppendExport(profile, binDir); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Added %s to PATH in %s", binDir, profile)
	return nil
}

func printSummary(app *application.Snowball) {
	ux.Logger.PrintLineSeparator()
	ux.Logger.GreenCheckmarkToUser("Snowball is installed at %s", app.GetBaseDir())
	ux.Logger.PrintToUser("Open a new terminal session and run: %s --help", constants.ExecutableName)
	ux.Logger.PrintToUser("Documentation: %s", constants.DocsURL)
	ux.Logger.PrintLineSeparator()
}
