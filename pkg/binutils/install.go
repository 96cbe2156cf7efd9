// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package binutils lays a downloaded toolchain release out on disk.
package binutils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/snowball-lang/installer/pkg/application"
	"github.com/snowball-lang/installer/pkg/constants"
	"github.com/snowball-lang/installer/pkg/platform"
)

// InstallRelease downloads the release archive for the platform and extracts
// it into the base dir, then moves the executable and the runtime shared
// library into bin/ and lib/. version empty means latest.
func InstallRelease(app *application.Snowball, desc platform.Descriptor, version string) error {
	url := desc.ReleaseURL(version)
	app.Log.Infow("downloading release archive", "url", url)

	archive, err := app.Downloader.Download(url)
	if err != nil {
		return err
	}
	defer archive.Close()

	if err := ExtractTarGz(archive, app.GetBaseDir()); err != nil {
		return fmt.Errorf("failed extracting release archive: %w", err)
	}

	return placeArtifacts(app, desc)
}

// placeArtifacts creates bin/ and lib/ and moves the extracted executable
// and shared library into them. Members already extracted into their final
// location are left as is.
func placeArtifacts(app *application.Snowball, desc platform.Descriptor) error {
	binDir := app.GetBinDir()
	libDir := app.GetLibDir()

	for _, dir := range []string{binDir, libDir} {
		if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
			return fmt.Errorf("failed creating %s: %w", dir, err)
		}
	}

	if err := moveIntoDir(app.GetBaseDir(), constants.ExecutableName, binDir); err != nil {
		return err
	}
	return moveIntoDir(app.GetBaseDir(), desc.SharedLibName(), libDir)
}

func moveIntoDir(srcDir, name, dstDir string) error {
	src := filepath.Join(srcDir, name)
	dst := filepath.Join(dstDir, name)

	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			// archive already laid the member out under bin/ or lib/
			if _, err := os.Stat(dst); err == nil {
				return nil
			}
			return fmt.Errorf("release archive is missing %s", name)
		}
		return err
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed moving %s to %s: %w", name, dstDir, err)
	}
	return nil
}

// CreateTargetDir creates the base dir and best-effort restores ownership to
// the invoking user when running under sudo.
func CreateTargetDir(app *application.Snowball) error {
	if err := os.MkdirAll(app.GetBaseDir(), constants.DefaultPerms755); err != nil {
		return fmt.Errorf("failed creating %s: %w", app.GetBaseDir(), err)
	}
	ChownToInvokingUser(app, app.GetBaseDir())
	return nil
}

// RemovePrevious recursively deletes an existing installation.
func RemovePrevious(app *application.Snowball) error {
	if err := os.RemoveAll(app.GetBaseDir()); err != nil {
		return fmt.Errorf("failed removing previous installation at %s: %w", app.GetBaseDir(), err)
	}
	return nil
}
