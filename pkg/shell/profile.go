// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/snowball-lang/installer/pkg/constants"
)

// CandidateProfiles returns the shell startup files that may receive the
// PATH export, ordered by preference. Paths are relative to homeDir.
func CandidateProfiles(kind Kind, homeDir string) ([]string, error) {
	switch kind {
	case Zsh:
		return []string{
			filepath.Join(homeDir, ".zshrc"),
			filepath.Join(homeDir, ".zshenv"),
		}, nil
	case Bash:
		return []string{
			filepath.Join(homeDir, ".bashrc"),
			filepath.Join(homeDir, ".bash_profile"),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownShell, kind)
	}
}

// FirstWritableProfile picks the first profile that exists and can be
// appended to. Every candidate failing is fatal for the PATH update.
func FirstWritableProfile(candidates []string) (string, error) {
	for _, path := range candidates {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
		if err != nil {
			continue
		}
		_ = f.Close()
		return path, nil
	}
	return "", fmt.Errorf("%w: tried %s", constants.ErrNoWritableProfile, strings.Join(candidates, ", "))
}

// ExportLine is the line appended to the profile to put binDir on PATH.
func ExportLine(binDir string) string {
	return fmt.Sprintf("export PATH=\"%s:$PATH\"", binDir)
}

// ProfileHasExport reports whether the profile already contains the export
// line. Detection is a plain substring search so manual edits still count.
func ProfileHasExport(profilePath, binDir string) (bool, error) {
	content, err := os.ReadFile(profilePath)
	if err != nil {
		return false, fmt.Errorf("failed reading %s: %w", profilePath, err)
	}
	return strings.Contains(string(content), ExportLine(binDir)), nil
}

// AppendExport appends a blank line plus the export line to the profile and
// applies the same PATH extension to the current process environment.
func AppendExport(profilePath, binDir string) error {
	f, err := os.OpenFile(profilePath, os.O_WRONLY|os.O_APPEND, constants.WriteReadReadPerms)
	if err != nil {
		return fmt.Errorf("failed opening %s: %w", profilePath, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s\n", ExportLine(binDir)); err != nil {
		return fmt.Errorf("failed writing %s: %w", profilePath, err)
	}

	// make the toolchain reachable for the rest of this process too
	return os.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
