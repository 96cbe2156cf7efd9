// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package shell detects the user's login shell and rewires its startup
// profile so the installed toolchain is on PATH in future sessions.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/process"
	"github.com/snowball-lang/installer/pkg/constants"
)

// Kind is the family of shell the user runs. Only shells with a known
// profile layout are supported.
type Kind int

const (
	Unknown Kind = iota
	Bash
	Zsh
)

func (k Kind) String() string {
	switch k {
	case Bash:
		return "bash"
	case Zsh:
		return "zsh"
	default:
		return "unknown"
	}
}

// parentProcessName is a variable for testing purposes to allow mocking the
// gopsutil lookup.
var parentProcessName = func() (string, error) {
	proc, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return "", err
	}
	return proc.Name()
}

// Detect resolves the user's shell. Resolution order:
//  1. SNOWBALL_SHELL environment override
//  2. $SHELL
//  3. parent process name
func Detect() (Kind, error) {
	if override := os.Getenv(constants.ShellEnvVar); override != "" {
		return kindFromName(override)
	}

	if sh := os.Getenv("SHELL"); sh != "" {
		return kindFromName(sh)
	}

	name, err := parentProcessName()
	if err != nil {
		return Unknown, fmt.Errorf("%w: unable to inspect parent process: %s", constants.ErrUnknownShell, err)
	}
	return kindFromName(name)
}

// kindFromName maps a shell path or binary name to its Kind. Suffix matching
// covers variants like /bin/zsh, zsh-5.9 wrappers named "-zsh" (login
// shells), and plain "bash".
func kindFromName(name string) (Kind, error) {
	base := strings.ToLower(filepath.Base(name))
	base = strings.TrimPrefix(base, "-") // login shells report as "-zsh"
	switch {
	case strings.HasSuffix(base, "zsh"):
		return Zsh, nil
	case strings.HasSuffix(base, "bash"):
		return Bash, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", constants.ErrUnknownShell, name)
	}
}
