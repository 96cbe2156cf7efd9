// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	// ErrUnsupportedOS is returned when the host OS is neither linux nor darwin.
	ErrUnsupportedOS = errors.New("unsupported operating system")

	// ErrUnknownShell is returned when the user's shell cannot be mapped to a
	// known profile layout.
	ErrUnknownShell = errors.New("unknown shell")

	// ErrNoWritableProfile is returned when none of the candidate shell
	// profile files can be written.
	ErrNoWritableProfile = errors.New("no writable shell profile found")

	// ErrUserAborted is returned when the user declines a required confirmation.
	ErrUserAborted = errors.New("aborted by user")
)
