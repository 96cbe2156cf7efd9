// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/snowball-lang/installer/pkg/application"
)

// ChownToInvokingUser hands ownership of path (recursively) back to the user
// behind sudo, so a sudo-driven install does not leave a root-owned
// ~/.snowball behind. Best-effort: failures are logged, never fatal.
func ChownToInvokingUser(app *application.Snowball, path string) {
	uidStr, uidSet := os.LookupEnv("SUDO_UID")
	gidStr, gidSet := os.LookupEnv("SUDO_GID")
	if !uidSet || !gidSet {
		return
	}

	uid, err := strconv.Atoi(uidStr)
	if err != nil {
		app.Log.Warnw("ignoring malformed SUDO_UID", "value", uidStr)
		return
	}
	gid, err := strconv.Atoi(gidStr)
	if err != nil {
		app.Log.Warnw("ignoring malformed SUDO_GID", "value", gidStr)
		return
	}

	err = filepath.Walk(path, func(name string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		return os.Chown(name, uid, gid)
	})
	if err != nil {
		app.Log.Warnw("could not restore ownership", "path", path, "error", err)
	}
}
