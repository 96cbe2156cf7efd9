// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".snowball"

	// The install log lives in the system temp dir: the installer may
	// delete and recreate the target directory mid-run.
	LogFileName = "snowball-installer.log"

	BinDirName = "bin"
	LibDirName = "lib"

	ExecutableName = "snowball"
	ToolchainName  = "snowball"

	// Shared library names shipped inside the release archive.
	SharedLibLinux  = "libSnowballRuntime.so"
	SharedLibDarwin = "libSnowballRuntime.dylib"

	GithubOrg      = "snowball-lang"
	GithubRepoName = "snowball"

	// Release URL templates. Latest resolves through the github
	// "latest/download" redirect, versioned releases are addressed by tag.
	LatestReleaseURLFmt    = "https://github.com/%s/%s/releases/latest/download/%s"
	VersionedReleaseURLFmt = "https://github.com/%s/%s/releases/download/%s/%s"

	DocsURL = "https://snowball-lang.github.io/docs"

	// Environment overrides
	LibFolderEnvVar = "SNOWBALL_LIB_FOLDER"
	ShellEnvVar     = "SNOWBALL_SHELL"

	ConfigFileName = "installer.json"
	LastVersionKey = "last-installed-version"

	DownloadTimeout = 10 * time.Minute
)
