// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package platform

import (
	"fmt"
	"runtime"

	"github.com/snowball-lang/installer/pkg/constants"
)

const (
	Linux  = "linux"
	Darwin = "darwin"
)

// Descriptor holds the detected host platform. It is derived once and
// read-only afterward.
type Descriptor struct {
	OS   string
	Arch string
}

// ArchProber provides system architecture information.
type ArchProber interface {
	GetArch() (string, string)
}

type archProberImpl struct{}

// NewArchProber creates the runtime-backed prober.
func NewArchProber() ArchProber {
	return &archProberImpl{}
}

func (archProberImpl) GetArch() (string, string) {
	return runtime.GOARCH, runtime.GOOS
}

// Detect probes the host and fails if the OS is not supported. No network
// access happens before this check passes.
func Detect(prober ArchProber) (Descriptor, error) {
	goarch, goos := prober.GetArch()
	switch goos {
	case Linux, Darwin:
	default:
		return Descriptor{}, fmt.Errorf("%w: %s", constants.ErrUnsupportedOS, goos)
	}
	return Descriptor{OS: goos, Arch: goarch}, nil
}

// ArchiveName builds the release archive filename for the platform.
func (d Descriptor) ArchiveName() string {
	return fmt.Sprintf("%s-%s-%s.tar.gz", constants.ToolchainName, d.OS, d.Arch)
}

// SharedLibName returns the runtime shared library filename shipped for the
// platform.
func (d Descriptor) SharedLibName() string {
	if d.OS == Darwin {
		return constants.SharedLibDarwin
	}
	return constants.SharedLibLinux
}

// ReleaseURL builds the download URL for the given release tag. An empty
// version resolves through the latest-release redirect.
func (d Descriptor) ReleaseURL(version string) string {
	if version == "" {
		return fmt.Sprintf(
			constants.LatestReleaseURLFmt,
			constants.GithubOrg,
			constants.GithubRepoName,
			d.ArchiveName(),
		)
	}
	return fmt.Sprintf(
		constants.VersionedReleaseURLFmt,
		constants.GithubOrg,
		constants.GithubRepoName,
		version,
		d.ArchiveName(),
	)
}
