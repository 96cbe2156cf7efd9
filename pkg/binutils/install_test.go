// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/snowball-lang/installer/pkg/application"
	"github.com/snowball-lang/installer/pkg/config"
	"github.com/snowball-lang/installer/pkg/platform"
	"github.com/snowball-lang/installer/pkg/prompts"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDownloader struct {
	payload []byte
	gotURL  string
}

func (d *stubDownloader) Download(url string) (io.ReadCloser, error) {
	d.gotURL = url
	return io.NopCloser(bytes.NewReader(d.payload)), nil
}

func buildArchive(t *testing.T, members map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, content := range members {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0o755,
			Size:     int64(len(content)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func newTestApp(t *testing.T, dl application.Downloader) *application.Snowball {
	t.Helper()
	app := application.New()
	app.Setup(filepath.Join(t.TempDir(), ".snowball"), zap.NewNop().Sugar(), config.New(), prompts.NewAutoYesPrompter(), dl)
	return app
}

func TestExtractTarGz(t *testing.T) {
	require := require.New(t)
	dst := t.TempDir()

	archive := buildArchive(t, map[string][]byte{
		"snowball":              []byte("#!exe"),
		"libSnowballRuntime.so": []byte("elf"),
		"docs/README.md":        []byte("docs"),
	})
	require.NoError(ExtractTarGz(bytes.NewReader(archive), dst))

	for _, name := range []string{"snowball", "libSnowballRuntime.so", "docs/README.md"} {
		_, err := os.Stat(filepath.Join(dst, name))
		require.NoError(err, name)
	}
}

func TestExtractTarGzAcceptsDotDirMember(t *testing.T) {
	require := require.New(t)
	dst := t.TempDir()

	// archives built with tar -C <dir> . lead with a "./" directory member
	// and prefix every path with "./"
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(tw.WriteHeader(&tar.Header{
		Name:     "./",
		Mode:     0o755,
		Typeflag: tar.TypeDir,
	}))
	content := []byte("#!exe")
	require.NoError(tw.WriteHeader(&tar.Header{
		Name:     "./snowball",
		Mode:     0o755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(err)
	require.NoError(tw.Close())
	require.NoError(gw.Close())

	require.NoError(ExtractTarGz(bytes.NewReader(buf.Bytes()), dst))

	got, err := os.ReadFile(filepath.Join(dst, "snowball"))
	require.NoError(err)
	require.Equal(content, got)
}

func TestExtractTarGzRejectsTraversal(t *testing.T) {
	dst := t.TempDir()
	archive := buildArchive(t, map[string][]byte{
		"../evil": []byte("nope"),
	})
	err := ExtractTarGz(bytes.NewReader(archive), dst)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid archive path")
}

func TestExtractTarGzRejectsGarbage(t *testing.T) {
	err := ExtractTarGz(bytes.NewReader([]byte("not a gzip stream")), t.TempDir())
	require.Error(t, err)
}

func TestInstallReleaseLaysOutBinAndLib(t *testing.T) {
	require := require.New(t)
	desc := platform.Descriptor{OS: platform.Linux, Arch: "amd64"}
	dl := &stubDownloader{payload: buildArchive(t, map[string][]byte{
		"snowball":              []byte("#!exe"),
		"libSnowballRuntime.so": []byte("elf"),
	})}
	app := newTestApp(t, dl)

	require.NoError(CreateTargetDir(app))
	require.NoError(InstallRelease(app, desc, ""))

	require.Equal(
		"https://github.com/snowball-lang/snowball/releases/latest/download/snowball-linux-amd64.tar.gz",
		dl.gotURL,
	)

	_, err := os.Stat(filepath.Join(app.GetBinDir(), "snowball"))
	require.NoError(err)
	_, err = os.Stat(filepath.Join(app.GetLibDir(), "libSnowballRuntime.so"))
	require.NoError(err)

	// moved, not copied
	_, err = os.Stat(filepath.Join(app.GetBaseDir(), "snowball"))
	require.True(os.IsNotExist(err))
}

func TestInstallReleaseVersioned(t *testing.T) {
	require := require.New(t)
	desc := platform.Descriptor{OS: platform.Darwin, Arch: "arm64"}
	dl := &stubDownloader{payload: buildArchive(t, map[string][]byte{
		"snowball":                 []byte("#!exe"),
		"libSnowballRuntime.dylib": []byte("macho"),
	})}
	app := newTestApp(t, dl)

	require.NoError(CreateTargetDir(app))
	require.NoError(InstallRelease(app, desc, "v0.8.0"))
	require.Equal(
		"https://github.com/snowball-lang/snowball/releases/download/v0.8.0/snowball-darwin-arm64.tar.gz",
		dl.gotURL,
	)
}

func TestInstallReleaseMissingArtifact(t *testing.T) {
	require := require.New(t)
	desc := platform.Descriptor{OS: platform.Linux, Arch: "amd64"}
	dl := &stubDownloader{payload: buildArchive(t, map[string][]byte{
		"snowball": []byte("#!exe"),
	})}
	app := newTestApp(t, dl)

	require.NoError(CreateTargetDir(app))
	err := InstallRelease(app, desc, "")
	require.Error(err)
	require.Contains(err.Error(), "libSnowballRuntime.so")
}

func TestInstallReleaseMergeKeepsUnrelatedFiles(t *testing.T) {
	require := require.New(t)
	desc := platform.Descriptor{OS: platform.Linux, Arch: "amd64"}
	dl := &stubDownloader{payload: buildArchive(t, map[string][]byte{
		"snowball":              []byte("#!exe"),
		"libSnowballRuntime.so": []byte("elf"),
	})}
	app := newTestApp(t, dl)

	// simulate a previous installation the user declined to remove
	require.NoError(CreateTargetDir(app))
	sentinel := filepath.Join(app.GetBaseDir(), "user-notes.txt")
	require.NoError(os.WriteFile(sentinel, []byte("keep me"), 0o644))

	require.NoError(InstallRelease(app, desc, ""))

	content, err := os.ReadFile(sentinel)
	require.NoError(err)
	require.Equal("keep me", string(content))
}

func TestRemovePrevious(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, &stubDownloader{})

	require.NoError(CreateTargetDir(app))
	sentinel := filepath.Join(app.GetBaseDir(), "old-install")
	require.NoError(os.WriteFile(sentinel, []byte("stale"), 0o644))

	require.NoError(RemovePrevious(app))
	_, err := os.Stat(app.GetBaseDir())
	require.True(os.IsNotExist(err))
}
