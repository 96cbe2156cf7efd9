// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/snowball-lang/installer/pkg/constants"
)

// Downloader fetches a release archive and hands back a stream suitable for
// direct extraction. Callers own closing the returned reader.
type Downloader interface {
	Download(url string) (io.ReadCloser, error)
}

type downloader struct {
	client *http.Client
}

func NewDownloader() Downloader {
	return &downloader{
		client: &http.Client{
			Timeout: constants.DownloadTimeout,
		},
	}
}

func (d *downloader) Download(url string) (io.ReadCloser, error) {
	resp, err := d.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed downloading %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("failed downloading %s: unexpected http status code: %d", url, resp.StatusCode)
	}
	return newProgressReader(resp.Body, resp.ContentLength), nil
}

// stdoutIsTTY is a variable for testing purposes to allow mocking the
// terminal check.
var stdoutIsTTY = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// progressOutput returns the stream the download bar renders to. The bar
// only draws on a TTY; piped runs get a discarded writer.
func progressOutput() io.Writer {
	if stdoutIsTTY() {
		return os.Stderr
	}
	return io.Discard
}

// progressReader tees the download through a progress bar.
type progressReader struct {
	inner io.ReadCloser
	bar   *progressbar.ProgressBar
}

func newProgressReader(inner io.ReadCloser, size int64) io.ReadCloser {
	bar := progressbar.NewOptions64(
		size,
		progressbar.OptionSetDescription("Downloading"),
		progressbar.OptionSetWriter(progressOutput()),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
	return &progressReader{inner: inner, bar: bar}
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if n > 0 {
		_ = r.bar.Add(n)
	}
	return n, err
}

func (r *progressReader) Close() error {
	_ = r.bar.Finish()
	return r.inner.Close()
}
