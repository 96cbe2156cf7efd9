// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package uninstallcmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/snowball-lang/installer/pkg/application"
	"github.com/snowball-lang/installer/pkg/config"
	"github.com/snowball-lang/installer/pkg/constants"
	"github.com/snowball-lang/installer/pkg/prompts"
	"github.com/snowball-lang/installer/pkg/ux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type declinePrompter struct {
	prompts.NonInteractivePrompter
}

func (*declinePrompter) CaptureNoYes(string) (bool, error) { return false, nil }

func newTestApp(t *testing.T, p prompts.Prompter) *application.Snowball {
	t.Helper()
	ux.NewUserLog(zap.NewNop().Sugar(), io.Discard)
	// shell detection inside the leftover-export report must not hit the
	// real environment
	t.Setenv(constants.ShellEnvVar, "unsupported-shell")
	app := application.New()
	app.Setup(filepath.Join(t.TempDir(), ".snowball"), zap.NewNop().Sugar(), config.New(), p, application.NewDownloader())
	return app
}

func TestUninstallRemovesTargetDir(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, prompts.NewAutoYesPrompter())

	require.NoError(os.MkdirAll(app.GetBinDir(), 0o755))
	require.NoError(runUninstall(app))

	_, err := os.Stat(app.GetBaseDir())
	require.True(os.IsNotExist(err))
}

func TestUninstallDeclined(t *testing.T) {
	require := require.New(t)
	app := newTestApp(t, &declinePrompter{})

	require.NoError(os.MkdirAll(app.GetBinDir(), 0o755))
	require.ErrorIs(runUninstall(app), constants.ErrUserAborted)

	_, err := os.Stat(app.GetBaseDir())
	require.NoError(err)
}

func TestUninstallNothingInstalled(t *testing.T) {
	app := newTestApp(t, prompts.NewNonInteractivePrompter())
	// no prompt and no error when there is nothing to remove
	require.NoError(t, runUninstall(app))
}
