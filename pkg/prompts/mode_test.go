// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fakeTTY(t *testing.T, isTTY bool) {
	t.Helper()
	orig := stdinIsTTY
	stdinIsTTY = func() bool { return isTTY }
	t.Cleanup(func() { stdinIsTTY = orig })
}

func TestIsInteractive_EnvVar(t *testing.T) {
	fakeTTY(t, true)
	t.Setenv(EnvCI, "")

	tests := []struct {
		envValue string
		expected bool
	}{
		{"1", false},
		{"true", false},
		{"yes", false},
		{"on", false},
		{"0", true},
		{"false", true},
		{"no", true},
		{"", true},
	}

	for _, tc := range tests {
		t.Run(EnvNonInteractive+"="+tc.envValue, func(t *testing.T) {
			t.Setenv(EnvNonInteractive, tc.envValue)
			require.Equal(t, tc.expected, IsInteractive())
		})
	}
}

func TestIsInteractive_CI(t *testing.T) {
	fakeTTY(t, true)
	t.Setenv(EnvNonInteractive, "")
	t.Setenv(EnvCI, "true")

	require.False(t, IsInteractive())
}

func TestIsInteractive_PipedStdin(t *testing.T) {
	fakeTTY(t, false)
	t.Setenv(EnvNonInteractive, "")
	t.Setenv(EnvCI, "")

	require.False(t, IsInteractive())
}

func TestNewPrompterForMode(t *testing.T) {
	require := require.New(t)
	fakeTTY(t, true)
	t.Setenv(EnvNonInteractive, "")
	t.Setenv(EnvCI, "")

	p := NewPrompterForMode(true, false)
	_, ok := p.(*AutoYesPrompter)
	require.True(ok)

	p = NewPrompterForMode(false, true)
	_, ok = p.(*NonInteractivePrompter)
	require.True(ok)

	p = NewPrompterForMode(false, false)
	_, ok = p.(*realPrompter)
	require.True(ok)

	// --yes wins even when the environment is non-interactive
	fakeTTY(t, false)
	p = NewPrompterForMode(true, true)
	_, ok = p.(*AutoYesPrompter)
	require.True(ok)
}

func TestAutoYesPrompter(t *testing.T) {
	require := require.New(t)
	p := NewAutoYesPrompter()

	yes, err := p.CaptureYesNo("remove previous installation?")
	require.NoError(err)
	require.True(yes)

	yes, err = p.CaptureNoYes("add snowball to your PATH?")
	require.NoError(err)
	require.True(yes)

	choice, err := p.CaptureList("profile", []string{"~/.zshrc", "~/.zshenv"})
	require.NoError(err)
	require.Equal("~/.zshrc", choice)

	_, err = p.CaptureString("custom install dir")
	require.ErrorIs(err, ErrNonInteractive)
}

func TestNonInteractivePrompterFailsFast(t *testing.T) {
	require := require.New(t)
	p := NewNonInteractivePrompter()

	_, err := p.CaptureYesNo("remove previous installation?")
	require.ErrorIs(err, ErrNonInteractive)

	_, err = p.CaptureVersion("toolchain version")
	require.ErrorIs(err, ErrNonInteractive)
}

func TestValidateVersion(t *testing.T) {
	require.NoError(t, ValidateVersion("v1.2.3"))
	require.Error(t, ValidateVersion("1.2.3"))
	require.Error(t, ValidateVersion("latest"))
	require.Error(t, ValidateVersion(""))
}
