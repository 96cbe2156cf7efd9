// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

// AutoYesPrompter implements Prompter answering every confirmation
// affirmatively without touching the terminal. It backs the --yes flag.
// Free-form inputs cannot be auto-answered and fail fast the same way the
// non-interactive prompter does.
type AutoYesPrompter struct {
	inner NonInteractivePrompter
}

// NewAutoYesPrompter creates a prompter that confirms everything.
func NewAutoYesPrompter() *AutoYesPrompter {
	return &AutoYesPrompter{
		inner: NonInteractivePrompter{
			FailMessage: "this prompt requires a value and cannot be auto-confirmed with --yes",
		},
	}
}

func (*AutoYesPrompter) CaptureYesNo(string) (bool, error) {
	return true, nil
}

func (*AutoYesPrompter) CaptureNoYes(string) (bool, error) {
	return true, nil
}

// CaptureList picks the first option, which callers order by preference.
func (*AutoYesPrompter) CaptureList(_ string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNonInteractive
	}
	return options[0], nil
}

func (p *AutoYesPrompter) CaptureString(promptStr string) (string, error) {
	return p.inner.CaptureString(promptStr)
}

func (p *AutoYesPrompter) CaptureVersion(promptStr string) (string, error) {
	return p.inner.CaptureVersion(promptStr)
}
