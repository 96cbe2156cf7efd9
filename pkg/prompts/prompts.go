// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"golang.org/x/mod/semver"
)

const (
	Yes = "Yes"
	No  = "No"
)

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// promptUISelectRunner is a variable for testing purposes to allow mocking select.Run()
var promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

// Prompter is the confirmation and input capability handed to the installer
// logic. Interactive runs use the promptui-backed implementation, --yes runs
// use AutoYesPrompter, and scripted runs use NonInteractivePrompter.
type Prompter interface {
	CaptureYesNo(promptStr string) (bool, error)
	CaptureNoYes(promptStr string) (bool, error)
	CaptureList(promptStr string, options []string) (string, error)
	CaptureString(promptStr string) (string, error)
	CaptureVersion(promptStr string) (string, error)
}

type realPrompter struct{}

// NewPrompter creates the standard interactive prompter.
func NewPrompter() Prompter {
	return &realPrompter{}
}

func yesNoBase(promptStr string, orderedOptions []string) (bool, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: orderedOptions,
	}

	_, decision, err := promptUISelectRunner(prompt)
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}

func (*realPrompter) CaptureYesNo(promptStr string) (bool, error) {
	return yesNoBase(promptStr, []string{Yes, No})
}

func (*realPrompter) CaptureNoYes(promptStr string) (bool, error) {
	return yesNoBase(promptStr, []string{No, Yes})
}

func (*realPrompter) CaptureList(promptStr string, options []string) (string, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: options,
	}
	_, listDecision, err := promptUISelectRunner(prompt)
	if err != nil {
		return "", err
	}
	return listDecision, nil
}

func (*realPrompter) CaptureString(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label: promptStr,
		Validate: func(input string) error {
			if input == "" {
				return fmt.Errorf("string cannot be empty")
			}
			return nil
		},
	}

	return promptUIRunner(prompt)
}

func (*realPrompter) CaptureVersion(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: ValidateVersion,
	}

	return promptUIRunner(prompt)
}

// ValidateVersion checks that the given string is a valid semantic version
// tag of the form vMAJOR.MINOR.PATCH.
func ValidateVersion(version string) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("version must be a legal semantic version (ex: v1.1.1)")
	}
	return nil
}

// stdinIsTerminalHint is printed when a prompt is attempted with stdin piped.
func stdinIsTerminalHint() string {
	if fi, err := os.Stdin.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		return " (stdin is not a terminal; pass --yes or --non-interactive)"
	}
	return ""
}
