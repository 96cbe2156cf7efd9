// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/snowball-lang/installer/pkg/config"
	"github.com/snowball-lang/installer/pkg/constants"
	"github.com/snowball-lang/installer/pkg/prompts"
)

type Snowball struct {
	Log        *zap.SugaredLogger
	baseDir    string
	Conf       *config.Config
	Prompt     prompts.Prompter
	Downloader Downloader
}

func New() *Snowball {
	return &Snowball{}
}

func (app *Snowball) Setup(baseDir string, log *zap.SugaredLogger, conf *config.Config, prompt prompts.Prompter, downloader Downloader) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	app.Downloader = downloader
}

func (app *Snowball) GetBaseDir() string {
	return app.baseDir
}

func (app *Snowball) GetBinDir() string {
	return filepath.Join(app.baseDir, constants.BinDirName)
}

// GetLibDir honors the SNOWBALL_LIB_FOLDER override; relative overrides are
// taken as folder names under the base dir.
func (app *Snowball) GetLibDir() string {
	if override := os.Getenv(constants.LibFolderEnvVar); override != "" {
		if filepath.IsAbs(override) {
			return override
		}
		return filepath.Join(app.baseDir, override)
	}
	return filepath.Join(app.baseDir, constants.LibDirName)
}

func (app *Snowball) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.ConfigFileName)
}

func (app *Snowball) GetExecutablePath() string {
	return filepath.Join(app.GetBinDir(), constants.ExecutableName)
}

// BaseDirExists reports whether a previous installation is present.
func (app *Snowball) BaseDirExists() bool {
	_, err := os.Stat(app.baseDir)
	return err == nil
}
