// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/snowball-lang/installer/cmd/installcmd"
	"github.com/snowball-lang/installer/cmd/uninstallcmd"
	"github.com/snowball-lang/installer/pkg/application"
	"github.com/snowball-lang/installer/pkg/config"
	"github.com/snowball-lang/installer/pkg/constants"
	"github.com/snowball-lang/installer/pkg/prompts"
	"github.com/snowball-lang/installer/pkg/ux"
)

var (
	app *application.Snowball

	logLevel       string
	Version        = "1.3.0"
	autoYes        bool
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "snowball-installer",
		Long: `Snowball installer - sets up the Snowball language toolchain.

Downloads the prebuilt Snowball release for this machine, lays it out under
~/.snowball (bin/ and lib/), and wires your shell so the compiler is on PATH
in future sessions.

COMMAND OVERVIEW:

  install     Download and install the toolchain (latest or --version)
  uninstall   Remove the installed toolchain

QUICK START:

  # Install the latest release, answering yes to every prompt
  snowball-installer install --yes

  # Install a specific release
  snowball-installer install --version v0.8.0

For detailed command help, use: snowball-installer <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level for the application")
	rootCmd.PersistentFlags().BoolVarP(&autoYes, "yes", "y", false, "answer yes to every confirmation prompt")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if a confirmation is required (also enabled when stdin is not a TTY or CI=1)")

	rootCmd.AddCommand(installcmd.NewCmd(app))
	rootCmd.AddCommand(uninstallcmd.NewCmd(app))

	return rootCmd
}

func createApp(*cobra.Command, []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging()
	if err != nil {
		return err
	}

	// If --non-interactive flag is set, propagate to env so IsInteractive() sees it
	if nonInteractive {
		_ = os.Setenv(prompts.EnvNonInteractive, "1")
	}

	prompter := prompts.NewPrompterForMode(autoYes, nonInteractive)
	app.Setup(baseDir, log, config.New(), prompter, application.NewDownloader())

	initConfig()
	return nil
}

// setupEnv resolves the target directory without creating it. Whether the
// directory pre-exists drives the previous-installation prompt, so creation
// is deferred to the install command.
func setupEnv() (string, error) {
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	return filepath.Join(usr.HomeDir, constants.BaseDirName), nil
}

// setupLogging writes the structured log to the system temp dir rather than
// the target directory: the installer may delete and recreate the target
// mid-run.
func setupLogging() (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{filepath.Join(os.TempDir(), constants.LogFileName)}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	log := logger.Sugar()

	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in the installer config file if present.
func initConfig() {
	viper.SetConfigFile(app.GetConfigPath())
	viper.SetConfigType("json")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		app.Log.Infow("using config file", "path", viper.ConfigFileUsed())
	}
}

// Execute runs the root command. Any error has already been reported to the
// user, so it only drives the exit code.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
