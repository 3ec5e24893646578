// Package app provides CLI functionality for acegen.
package app

import (
	"context"
	"fmt"
	"github.com/lefinal/acegen/input"
	"github.com/lefinal/acegen/locator"
	"github.com/lefinal/acegen/logging"
	"github.com/lefinal/acegen/projectfile"
	"github.com/lefinal/meh"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

type commandOptions struct {
	Logger   *zap.Logger
	Input    input.Input
	Out      io.Writer
	Locator  *locator.Locator
	Settings projectfile.Settings
}

type buildSettings struct {
	revision string
	time     time.Time
}

func parseBuildSettings() buildSettings {
	settings := buildSettings{}
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			settings.revision = setting.Value
		case "vcs.time":
			settings.time, _ = time.Parse(time.RFC3339, setting.Value)
		}
	}
	return settings
}

type cliOptions struct {
	verbose        bool
	contextDir     string
	configFilename string
}

// IO is used for interacting with the user in RunCLI.
type IO struct {
	// Input for requesting missing information. If not set, input.Stdin is used.
	Input input.Input
	// Out receives command output. If not set, os.Stdout is used.
	Out io.Writer
}

// RunCLI the app as CLI. If the given logger is not nil, it will be used instead
// of creating a new one with provided flags.
func RunCLI(ctx context.Context, logger *zap.Logger, appIO IO, args []string) error {
	buildSettings := parseBuildSettings()

	var cliOpts cliOptions
	var commandOpts commandOptions
	commandOpts.Logger = zap.NewNop()
	commandOpts.Out = appIO.Out
	if commandOpts.Out == nil {
		commandOpts.Out = os.Stdout
	}
	commandOpts.Input = appIO.Input
	if commandOpts.Input == nil {
		commandOpts.Input = &input.Stdin{Out: commandOpts.Out}
	}

	cliApp := &cli.App{
		Name:      "acegen",
		Usage:     "Scaffolding for web application projects",
		Version:   "", // Don't set due to -v flag.
		Writer:    commandOpts.Out,
		ErrWriter: os.Stderr,
		ExtraInfo: func() map[string]string {
			return map[string]string{
				"version":      buildSettings.revision,
				"version from": buildSettings.time.Format(time.DateTime),
			}
		},
		Compiled: buildSettings.time,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Enables debug log output.",
				EnvVars:     []string{"ACEGEN_VERBOSE"},
				Required:    false,
				Destination: &cliOpts.verbose,
			},
			&cli.StringFlag{
				Name:        "dir",
				Usage:       "Use `DIR` as project directory. If not set, the working directory and its parents will be searched for a project instead.",
				Required:    false,
				Destination: &cliOpts.contextDir,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "The `FILENAME` of the project configuration. If a non-absolute path is provided, the project directory will be used as base.",
				Value:       locator.DefaultConfigFilename,
				EnvVars:     []string{"ACEGEN_CONFIG"},
				Required:    false,
				Destination: &cliOpts.configFilename,
			},
		},

		Commands: []*cli.Command{
			makeActionCommand(&commandOpts),
			{
				Name:  "init",
				Usage: "Creates the project configuration file in the project directory.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing configuration file without asking.",
					},
				},
				Action: func(c *cli.Context) error {
					return meh.NilOrWrap(commandInit(c.Context, commandOpts, c.Bool("force")), "command init", nil)
				},
			},
			{
				Name:  "stubs:eject",
				Usage: "Copies the default stubs into the project stubs directory for customization.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite stubs that were already ejected.",
					},
				},
				Action: func(c *cli.Context) error {
					return meh.NilOrWrap(commandEjectStubs(c.Context, commandOpts, c.Bool("force")), "command stubs:eject", nil)
				},
			},
			{
				Name:  "version",
				Usage: "Prints the current acegen version.",
				Action: func(c *cli.Context) error {
					_, _ = fmt.Fprintln(commandOpts.Out, buildSettings.revision)
					return nil
				},
			},
		},

		EnableBashCompletion: true,

		Before: func(c *cli.Context) error {
			var err error
			// Set up logging.
			if logger != nil {
				commandOpts.Logger = logger
			} else {
				logLevel := zap.InfoLevel
				if cliOpts.verbose {
					logLevel = zap.DebugLevel
				}
				newLogger, err := logging.NewLogger(logLevel)
				if err != nil {
					return meh.Wrap(err, "new logger", meh.Details{"log_level": logLevel})
				}
				logging.SetLogger(newLogger)
				commandOpts.Logger = newLogger
				newLogger.Debug("applied log level", zap.String("log_level", logLevel.String()))
			}
			// Set up locator.
			searchContextDirInParents := !c.Args().Present() || (c.Args().First() != "init" && c.Args().First() != "version")
			commandOpts.Locator, err = newLocator(commandOpts.Logger, cliOpts.contextDir, cliOpts.configFilename, searchContextDirInParents)
			if err != nil {
				return meh.Wrap(err, "new locator", nil)
			}
			// Load settings.
			commandOpts.Settings, err = loadSettings(commandOpts.Logger, commandOpts.Locator)
			if err != nil {
				return meh.Wrap(err, "load settings", nil)
			}
			return nil
		},

		Action: func(c *cli.Context) error {
			if c.Args().Present() {
				// Unknown command.
				_, _ = fmt.Fprintf(c.App.Writer, "unsupported command: %s\n\n", c.Args().First())
				_ = cli.ShowAppHelp(c)
				return meh.NewBadInputErr(fmt.Sprintf("unsupported command: %s", c.Args().First()), nil)
			}
			// No command provided. Offer selection and run manually.
			commandNames := make([]string, 0)
			for _, command := range c.App.Commands {
				if command.Hidden {
					continue
				}
				commandNames = append(commandNames, command.Name)
			}
			_, selectedCommandName, err := commandOpts.Input.RequestSelection(c.Context, "No command provided. Select one", commandNames)
			if err != nil {
				return meh.Wrap(err, "request selection due to missing command", nil)
			}
			selectedCommand := c.App.Command(selectedCommandName)
			if selectedCommand == nil {
				return meh.NewInternalErr("selected command not found", meh.Details{"command": selectedCommandName})
			}
			// Run the command.
			return selectedCommand.Run(c, selectedCommand.Name)
		},
		Suggest: true,
	}

	start := time.Now()
	defer func() {
		commandOpts.Logger.Debug("shutdown", zap.Duration("total_command_execution_time", time.Since(start)))
	}()

	return cliApp.RunContext(ctx, args)
}

func newLocator(logger *zap.Logger, contextDir string, configFilename string, searchInParents bool) (*locator.Locator, error) {
	// If the context directory is not set, try to find it in the current directory
	// or any parent.
	if contextDir == "" {
		logger.Debug("no context dir provided")
		currentWorkingDirectory, err := os.Getwd()
		if err != nil {
			return nil, meh.NewInternalErrFromErr(err, "get current working directory", nil)
		}
		contextDir = currentWorkingDirectory
		if searchInParents && !filepath.IsAbs(configFilename) {
			logger.Debug("try to locate context dir in working directory or parents", zap.String("workdir", currentWorkingDirectory))
			foundContextDir, err := locator.FindContextDir(currentWorkingDirectory, configFilename)
			switch {
			case err == nil:
				logger.Debug("found context dir", zap.String("context_dir", foundContextDir))
				contextDir = foundContextDir
			case meh.ErrorCode(err) == meh.ErrNotFound:
				logger.Debug("no project found, using working directory", zap.String("workdir", currentWorkingDirectory))
			default:
				return nil, meh.Wrap(err, "find context dir", meh.Details{"start_dir": currentWorkingDirectory})
			}
		}
	}
	logger.Debug("set up locator", zap.String("context_dir", contextDir), zap.String("config_filename", configFilename))
	appLocator, err := locator.New(contextDir, configFilename)
	if err != nil {
		return nil, meh.Wrap(err, "new locator", meh.Details{
			"context_dir":     contextDir,
			"config_filename": configFilename,
		})
	}
	return appLocator, nil
}

// loadSettings reads the project configuration if it exists. Otherwise, the
// default settings are used.
func loadSettings(logger *zap.Logger, appLocator *locator.Locator) (projectfile.Settings, error) {
	if !appLocator.HasConfig() {
		logger.Debug("no config file found, using defaults", zap.String("config_filename", appLocator.ConfigFilename()))
		return projectfile.DefaultSettings(), nil
	}
	project, err := projectfile.FromFile(appLocator.ConfigFilename())
	if err != nil {
		return projectfile.Settings{}, meh.Wrap(err, "project from file", meh.Details{"config_filename": appLocator.ConfigFilename()})
	}
	settings := project.Settings()
	logger.Debug("loaded settings",
		zap.String("actions_dir", settings.ActionsDir),
		zap.String("stubs_dir", settings.StubsDir),
		zap.String("file_extension", settings.FileExtension))
	return settings, nil
}
