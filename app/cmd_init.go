package app

import (
	"context"
	"fmt"
	"github.com/lefinal/acegen/codemods"
	"github.com/lefinal/acegen/defaults"
	"github.com/lefinal/meh"
	"go.uber.org/zap"
)

// commandInit creates the project configuration file with default settings.
func commandInit(ctx context.Context, options commandOptions, force bool) error {
	logger := options.Logger
	configFilename := options.Locator.ConfigFilename()
	overwrite := force
	// Request confirmation from the user if the configuration already exists.
	if options.Locator.HasConfig() && !force {
		logger.Debug("found existing config file", zap.String("filename", configFilename))
		confirmed, err := options.Input.RequestConfirm(ctx, "Config file already exists. Overwrite", false)
		if err != nil {
			return meh.Wrap(err, "request overwrite confirmation", nil)
		}
		if !confirmed {
			return meh.NewBadInputErr("canceled because of config file already existing",
				meh.Details{"config_filename": configFilename})
		}
		logger.Debug("overwrite confirmed")
		overwrite = true
	}
	// Init.
	created, err := options.Locator.InitProject(logger, defaults.ConfigFile, overwrite)
	if err != nil {
		return meh.Wrap(err, "init project", meh.Details{"config_filename": configFilename})
	}
	outcome := codemods.Outcome{Status: codemods.StatusCreated, Filename: options.Locator.Rel(configFilename)}
	if !created {
		outcome.Status = codemods.StatusSkipped
	}
	_, _ = fmt.Fprintln(options.Out, outcome)
	logger.Info("acegen project initialized", zap.String("context_dir", options.Locator.ContextDir()))
	return nil
}
