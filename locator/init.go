package locator

import (
	"github.com/lefinal/meh"
	"go.uber.org/zap"
	"path/filepath"
)

// InitProject writes the given configuration to the configuration file. An
// existing file is only replaced if overwrite is set. It reports whether the
// file was written.
func (locator *Locator) InitProject(logger *zap.Logger, config []byte, overwrite bool) (bool, error) {
	err := CreateDirIfNotExists(filepath.Dir(locator.configFilename))
	if err != nil {
		return false, meh.Wrap(err, "create config dir", nil)
	}
	if overwrite {
		logger.Debug("overwrite config file", zap.String("filename", locator.configFilename))
		err = Overwrite(locator.configFilename, config)
		if err != nil {
			return false, meh.Wrap(err, "overwrite config file", nil)
		}
		return true, nil
	}
	logger.Debug("create config file", zap.String("filename", locator.configFilename))
	created, err := CreateIfNotExists(locator.configFilename, config)
	if err != nil {
		return false, meh.Wrap(err, "create config file", nil)
	}
	return created, nil
}
