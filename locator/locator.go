// Package locator resolves the project directory and paths inside of it.
package locator

import (
	"bytes"
	"errors"
	"github.com/lefinal/meh"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultConfigFilename is the name of the project configuration file that
// marks a project directory.
const DefaultConfigFilename = "acegen.yaml"

const (
	mkdirPerm = 0750
	filePerm  = 0644
)

// Locator provides paths inside a project. Create one with New.
type Locator struct {
	contextDir     string
	configFilename string
}

// New creates a new Locator for the given project directory. If the config
// filename is not absolute, it is interpreted relative to the context
// directory.
func New(contextDir string, configFilename string) (*Locator, error) {
	absContextDir, err := filepath.Abs(contextDir)
	if err != nil {
		return nil, meh.NewBadInputErrFromErr(err, "absolute context dir", meh.Details{"context_dir": contextDir})
	}
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}
	if !filepath.IsAbs(configFilename) {
		configFilename = filepath.Join(absContextDir, configFilename)
	}
	return &Locator{
		contextDir:     absContextDir,
		configFilename: configFilename,
	}, nil
}

// ContextDir is the absolute project directory.
func (locator *Locator) ContextDir() string {
	return locator.contextDir
}

// ConfigFilename is the absolute filename of the project configuration.
func (locator *Locator) ConfigFilename() string {
	return locator.configFilename
}

// HasConfig checks whether the configuration file exists.
func (locator *Locator) HasConfig() bool {
	_, err := os.Stat(locator.configFilename)
	return err == nil
}

// Path returns the absolute path for the given slash-separated path relative to
// the context directory.
func (locator *Locator) Path(rel string) string {
	return filepath.Join(locator.contextDir, filepath.FromSlash(rel))
}

// Rel returns the slash-separated path of the given absolute filename relative
// to the context directory. If this is not possible, the filename is returned
// unchanged.
func (locator *Locator) Rel(filename string) string {
	rel, err := filepath.Rel(locator.contextDir, filename)
	if err != nil {
		return filename
	}
	return filepath.ToSlash(rel)
}

// FindContextDir searches the given start directory and its parents for a
// directory containing the configuration file with the given name.
func FindContextDir(startDir string, configFilename string) (string, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", meh.NewBadInputErrFromErr(err, "absolute start dir", meh.Details{"start_dir": startDir})
	}
	for {
		_, err = os.Stat(filepath.Join(dir, configFilename))
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", meh.NewInternalErrFromErr(err, "stat config file", meh.Details{"dir": dir})
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", meh.NewNotFoundErr("no project found in start dir or any parent", meh.Details{
				"start_dir":       startDir,
				"config_filename": configFilename,
			})
		}
		dir = parent
	}
}

// CreateDirIfNotExists creates the given directory including all parents.
func CreateDirIfNotExists(dir string) error {
	err := os.MkdirAll(dir, mkdirPerm)
	if err != nil {
		return meh.NewBadInputErrFromErr(err, "mkdir all", meh.Details{"dir": dir})
	}
	return nil
}

// CreateIfNotExists writes the given content to the file with the given name if
// it does not exist yet. It reports whether the file was created.
func CreateIfNotExists(filename string, content []byte) (bool, error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, meh.NewBadInputErrFromErr(err, "create file", meh.Details{"filename": filename})
	}
	defer func() { _ = f.Close() }()
	_, err = io.Copy(f, bytes.NewReader(content))
	if err != nil {
		return false, meh.NewBadInputErrFromErr(err, "write file", meh.Details{"filename": filename})
	}
	err = f.Close()
	if err != nil {
		return false, meh.NewBadInputErrFromErr(err, "close written file", meh.Details{"filename": filename})
	}
	return true, nil
}

// Overwrite writes the given content to the file with the given name, replacing
// any existing file.
func Overwrite(filename string, content []byte) error {
	err := os.WriteFile(filename, content, filePerm)
	if err != nil {
		return meh.NewBadInputErrFromErr(err, "write file", meh.Details{"filename": filename})
	}
	return nil
}
