// Package stubs provides the templates that generated files are rendered from.
// The default stubs are embedded. A Store layers the stubs directory of a
// project on top of them, so that ejected and customized stubs are used
// instead.
package stubs

import (
	"errors"
	"fmt"
	"github.com/lefinal/meh"
	"go.uber.org/zap"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

const (
	dirPerm  = 0750
	filePerm = 0644
)

// Defaults returns the embedded default stubs rooted at the stubs root.
func Defaults() fs.FS {
	defaults, err := fs.Sub(resources, resourcesRoot)
	if err != nil {
		// Only happens if the embed directive is broken.
		panic(fmt.Sprintf("sub default stubs: %v", err))
	}
	return defaults
}

// Store loads stubs by their filename relative to the stubs root, e.g.,
// make/action/main.stub.
type Store struct {
	// layers are checked in order. The first layer containing the stub wins.
	layers []fs.FS
}

// NewStore creates a new Store that prefers stubs from the given project stubs
// directory over the embedded defaults. If projectStubsDir is empty, only the
// defaults are used.
func NewStore(projectStubsDir string) *Store {
	layers := make([]fs.FS, 0, 2)
	if projectStubsDir != "" {
		layers = append(layers, os.DirFS(projectStubsDir))
	}
	layers = append(layers, Defaults())
	return &Store{layers: layers}
}

// Load the stub with the given filename. If no layer contains the stub, a
// meh.ErrNotFound error is returned.
func (store *Store) Load(stubFilename string) ([]byte, error) {
	for i, layer := range store.layers {
		content, err := fs.ReadFile(layer, stubFilename)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, meh.NewInternalErrFromErr(err, "read stub", meh.Details{
				"stub_filename": stubFilename,
				"layer":         i,
			})
		}
	}
	return nil, meh.NewNotFoundErr(fmt.Sprintf("stub %q not found", stubFilename), nil)
}

// Eject copies all default stubs into the given directory. Existing files are
// kept unless overwrite is set. The filenames of all written stubs are returned.
func Eject(logger *zap.Logger, dstDir string, overwrite bool) ([]string, error) {
	defaults := Defaults()
	written := make([]string, 0)
	err := fs.WalkDir(defaults, ".", func(srcFilename string, dirEntry fs.DirEntry, err error) error {
		if err != nil {
			return meh.NewInternalErrFromErr(err, "walk default stubs", meh.Details{"filename": srcFilename})
		}
		dstFilename := filepath.Join(dstDir, filepath.FromSlash(srcFilename))
		if dirEntry.IsDir() {
			err = os.MkdirAll(dstFilename, dirPerm)
			if err != nil {
				return meh.NewBadInputErrFromErr(err, "create stub directory", meh.Details{"dir": dstFilename})
			}
			return nil
		}
		if _, err = os.Stat(dstFilename); err == nil && !overwrite {
			logger.Debug("skip existing stub", zap.String("filename", dstFilename))
			return nil
		}
		content, err := fs.ReadFile(defaults, srcFilename)
		if err != nil {
			return meh.NewInternalErrFromErr(err, "read default stub", meh.Details{"filename": srcFilename})
		}
		err = os.WriteFile(dstFilename, content, filePerm)
		if err != nil {
			return meh.NewBadInputErrFromErr(err, "write stub", meh.Details{"filename": dstFilename})
		}
		logger.Debug("ejected stub", zap.String("filename", dstFilename))
		written = append(written, path.Clean(srcFilename))
		return nil
	})
	if err != nil {
		return nil, meh.Wrap(err, "walk default stubs", meh.Details{"dst_dir": dstDir})
	}
	return written, nil
}
