// Package codemods writes generated files into a project. Use
// Codemods.MakeUsingStub for rendering a stub and writing the result.
package codemods

import (
	"context"
	"fmt"
	"github.com/lefinal/acegen/entity"
	"github.com/lefinal/acegen/locator"
	"github.com/lefinal/acegen/projectfile"
	"github.com/lefinal/acegen/templaterender"
	"github.com/lefinal/meh"
	"go.uber.org/zap"
	"path"
	"path/filepath"
	"strings"
)

// Status of an Outcome.
type Status string

const (
	// StatusCreated is used when the file was written.
	StatusCreated Status = "created"
	// StatusSkipped is used when the file already existed and was left untouched.
	StatusSkipped Status = "skipped"
	// StatusFailed is used when rendering or writing failed.
	StatusFailed Status = "failed"
)

// Outcome is the result of MakeUsingStub for a single file.
type Outcome struct {
	Status Status
	// Filename is the slash-separated filename relative to the project directory.
	// It may be empty if rendering failed before the destination was known.
	Filename string
	// Err is set for StatusFailed.
	Err error
}

// String formats the Outcome as a single line for the user.
func (outcome Outcome) String() string {
	switch outcome.Status {
	case StatusCreated:
		return fmt.Sprintf("DONE:    create %s", outcome.Filename)
	case StatusSkipped:
		return fmt.Sprintf("SKIPPED: create %s (file already exists)", outcome.Filename)
	default:
		return fmt.Sprintf("ERROR:   create %s (%v)", outcome.Filename, outcome.Err)
	}
}

// StubLoader loads stubs by their filename.
type StubLoader interface {
	Load(stubFilename string) ([]byte, error)
}

// Options for Codemods.
type Options struct {
	// Overwrite existing files instead of skipping them.
	Overwrite bool
}

// Codemods renders stubs and writes them into the project. Create one with New.
type Codemods struct {
	logger   *zap.Logger
	locator  *locator.Locator
	stubs    StubLoader
	settings projectfile.Settings
	options  Options
}

// New creates a new Codemods.
func New(logger *zap.Logger, locator *locator.Locator, stubs StubLoader, settings projectfile.Settings, options Options) *Codemods {
	return &Codemods{
		logger:   logger,
		locator:  locator,
		stubs:    stubs,
		settings: settings,
		options:  options,
	}
}

// MakeUsingStub renders the stub with the given filename for the entity and
// feature and writes it to the destination set in the stub. Failures are
// reported via the returned Outcome.
func (codemods *Codemods) MakeUsingStub(ctx context.Context, stubFilename string, actionEntity entity.Entity, feature entity.Entity) Outcome {
	logger := codemods.logger.With(zap.String("stub", stubFilename), zap.String("entity", actionEntity.Name))
	if err := ctx.Err(); err != nil {
		return Outcome{Status: StatusFailed, Err: meh.NewInternalErrFromErr(err, "context done", nil)}
	}
	// Render.
	stub, err := codemods.stubs.Load(stubFilename)
	if err != nil {
		return codemods.failed(logger, "", meh.Wrap(err, "load stub", meh.Details{"stub_filename": stubFilename}))
	}
	renderer := templaterender.New(templaterender.Data{
		Entity:  actionEntity,
		Feature: feature,
		Paths: templaterender.PathData{
			Actions:   codemods.settings.ActionsDir,
			Extension: codemods.settings.FileExtension,
		},
	})
	rendered, err := renderer.RenderStub(stub)
	if err != nil {
		return codemods.failed(logger, "", meh.Wrap(err, "render stub", meh.Details{"stub_filename": stubFilename}))
	}
	relFilename, err := destination(rendered.To)
	if err != nil {
		return codemods.failed(logger, rendered.To, meh.Wrap(err, "destination", meh.Details{"stub_filename": stubFilename}))
	}
	logger = logger.With(zap.String("filename", relFilename))
	// Write.
	filename := codemods.locator.Path(relFilename)
	err = locator.CreateDirIfNotExists(filepath.Dir(filename))
	if err != nil {
		return codemods.failed(logger, relFilename, meh.Wrap(err, "create dir", nil))
	}
	if codemods.options.Overwrite {
		err = locator.Overwrite(filename, []byte(rendered.Contents))
		if err != nil {
			return codemods.failed(logger, relFilename, meh.Wrap(err, "overwrite", nil))
		}
		logger.Debug("file written")
		return Outcome{Status: StatusCreated, Filename: relFilename}
	}
	created, err := locator.CreateIfNotExists(filename, []byte(rendered.Contents))
	if err != nil {
		return codemods.failed(logger, relFilename, meh.Wrap(err, "create if not exists", nil))
	}
	if !created {
		logger.Debug("file already exists")
		return Outcome{Status: StatusSkipped, Filename: relFilename}
	}
	logger.Debug("file written")
	return Outcome{Status: StatusCreated, Filename: relFilename}
}

func (codemods *Codemods) failed(logger *zap.Logger, relFilename string, err error) Outcome {
	logger.Debug("make using stub failed", zap.Error(err))
	return Outcome{
		Status:   StatusFailed,
		Filename: relFilename,
		Err:      err,
	}
}

// destination cleans the rendered destination and makes sure that it stays
// inside the project directory.
func destination(to string) (string, error) {
	if strings.TrimSpace(to) == "" {
		return "", meh.NewBadInputErr("stub has no destination", nil)
	}
	to = strings.ReplaceAll(to, `\`, "/")
	if path.IsAbs(to) || filepath.IsAbs(to) {
		return "", meh.NewBadInputErr("destination must be relative", meh.Details{"to": to})
	}
	cleaned := path.Clean(to)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", meh.NewBadInputErr("destination leaves project directory", meh.Details{"to": to})
	}
	return cleaned, nil
}

