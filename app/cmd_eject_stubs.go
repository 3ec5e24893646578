package app

import (
	"context"
	"fmt"
	"github.com/lefinal/acegen/codemods"
	"github.com/lefinal/acegen/stubs"
	"github.com/lefinal/meh"
	"go.uber.org/zap"
	"path"
)

// commandEjectStubs copies the default stubs into the stubs directory of the
// project. Stubs in there take precedence over the default ones.
func commandEjectStubs(ctx context.Context, options commandOptions, force bool) error {
	logger := options.Logger
	if err := ctx.Err(); err != nil {
		return meh.NewBadInputErrFromErr(err, "canceled", nil)
	}
	stubsDir := options.Locator.Path(options.Settings.StubsDir)
	written, err := stubs.Eject(logger, stubsDir, force)
	if err != nil {
		return meh.Wrap(err, "eject stubs", meh.Details{"stubs_dir": stubsDir})
	}
	for _, stubFilename := range written {
		outcome := codemods.Outcome{
			Status:   codemods.StatusCreated,
			Filename: path.Join(options.Locator.Rel(stubsDir), stubFilename),
		}
		_, _ = fmt.Fprintln(options.Out, outcome)
	}
	logger.Info(fmt.Sprintf("ejected %d stub(s)", len(written)), zap.String("stubs_dir", stubsDir))
	return nil
}
