package app

import (
	"context"
	"fmt"
	"github.com/lefinal/acegen/codemods"
	"github.com/lefinal/acegen/entity"
	"github.com/lefinal/acegen/makeaction"
	"github.com/lefinal/acegen/stubs"
	"github.com/lefinal/meh"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type makeActionOptions struct {
	name  string
	flags makeaction.Flags
	force bool
}

func makeActionCommand(commandOpts *commandOptions) *cli.Command {
	var actionOpts makeActionOptions
	return &cli.Command{
		Name:      "make:action",
		Usage:     "Creates a new action class. Use --resource for creating all actions of a resource.",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "feature",
				Aliases:     []string{"f"},
				Usage:       "Place the action in the `FEATURE` folder. Ignored for resources.",
				Destination: &actionOpts.flags.Feature,
			},
			&cli.BoolFlag{
				Name:        "resource",
				Aliases:     []string{"r"},
				Usage:       "Create get, list, store, update and destroy actions for the resource NAME.",
				Destination: &actionOpts.flags.Resource,
			},
			&cli.BoolFlag{
				Name:        "http",
				Aliases:     []string{"c"},
				Usage:       "Use the HTTP variant that injects the HTTP context.",
				Destination: &actionOpts.flags.HTTP,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Overwrite existing files instead of skipping them.",
				Destination: &actionOpts.force,
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() > 1 {
				return meh.NewBadInputErr("too many arguments. flags must be set before the name",
					meh.Details{"args": c.Args().Slice()})
			}
			actionOpts.name = c.Args().First()
			return meh.NilOrWrap(commandMakeAction(c.Context, *commandOpts, actionOpts), "command make:action", nil)
		},
	}
}

// commandMakeAction renders the action stubs for the requested name. The user is
// asked for the name if it was not provided. All files are attempted even if
// some of them fail.
func commandMakeAction(ctx context.Context, options commandOptions, actionOpts makeActionOptions) error {
	logger := options.Logger
	var err error
	name := actionOpts.name
	if name == "" {
		name, err = options.Input.Request(ctx, "Name of the action", func(s string) error {
			_, err := entity.Derive(s)
			return err
		})
		if err != nil {
			return meh.Wrap(err, "request action name", nil)
		}
	}
	if actionOpts.flags.Resource && actionOpts.flags.Feature != "" {
		logger.Debug("feature is not used for resources", zap.String("feature", actionOpts.flags.Feature))
	}
	requests, err := makeaction.Resolve(name, actionOpts.flags)
	if err != nil {
		return meh.Wrap(err, "resolve render requests", meh.Details{"name": name})
	}
	stubStore := stubs.NewStore(options.Locator.Path(options.Settings.StubsDir))
	mods := codemods.New(logger.Named("codemods"), options.Locator, stubStore, options.Settings,
		codemods.Options{Overwrite: actionOpts.force})
	failed := 0
	for i, request := range requests {
		if err = ctx.Err(); err != nil {
			return meh.NewBadInputErrFromErr(err, "canceled", meh.Details{"remaining": len(requests) - i})
		}
		outcome := mods.MakeUsingStub(ctx, request.StubID.Filename(), request.Entity, request.Feature)
		_, _ = fmt.Fprintln(options.Out, outcome)
		if outcome.Status == codemods.StatusFailed {
			failed++
		}
	}
	if failed > 0 {
		return meh.NewInternalErr(fmt.Sprintf("%d of %d file(s) failed", failed, len(requests)), meh.Details{"name": name})
	}
	logger.Debug(fmt.Sprintf("made %d file(s)", len(requests)), zap.String("name", name))
	return nil
}
