package main

import (
	"context"
	"github.com/lefinal/acegen/app"
	"github.com/lefinal/acegen/logging"
	"github.com/lefinal/meh/mehlog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.RunCLI(ctx, nil, app.IO{}, os.Args)
	cancel()
	if err != nil {
		mehlog.Log(logging.RootLogger(), err)
		_ = logging.RootLogger().Sync()
		os.Exit(1)
	}
	_ = logging.RootLogger().Sync()
}
