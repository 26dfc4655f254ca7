package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/lcd-menu/internal/app"
	"github.com/atomicstack/lcd-menu/internal/config"
	"github.com/atomicstack/lcd-menu/internal/logging"
	"github.com/atomicstack/lcd-menu/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	result, err := app.Run(runtimeCfg.App)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v (details in %s)\n", err, logging.Path())
		os.Exit(1)
	}
	events.App.Finish(result.Value, result.Selected)
	if !result.Selected {
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout, result.Value)
}
