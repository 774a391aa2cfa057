package main

import (
	"errors"
	"os"

	"imd/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		report(logger.New(false), err)
		os.Exit(1)
	}
}

// report logs err unless the run already logged it. Argument and config
// errors happen before the run's logger exists.
func report(log *logger.Logger, err error) {
	if errors.As(err, new(reportedError)) {
		return
	}
	log.Error("%v", err)
}
