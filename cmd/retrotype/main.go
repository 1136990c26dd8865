// Package main implements a converter between magazine BASIC type-in
// listings and tokenized Commodore BASIC program files.
package main

import (
	"errors"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrotype/internal/cli"
	"github.com/retroenv/retrotype/internal/config"
	"github.com/retroenv/retrotype/internal/fileprocessor"
	"github.com/retroenv/retrotype/internal/options"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if err := run(logger, opts); err != nil {
		logger.Fatal(err.Error())
	}
}

func run(logger *log.Logger, opts options.Program) error {
	conv, err := config.Resolve(logger, opts)
	if err != nil {
		return err
	}
	return fileprocessor.ProcessFile(logger, opts, conv)
}
