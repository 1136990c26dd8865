// Package config handles application configuration and setup
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrotype/internal/checksum"
	"github.com/retroenv/retrotype/internal/detector"
	"github.com/retroenv/retrotype/internal/dialect"
	"github.com/retroenv/retrotype/internal/listing"
	"github.com/retroenv/retrotype/internal/options"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Resolve validates the raw program options and builds the conversion
// configuration: machine dialect with its token table, checksum scheme,
// listing convention, load address and direction.
func Resolve(logger *log.Logger, opts options.Program) (options.Conversion, error) {
	var conv options.Conversion

	machine, ok := dialect.MachineFromString(strings.ToLower(opts.Machine))
	if !ok {
		return conv, fmt.Errorf("unsupported machine %q, valid options: %s, %s, %s",
			opts.Machine, dialect.C64, dialect.VIC20, dialect.C128)
	}
	dia, err := dialect.New(machine)
	if err != nil {
		return conv, fmt.Errorf("creating dialect: %w", err)
	}
	conv.Dialect = dia

	scheme, ok := checksum.SchemeFromString(opts.Scheme)
	if !ok {
		return conv, fmt.Errorf("unsupported checksum scheme %q, valid options: %s, %s, %s",
			opts.Scheme, checksum.Ahoy1, checksum.Ahoy2, checksum.Ahoy3)
	}
	conv.Scheme = scheme

	conv.Convention = listing.AhoyConvention()
	switch strings.ToLower(opts.Codes) {
	case "", "none":
	case "leading":
		conv.Convention.Position = listing.CodeLeading
	case "trailing":
		conv.Convention.Position = listing.CodeTrailing
	default:
		return conv, fmt.Errorf("unsupported check code placement %q, valid options: none, leading, trailing",
			opts.Codes)
	}

	conv.LoadAddress = dia.LoadBase
	if opts.LoadAddress != "" {
		address, err := parseLoadAddress(opts.LoadAddress)
		if err != nil {
			return conv, err
		}
		conv.LoadAddress = address
	}

	direction := detector.New(logger).Detect(opts)
	conv.Detokenize = direction == detector.Detokenize

	return conv, nil
}

// parseLoadAddress parses a hex load address like 0x0801 or $0801.
func parseLoadAddress(s string) (uint16, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	address, err := strconv.ParseUint(trimmed, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid load address %q: %w", s, err)
	}
	return uint16(address), nil
}
