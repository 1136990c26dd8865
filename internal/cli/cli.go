// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrotype/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (options.Program, error) {
	flags := flag.NewFlagSet("retrotype", flag.ContinueOnError)
	flags.SetOutput(discard{})

	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(args)
	positional := flags.Args()
	if err != nil || len(positional) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(positional); err != nil {
		return opts, err
	}
	opts.Input = positional[0]

	return opts, nil
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text with all flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrotype [options] <listing or program file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks that no flag follows the positional input file.
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("potential argument %s found after the input file, please pass the input file as last argument", arg),
			}
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output file, derived from the input name if not given")
	flags.StringVar(&opts.ChecksumFile, "chk", "", "name of the check code file to write")
	flags.StringVar(&opts.TapeFile, "wav", "", "name of a cassette WAV file to write additionally")
	flags.StringVar(&opts.Machine, "m", "c64", "target machine (c64/vic20/c128)")
	flags.StringVar(&opts.Scheme, "s", "ahoy2", "bug repellent scheme of the source magazine (ahoy1/ahoy2/ahoy3)")
	flags.StringVar(&opts.Codes, "codes", "none", "placement of printed check codes on the listing lines (none/leading/trailing)")
	flags.StringVar(&opts.LoadAddress, "l", "", "BASIC load address in hex, overrides the machine default (e.g. 0x1201 for VIC20 +8K)")
	flags.BoolVar(&opts.Detokenize, "detokenize", false, "convert a tokenized program back to listing text")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// discard suppresses the doubled error output of the flag package, errors
// are reported through the UsageError instead.
type discard struct{}

func (discard) Write(p []byte) (int, error) {
	return len(p), nil
}
