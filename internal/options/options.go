// Package options contains the program options.
package options

import (
	"github.com/retroenv/retrotype/internal/checksum"
	"github.com/retroenv/retrotype/internal/dialect"
	"github.com/retroenv/retrotype/internal/listing"
)

// Program holds the raw command line options.
type Program struct {
	Input        string
	Output       string
	ChecksumFile string
	TapeFile     string

	Machine     string
	Scheme      string
	Codes       string
	LoadAddress string

	Detokenize bool
	Debug      bool
	Quiet      bool
}

// Conversion holds the resolved configuration of one conversion run.
type Conversion struct {
	Dialect    *dialect.Dialect
	Scheme     checksum.Scheme
	Convention listing.Convention

	LoadAddress uint16
	Detokenize  bool
}
