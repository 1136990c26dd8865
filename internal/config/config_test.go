package config

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrotype/internal/checksum"
	"github.com/retroenv/retrotype/internal/dialect"
	"github.com/retroenv/retrotype/internal/listing"
	"github.com/retroenv/retrotype/internal/options"
)

func TestResolveDefaults(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.Program{
		Input:   "listing.bas",
		Machine: "c64",
		Scheme:  "ahoy2",
	}

	conv, err := Resolve(logger, opts)
	assert.NoError(t, err)

	assert.Equal(t, dialect.C64, conv.Dialect.Machine)
	assert.Equal(t, checksum.Ahoy2, conv.Scheme)
	assert.Equal(t, uint16(0x0801), conv.LoadAddress)
	assert.False(t, conv.Detokenize)
}

func TestResolveLoadAddressOverride(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    uint16
	}{
		{name: "0x prefix", address: "0x1201", want: 0x1201},
		{name: "dollar prefix", address: "$0401", want: 0x0401},
		{name: "bare hex", address: "1c01", want: 0x1c01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Input:       "listing.bas",
				Machine:     "vic20",
				Scheme:      "ahoy2",
				LoadAddress: tt.address,
			}

			conv, err := Resolve(log.NewTestLogger(t), opts)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, conv.LoadAddress)
		})
	}
}

func TestResolveInvalidLoadAddress(t *testing.T) {
	opts := options.Program{
		Input:       "listing.bas",
		Machine:     "c64",
		Scheme:      "ahoy2",
		LoadAddress: "0xZZZZ",
	}

	_, err := Resolve(log.NewTestLogger(t), opts)
	assert.ErrorContains(t, err, "invalid load address")
}

func TestResolveUnsupportedMachine(t *testing.T) {
	opts := options.Program{
		Input:   "listing.bas",
		Machine: "amiga",
		Scheme:  "ahoy2",
	}

	_, err := Resolve(log.NewTestLogger(t), opts)
	assert.ErrorContains(t, err, "unsupported machine")
}

func TestResolveUnsupportedScheme(t *testing.T) {
	opts := options.Program{
		Input:   "listing.bas",
		Machine: "c64",
		Scheme:  "compute",
	}

	_, err := Resolve(log.NewTestLogger(t), opts)
	assert.ErrorContains(t, err, "unsupported checksum scheme")
}

func TestResolveCodePlacement(t *testing.T) {
	tests := []struct {
		name  string
		codes string
		want  listing.CodePosition
	}{
		{name: "default none", codes: "", want: listing.CodeNone},
		{name: "none", codes: "none", want: listing.CodeNone},
		{name: "leading", codes: "leading", want: listing.CodeLeading},
		{name: "trailing", codes: "trailing", want: listing.CodeTrailing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Input:   "listing.bas",
				Machine: "c64",
				Scheme:  "ahoy2",
				Codes:   tt.codes,
			}

			conv, err := Resolve(log.NewTestLogger(t), opts)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, conv.Convention.Position)
		})
	}
}

func TestResolveUnsupportedCodePlacement(t *testing.T) {
	opts := options.Program{
		Input:   "listing.bas",
		Machine: "c64",
		Scheme:  "ahoy2",
		Codes:   "inline",
	}

	_, err := Resolve(log.NewTestLogger(t), opts)
	assert.ErrorContains(t, err, "unsupported check code placement")
}

func TestResolveDetokenizeFromExtension(t *testing.T) {
	opts := options.Program{
		Input:   "game.prg",
		Machine: "c128",
		Scheme:  "ahoy1",
	}

	conv, err := Resolve(log.NewTestLogger(t), opts)
	assert.NoError(t, err)
	assert.True(t, conv.Detokenize)
	assert.Equal(t, uint16(0x1c01), conv.LoadAddress)
}
