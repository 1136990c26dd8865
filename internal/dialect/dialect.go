// Package dialect models the closed set of target machines as tagged
// configuration: each dialect selects a token table and a default load
// address, all codec behavior stays dialect agnostic.
package dialect

import (
	"fmt"

	"github.com/retroenv/retrotype/internal/basic"
)

// Machine identifies a supported target machine.
type Machine string

// Supported machines.
const (
	C64   Machine = "c64"
	VIC20 Machine = "vic20"
	C128  Machine = "c128"
)

// MachineFromString returns the machine for a configuration string.
func MachineFromString(s string) (Machine, bool) {
	switch Machine(s) {
	case C64:
		return C64, true
	case VIC20:
		return VIC20, true
	case C128:
		return C128, true
	default:
		return "", false
	}
}

// String implements fmt.Stringer.
func (m Machine) String() string {
	return string(m)
}

// Default BASIC load addresses. The VIC-20 address moves with installed
// memory expansion, the unexpanded machine is the default here and other
// configurations are selected through the load address option.
const (
	LoadBaseC64        = 0x0801
	LoadBaseVIC20      = 0x1001
	LoadBaseVIC20Plus3 = 0x0401
	LoadBaseVIC20Plus8 = 0x1201
	LoadBaseC128       = 0x1c01
)

// Dialect bundles the per machine conversion configuration.
// A Dialect is immutable once created and safe for concurrent reuse.
type Dialect struct {
	Machine  Machine
	Table    *basic.Table
	LoadBase uint16
}

// New creates the dialect for a machine, building and validating its token
// table. Table validation failures are fatal configuration errors.
func New(machine Machine) (*Dialect, error) {
	var (
		table    *basic.Table
		loadBase uint16
		err      error
	)

	switch machine {
	case C64:
		table, err = basic.NewBasicV2Table()
		loadBase = LoadBaseC64
	case VIC20:
		table, err = basic.NewBasicV2Table()
		loadBase = LoadBaseVIC20
	case C128:
		table, err = basic.NewBasic70Table()
		loadBase = LoadBaseC128
	default:
		return nil, fmt.Errorf("unsupported machine %q", machine)
	}
	if err != nil {
		return nil, fmt.Errorf("building %s token table: %w", machine, err)
	}

	return &Dialect{
		Machine:  machine,
		Table:    table,
		LoadBase: loadBase,
	}, nil
}
