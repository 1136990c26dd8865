package program

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrAddressOverflow is returned when a computed line address no longer fits
// into the 16 bit address space.
var ErrAddressOverflow = errors.New("address overflow")

// line record overhead: next pointer, line number, body terminator
const recordOverhead = 2 + 2 + 1

// Assemble produces the linked-line image of the program, prefixed with the
// 2 byte load address as stored in .prg files.
//
// Addresses are assigned in a sizing pass before any byte is emitted, since
// each record starts with a pointer to the line that follows it. The emission
// pass then writes pointer, line number (low byte first), body and terminator
// per line, and a zero pointer after the last line.
func (p *Program) Assemble() ([]byte, error) {
	addresses, end, err := p.assignAddresses()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 2+int(end)-int(p.LoadAddress))
	buf = binary.LittleEndian.AppendUint16(buf, p.LoadAddress)

	for i, line := range p.Lines {
		buf = binary.LittleEndian.AppendUint16(buf, addresses[i+1])
		buf = binary.LittleEndian.AppendUint16(buf, line.Number)
		buf = append(buf, line.Body...)
		buf = append(buf, 0)
	}
	buf = binary.LittleEndian.AppendUint16(buf, 0)

	return buf, nil
}

// assignAddresses computes the start address of every line plus the address
// of the terminating zero pointer. addresses[i] is the start of line i,
// addresses[len(lines)] the address the last line links to.
func (p *Program) assignAddresses() ([]uint16, uint16, error) {
	addresses := make([]uint16, len(p.Lines)+1)
	addr := int(p.LoadAddress)
	addresses[0] = p.LoadAddress

	for i, line := range p.Lines {
		addr += recordOverhead + len(line.Body)
		// the zero pointer that follows the last line has to fit as well
		if addr+2 > 0x10000 {
			return nil, 0, fmt.Errorf("line %d: %w", line.Number, ErrAddressOverflow)
		}
		addresses[i+1] = uint16(addr)
	}

	return addresses, uint16(addr), nil
}
