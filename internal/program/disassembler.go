package program

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/retroenv/retrotype/internal/report"
)

// ErrTruncatedProgram is returned when the image ends in the middle of a
// line record.
var ErrTruncatedProgram = errors.New("truncated program")

// Disassemble walks a linked-line image back into the ordered line sequence.
// Iteration scans each record up to its zero terminator instead of following
// the stored pointers, so programs with corrupted pointers but intact content
// still disassemble. Stored pointers are only cross-checked against the
// scan position, a difference is reported as a non fatal diagnostic.
//
// The image may start with the 2 byte load address prefix of a .prg file,
// which is detected by comparing it against the configured load address.
func Disassemble(data []byte, loadAddress uint16) (*Program, []report.Diagnostic, error) {
	prg := New(loadAddress)
	var diagnostics []report.Diagnostic

	pos := 0
	if len(data) >= 2 && binary.LittleEndian.Uint16(data) == loadAddress {
		pos = 2
	}
	base := int(loadAddress) - pos

	lastLine := report.NoLine
	for {
		// a cleanly exhausted buffer ends the program like a zero pointer
		if pos == len(data) {
			return prg, diagnostics, nil
		}
		if len(data)-pos < 2 {
			return nil, nil, lastLineError("reading next line pointer", lastLine)
		}
		pointer := binary.LittleEndian.Uint16(data[pos:])
		pos += 2
		if pointer == 0 {
			return prg, diagnostics, nil
		}

		if len(data)-pos < 2 {
			return nil, nil, lastLineError("reading line number", lastLine)
		}
		number := binary.LittleEndian.Uint16(data[pos:])
		pos += 2

		body, next, ok := scanBody(data, pos)
		if !ok {
			return nil, nil, lastLineError(fmt.Sprintf("line %d has no terminator", number), lastLine)
		}
		pos = next

		if computed := uint16(base + pos); pointer != computed {
			diagnostics = append(diagnostics, report.Diagnostic{
				Line: int(number),
				Kind: report.PointerMismatch,
				Detail: fmt.Sprintf("stored next line address $%04x, computed $%04x",
					pointer, computed),
			})
		}

		prg.Lines = append(prg.Lines, Line{Number: number, Body: body})
		lastLine = int(number)
	}
}

// scanBody reads body bytes up to the zero terminator and returns the body
// and the position after the terminator.
func scanBody(data []byte, pos int) ([]byte, int, bool) {
	for end := pos; end < len(data); end++ {
		if data[end] == 0 {
			body := make([]byte, end-pos)
			copy(body, data[pos:end])
			return body, end + 1, true
		}
	}
	return nil, 0, false
}

func lastLineError(detail string, lastLine int) error {
	if lastLine == report.NoLine {
		return fmt.Errorf("%s: %w", detail, ErrTruncatedProgram)
	}
	return fmt.Errorf("%s, last complete line %d: %w", detail, lastLine, ErrTruncatedProgram)
}
