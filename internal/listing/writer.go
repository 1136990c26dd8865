package listing

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// LineCheck pairs a line number with its computed check code.
type LineCheck struct {
	Number int
	Code   string
}

// Writer renders records back into listing text.
type Writer struct {
	conv Convention
}

// NewWriter creates a writer for the given magazine convention.
func NewWriter(conv Convention) *Writer {
	if conv.CodeLen == 0 {
		conv.CodeLen = 2
	}
	return &Writer{conv: conv}
}

// WriteListing writes one statement per line, placing the check code
// according to the convention.
func (w *Writer) WriteListing(out io.Writer, records []Record) error {
	for _, record := range records {
		var err error
		switch {
		case record.Check != "" && w.conv.Position == CodeLeading:
			_, err = fmt.Fprintf(out, "%s %d %s\n", record.Check, record.Number, record.Text)
		case record.Check != "" && w.conv.Position == CodeTrailing:
			line := fmt.Sprintf("%d %s", record.Number, record.Text)
			pad := w.conv.Column - 2 - len(line)
			if pad < 1 {
				pad = 1
			}
			_, err = fmt.Fprintf(out, "%s%*s\n", line, pad+len(record.Check), record.Check)
		default:
			_, err = fmt.Fprintf(out, "%d %s\n", record.Number, record.Text)
		}
		if err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
	}
	return nil
}

// WriteChecksumFile writes the check code companion file: one line number
// and code pair per line, followed by the line count.
func WriteChecksumFile(out io.Writer, checks []LineCheck) error {
	for _, check := range checks {
		if _, err := fmt.Fprintf(out, "%d %s\n", check.Number, check.Code); err != nil {
			return fmt.Errorf("writing checksum line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(out, "\nLines: %d\n", len(checks)); err != nil {
		return fmt.Errorf("writing checksum count: %w", err)
	}
	return nil
}

// matrixCellWidth is the printed width of one line number and code cell.
const matrixCellWidth = 12

// WriteChecksumMatrix prints the check codes in a column major matrix,
// sized to the given terminal width, for comparing against the table
// printed in the magazine.
func WriteChecksumMatrix(out io.Writer, checks []LineCheck, width int) error {
	columns := width / matrixCellWidth
	if columns < 1 {
		columns = 1
	}
	rows := (len(checks) + columns - 1) / columns

	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			index := row + column*rows
			if index >= len(checks) {
				continue
			}
			check := checks[index]
			if _, err := fmt.Fprintf(out, "%6d %-2s   ", check.Number, check.Code); err != nil {
				return fmt.Errorf("writing checksum cell: %w", err)
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return fmt.Errorf("writing checksum row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(out, "\nLines: %d\n", len(checks)); err != nil {
		return fmt.Errorf("writing checksum count: %w", err)
	}
	return nil
}

// TerminalWidth returns the width of the attached terminal, or a default of
// 80 columns when the output is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width < 1 {
		return 80
	}
	return width
}
