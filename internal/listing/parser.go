// Package listing implements the textual front end: it splits a magazine
// listing into per line records of line number, statement text and optional
// printed check code, and renders the inverse.
package listing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/retrotype/internal/program"
	"github.com/retroenv/retrotype/internal/report"
)

// CodePosition describes where a magazine printed the check code on a line.
type CodePosition int

// Check code positions.
const (
	CodeNone CodePosition = iota
	CodeLeading
	CodeTrailing
)

// defaultAlphabet is the two letter code alphabet of the Ahoy bug repellent.
const defaultAlphabet = "ABCDEFGHIJKLMNOP"

// Convention is the magazine specific listing layout configuration.
type Convention struct {
	Position CodePosition
	Column   int    // minimum 1 based column of a trailing code, 0 for any
	Alphabet string // allowed check code characters
	CodeLen  int    // printed code length

	// AhoySpecials enables conversion of Ahoy special character codes
	// to petcat brace codes.
	AhoySpecials bool
}

// AhoyConvention returns the listing convention of Ahoy magazine: no code on
// the typed line (codes were printed in a separate table), Ahoy special
// character codes enabled.
func AhoyConvention() Convention {
	return Convention{
		Position:     CodeNone,
		Alphabet:     defaultAlphabet,
		CodeLen:      2,
		AhoySpecials: true,
	}
}

// Record is one parsed listing line.
type Record struct {
	Number     int
	Text       string
	Check      string // printed check code, empty if none
	SourceLine int    // 1 based physical line in the input
}

// Parser splits listing text into records.
type Parser struct {
	conv Convention
}

// NewParser creates a parser for the given magazine convention.
func NewParser(conv Convention) *Parser {
	if conv.Alphabet == "" {
		conv.Alphabet = defaultAlphabet
	}
	if conv.CodeLen == 0 {
		conv.CodeLen = 2
	}
	return &Parser{conv: conv}
}

// Parse reads a listing and returns its records plus the per line
// diagnostics found along the way. Blank lines are skipped, text is
// canonicalized to upper case and brackets are normalized to braces.
// Sequence problems are diagnostics, not errors: out of order lines were
// printed by magazines on purpose and are kept in listed order.
func (p *Parser) Parse(r io.Reader) ([]Record, []report.Diagnostic, error) {
	var (
		records     []Record
		diagnostics []report.Diagnostic
	)

	previousNumber := -1
	scanner := bufio.NewScanner(r)
	for sourceLine := 1; scanner.Scan(); sourceLine++ {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		line = strings.ToUpper(line)
		line = strings.NewReplacer("[", "{", "]", "}").Replace(line)

		line, check := p.extractCheckCode(line)

		if diag, ok := looseBraceCheck(line); ok {
			diag.Line = lineNumberOf(line)
			diagnostics = append(diagnostics, diag)
		}

		if p.conv.AhoySpecials {
			line = convertAhoySpecials(line)
		}

		number, text, ok := splitLineNumber(line)
		if !ok {
			diagnostics = append(diagnostics, report.Diagnostic{
				Line:   previousNumber,
				Kind:   report.SequenceError,
				Detail: fmt.Sprintf("input line %d does not start with a line number", sourceLine),
			})
			continue
		}
		if number > program.MaxLineNumber {
			diagnostics = append(diagnostics, report.Diagnostic{
				Line:   number,
				Kind:   report.SequenceError,
				Detail: fmt.Sprintf("line number exceeds %d", program.MaxLineNumber),
			})
			continue
		}
		if number <= previousNumber {
			diagnostics = append(diagnostics, report.Diagnostic{
				Line:   number,
				Kind:   report.SequenceError,
				Detail: fmt.Sprintf("not in sequential order after line %d", previousNumber),
			})
		}
		previousNumber = number

		records = append(records, Record{
			Number:     number,
			Text:       text,
			Check:      check,
			SourceLine: sourceLine,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading listing: %w", err)
	}

	return records, diagnostics, nil
}

// extractCheckCode strips the printed check code off the line per the
// magazine convention and returns the remaining line and the code.
func (p *Parser) extractCheckCode(line string) (string, string) {
	switch p.conv.Position {
	case CodeLeading:
		fields := strings.SplitN(strings.TrimLeft(line, " "), " ", 2)
		if len(fields) == 2 && p.isCode(fields[0]) {
			return strings.TrimLeft(fields[1], " "), fields[0]
		}

	case CodeTrailing:
		cut := strings.LastIndexByte(line, ' ')
		if cut < 0 {
			break
		}
		code := line[cut+1:]
		if !p.isCode(code) {
			break
		}
		if p.conv.Column > 0 && cut+2 < p.conv.Column {
			break
		}
		return strings.TrimRight(line[:cut], " "), code
	}

	return line, ""
}

func (p *Parser) isCode(s string) bool {
	if len(s) != p.conv.CodeLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(p.conv.Alphabet, rune(s[i])) {
			return false
		}
	}
	return true
}

// looseBraceCheck reports braces that are not part of a complete special
// character group, a common transcription mistake.
func looseBraceCheck(line string) (report.Diagnostic, bool) {
	remainder := braceGroup.ReplaceAllString(line, "")
	if !strings.ContainsAny(remainder, "{}") {
		return report.Diagnostic{}, false
	}
	return report.Diagnostic{
		Line:   report.NoLine,
		Kind:   report.LooseBrace,
		Detail: "special characters should be enclosed in matched braces",
	}, true
}

// splitLineNumber splits the leading line number off a listing line.
func splitLineNumber(line string) (int, string, bool) {
	line = strings.TrimLeft(line, " ")
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0, "", false
	}

	number, err := strconv.Atoi(line[:digits])
	if err != nil {
		return 0, "", false
	}
	return number, strings.TrimLeft(line[digits:], " "), true
}

// lineNumberOf extracts the line number for diagnostics attribution.
func lineNumberOf(line string) int {
	number, _, ok := splitLineNumber(line)
	if !ok {
		return report.NoLine
	}
	return number
}
