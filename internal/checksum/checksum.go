// Package checksum implements the Ahoy magazine "bug repellent" line check
// codes. The three scheme generations are bit for bit ports of the original
// machine language checkers, validated against captured golden vectors, and
// must not be simplified: the carry handling and masking quirks are part of
// the published behavior.
package checksum

import (
	"strings"
)

// Scheme selects a bug repellent generation.
type Scheme string

// Supported schemes, named after the magazine issues that printed them.
const (
	Ahoy1 Scheme = "ahoy1" // Mar-Apr 1984
	Ahoy2 Scheme = "ahoy2" // May 1984-Apr 1987
	Ahoy3 Scheme = "ahoy3" // May 1987 and later
)

// SchemeFromString returns the scheme for a configuration string.
func SchemeFromString(s string) (Scheme, bool) {
	switch Scheme(strings.ToLower(s)) {
	case Ahoy1:
		return Ahoy1, true
	case Ahoy2:
		return Ahoy2, true
	case Ahoy3:
		return Ahoy3, true
	default:
		return "", false
	}
}

// String implements fmt.Stringer.
func (s Scheme) String() string {
	return string(s)
}

// Compute returns the two letter check code for a tokenized line body.
// The input is the body as stored in the program image, the line terminator
// byte is appended internally since the original checkers ran over it too.
func (s Scheme) Compute(lineNumber uint16, body []byte) string {
	bytes := make([]byte, 0, len(body)+1)
	bytes = append(bytes, body...)
	bytes = append(bytes, 0)

	switch s {
	case Ahoy1:
		return ahoy1(bytes)
	case Ahoy3:
		return ahoy3(lineNumber, bytes)
	default:
		return ahoy2(bytes)
	}
}

// Verify compares a supplied printed code against the computed one.
// It returns the computed code and whether the supplied code matches,
// compared case insensitively.
func (s Scheme) Verify(lineNumber uint16, body []byte, supplied string) (string, bool) {
	computed := s.Compute(lineNumber, body)
	return computed, strings.EqualFold(computed, supplied)
}

// ahoy1 is a rolling sum with a left shift per byte, all spaces skipped.
func ahoy1(bytes []byte) string {
	value := 0
	for _, b := range bytes {
		if b == ' ' {
			continue
		}
		value += int(b)
		value = (value << 1) & 0xff
	}
	return toCode(value)
}

// ahoy2 adds each byte plus a carry flag derived from comparing the byte
// against the quote character, then XORs with the 1 based byte position.
// Spaces outside of quotes are skipped. The accumulator is deliberately not
// masked between rounds, matching the original.
func ahoy2(bytes []byte) string {
	xorValue := 0
	position := 1
	inQuotes := false

	for _, b := range bytes {
		carry := 0
		if b >= '"' {
			carry = 1
		}
		if b == '"' {
			inQuotes = !inQuotes
		}
		if b == ' ' && !inQuotes {
			continue
		}

		xorValue = (int(b) + xorValue + carry) ^ position
		position++
	}
	return toCode(xorValue)
}

// ahoy3 prepends the line number bytes, drops the carry input and switches
// to 0 based positions.
func ahoy3(lineNumber uint16, bytes []byte) string {
	xorValue := 0
	position := 0
	inQuotes := false

	line := make([]byte, 0, len(bytes)+2)
	line = append(line, byte(lineNumber), byte(lineNumber>>8))
	line = append(line, bytes...)

	for _, b := range line {
		if b == '"' {
			inQuotes = !inQuotes
		}
		if b == ' ' && !inQuotes {
			continue
		}

		xorValue = (int(b) + xorValue) ^ position
		position++
	}
	return toCode(xorValue)
}

// toCode reduces the final value to the printed two letter code: one letter
// per nibble of the low byte, offset into A-P.
func toCode(value int) string {
	high := byte((value&0xf0)>>4) + 'A'
	low := byte(value&0x0f) + 'A'
	return string([]byte{high, low})
}
