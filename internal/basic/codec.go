package basic

import (
	"fmt"
	"strconv"
	"strings"
)

// Codec converts a single statement body between its listing text and the
// tokenized byte form. Line numbers and line linkage are out of its scope.
// A Codec is stateless across lines and safe for concurrent use.
type Codec struct {
	table   *Table
	spacing bool
}

// NewCodec creates a codec for the given dialect token table.
func NewCodec(table *Table) *Codec {
	return &Codec{
		table:   table,
		spacing: true,
	}
}

// Tokenize scans the statement text left to right and produces the token
// byte form: keywords become tokens outside of quoted strings and REM
// comments, petcat brace codes become their PETSCII bytes anywhere, and
// everything else passes through as literal bytes.
// Recoverable problems are returned as text alongside the produced bytes.
func (c *Codec) Tokenize(text string) ([]byte, []string) {
	var (
		body     []byte
		problems []string
	)

	inQuotes := false
	inRemark := false

	for pos := 0; pos < len(text); {
		// brace codes are matched inside and outside of quotes
		if text[pos] == '{' {
			if value, length, ok := scanBraceCode(text[pos:]); ok {
				body = append(body, value)
				pos += length
				continue
			}
			problems = append(problems, fmt.Sprintf("unknown special character at column %d", pos+1))
			body = append(body, text[pos])
			pos++
			continue
		}

		ch := text[pos]
		if ch == '"' {
			inQuotes = !inQuotes
			body = append(body, ch)
			pos++
			continue
		}

		if !inQuotes && !inRemark {
			if keyword, code, ok := c.table.Match(text[pos:]); ok {
				body = append(body, code...)
				pos += len(keyword)
				if keyword == "REM" {
					inRemark = true
				}
				continue
			}
		}

		if ch < literalLow || ch > literalHigh {
			problems = append(problems, fmt.Sprintf("unsupported character at column %d", pos+1))
			pos++
			continue
		}
		// lower case ASCII shifts to the unshifted PETSCII letter range
		if ch >= 'a' && ch <= 'z' {
			ch -= 32
		}
		body = append(body, ch)
		pos++
	}

	return body, problems
}

// Detokenize reverses Tokenize: token bytes become keyword text, control
// bytes inside quotes or REM comments become petcat brace codes, literal
// bytes pass through. Unknown bytes are emitted as {$xx} placeholders and
// reported as problems.
func (c *Codec) Detokenize(body []byte) (string, []string) {
	var (
		text     strings.Builder
		problems []string
	)

	inQuotes := false
	inRemark := false

	for i := 0; i < len(body); {
		b := body[i]

		if b == '"' {
			inQuotes = !inQuotes
			text.WriteByte(b)
			i++
			continue
		}

		if b >= literalLow && b <= literalHigh {
			text.WriteByte(b)
			i++
			continue
		}

		if !inQuotes && !inRemark {
			if keyword, length, ok := c.table.DecodeAt(body, i); ok {
				text.WriteString(keyword)
				i += length
				if keyword == "REM" {
					inRemark = true
				}
				if c.spacing && c.table.TrailingSpace(keyword) &&
					i < len(body) && body[i] != ' ' {
					text.WriteByte(' ')
				}
				continue
			}
		}

		if name, ok := SpecialCharName(b); ok {
			text.WriteString("{" + name + "}")
			i++
			continue
		}

		problems = append(problems, fmt.Sprintf("no table entry for byte $%02x", b))
		fmt.Fprintf(&text, "{$%02x}", b)
		i++
	}

	return text.String(), problems
}

// scanBraceCode matches a petcat brace code or a {$xx} hex escape at the
// start of text and returns its byte value and the matched length.
func scanBraceCode(text string) (byte, int, bool) {
	end := strings.IndexByte(text, '}')
	if end < 1 {
		return 0, 0, false
	}
	name := strings.TrimSpace(text[1:end])

	if strings.HasPrefix(name, "$") {
		value, err := strconv.ParseUint(name[1:], 16, 8)
		if err != nil {
			return 0, 0, false
		}
		return byte(value), end + 1, true
	}

	code, ok := SpecialCharCode(name)
	if !ok {
		return 0, 0, false
	}
	return code, end + 1, true
}
