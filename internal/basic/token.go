// Package basic implements the tokenized form of Commodore BASIC program
// lines: per dialect keyword token tables and the codec that converts a
// statement between its text and its byte representation.
package basic

import (
	"errors"
	"fmt"
	"sort"
)

// Token byte ranges. Bytes in the literal range are plain PETSCII text,
// everything outside of it is a token or control code. The two ranges never
// overlap, which keeps the codec lossless.
const (
	literalLow  = 0x20
	literalHigh = 0x7e
)

// ErrAmbiguousTableEntry is returned when a token table violates the
// bijection invariant during construction.
var ErrAmbiguousTableEntry = errors.New("ambiguous token table entry")

// Entry maps a single BASIC keyword to its token byte sequence.
// Code is one byte for the primary keyword set or two bytes for keywords
// behind an escape prefix.
type Entry struct {
	Keyword string
	Code    []byte
}

// Table is a read-only bidirectional keyword/token mapping for one dialect.
// A constructed table is safe for concurrent use.
type Table struct {
	byKeyword map[string][]byte
	single    map[byte]string   // one byte token -> keyword
	escaped   map[uint16]string // prefix<<8 | second byte -> keyword
	prefixes  map[byte]struct{} // escape prefix bytes
	noSpace   map[string]struct{}

	// keywords sorted by descending length, the match order contract
	keywords []string
}

// NewTable builds a token table from the given entries and validates the
// bijection invariant: no two keywords share a token and no token decodes
// to two keywords.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		byKeyword: make(map[string][]byte, len(entries)),
		single:    map[byte]string{},
		escaped:   map[uint16]string{},
		prefixes:  map[byte]struct{}{},
		noSpace:   map[string]struct{}{},
	}

	for _, entry := range entries {
		if err := t.add(entry); err != nil {
			return nil, err
		}
	}

	// escape prefixes can not double as one byte tokens
	for prefix := range t.prefixes {
		if keyword, ok := t.single[prefix]; ok {
			return nil, fmt.Errorf("prefix $%02x used by keyword %s: %w",
				prefix, keyword, ErrAmbiguousTableEntry)
		}
	}

	t.keywords = make([]string, 0, len(t.byKeyword))
	for keyword := range t.byKeyword {
		t.keywords = append(t.keywords, keyword)
	}
	sort.Slice(t.keywords, func(i, j int) bool {
		if len(t.keywords[i]) != len(t.keywords[j]) {
			return len(t.keywords[i]) > len(t.keywords[j])
		}
		return t.keywords[i] < t.keywords[j]
	})

	return t, nil
}

func (t *Table) add(entry Entry) error {
	keyword := entry.Keyword
	if keyword == "" {
		return fmt.Errorf("empty keyword: %w", ErrAmbiguousTableEntry)
	}
	if _, ok := t.byKeyword[keyword]; ok {
		return fmt.Errorf("keyword %s defined twice: %w", keyword, ErrAmbiguousTableEntry)
	}

	switch len(entry.Code) {
	case 1:
		code := entry.Code[0]
		if code >= literalLow && code <= literalHigh {
			return fmt.Errorf("keyword %s token $%02x is in the literal range: %w",
				keyword, code, ErrAmbiguousTableEntry)
		}
		if other, ok := t.single[code]; ok {
			return fmt.Errorf("token $%02x maps to %s and %s: %w",
				code, other, keyword, ErrAmbiguousTableEntry)
		}
		t.single[code] = keyword

	case 2:
		prefix := entry.Code[0]
		if prefix >= literalLow && prefix <= literalHigh {
			return fmt.Errorf("keyword %s prefix $%02x is in the literal range: %w",
				keyword, prefix, ErrAmbiguousTableEntry)
		}
		key := uint16(prefix)<<8 | uint16(entry.Code[1])
		if other, ok := t.escaped[key]; ok {
			return fmt.Errorf("token $%02x $%02x maps to %s and %s: %w",
				prefix, entry.Code[1], other, keyword, ErrAmbiguousTableEntry)
		}
		t.escaped[key] = keyword
		t.prefixes[prefix] = struct{}{}

	default:
		return fmt.Errorf("keyword %s has a %d byte token: %w",
			keyword, len(entry.Code), ErrAmbiguousTableEntry)
	}

	code := make([]byte, len(entry.Code))
	copy(code, entry.Code)
	t.byKeyword[keyword] = code

	if noTrailingSpace(keyword) {
		t.noSpace[keyword] = struct{}{}
	}
	return nil
}

// Encode returns the token bytes for a keyword.
func (t *Table) Encode(keyword string) ([]byte, bool) {
	code, ok := t.byKeyword[keyword]
	return code, ok
}

// Match performs a greedy longest keyword match at the start of text and
// returns the matched keyword and its token bytes.
func (t *Table) Match(text string) (string, []byte, bool) {
	for _, keyword := range t.keywords {
		if len(keyword) <= len(text) && text[:len(keyword)] == keyword {
			return keyword, t.byKeyword[keyword], true
		}
	}
	return "", nil, false
}

// DecodeAt decodes the token starting at body[index] and returns the keyword
// and the number of token bytes consumed.
func (t *Table) DecodeAt(body []byte, index int) (string, int, bool) {
	if index >= len(body) {
		return "", 0, false
	}

	first := body[index]
	if _, ok := t.prefixes[first]; ok && index+1 < len(body) {
		key := uint16(first)<<8 | uint16(body[index+1])
		if keyword, ok := t.escaped[key]; ok {
			return keyword, 2, true
		}
	}
	if keyword, ok := t.single[first]; ok {
		return keyword, 1, true
	}
	return "", 0, false
}

// TrailingSpace returns whether the dialect's listing convention prints a
// space after the keyword. Operators and functions that include their opening
// parenthesis are printed without one.
func (t *Table) TrailingSpace(keyword string) bool {
	_, ok := t.noSpace[keyword]
	return !ok
}

// Len returns the number of keywords in the table.
func (t *Table) Len() int {
	return len(t.byKeyword)
}

func noTrailingSpace(keyword string) bool {
	if keyword[len(keyword)-1] == '(' {
		return true
	}
	if len(keyword) > 1 {
		return false
	}
	switch keyword[0] {
	case '+', '-', '*', '/', '^', '>', '=', '<':
		return true
	default:
		return false
	}
}
