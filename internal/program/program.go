// Package program represents a tokenized BASIC program and its linked-line
// binary image: each line record carries a pointer to the next line's load
// address, the line number, the token bytes and a zero terminator, followed
// by a zero pointer that ends the program.
package program

// MaxLineNumber is the conventional upper bound for BASIC line numbers.
const MaxLineNumber = 63999

// Line is one logical BASIC line in tokenized form.
type Line struct {
	Number uint16
	Body   []byte // token and literal bytes, without the terminator

	// Check holds the printed check code supplied by the listing,
	// empty if the listing carried none.
	Check string
}

// Program is an ordered sequence of lines. The order is the appearance order
// in the source listing, not necessarily numeric line number order: the
// interpreter links lines in stored order.
type Program struct {
	Lines       []Line
	LoadAddress uint16
}

// New creates a program for the given load address.
func New(loadAddress uint16) *Program {
	return &Program{
		LoadAddress: loadAddress,
	}
}
