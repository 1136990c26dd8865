package basic

// Commodore BASIC V2 keyword set, shared by the C64 and the VIC-20.
// Operators are tokens on this interpreter family, only digits, punctuation
// and variable names are stored as literal PETSCII text.
var basicV2Entries = []Entry{
	{"END", []byte{0x80}},
	{"FOR", []byte{0x81}},
	{"NEXT", []byte{0x82}},
	{"DATA", []byte{0x83}},
	{"INPUT#", []byte{0x84}},
	{"INPUT", []byte{0x85}},
	{"DIM", []byte{0x86}},
	{"READ", []byte{0x87}},
	{"LET", []byte{0x88}},
	{"GOTO", []byte{0x89}},
	{"RUN", []byte{0x8a}},
	{"IF", []byte{0x8b}},
	{"RESTORE", []byte{0x8c}},
	{"GOSUB", []byte{0x8d}},
	{"RETURN", []byte{0x8e}},
	{"REM", []byte{0x8f}},
	{"STOP", []byte{0x90}},
	{"ON", []byte{0x91}},
	{"WAIT", []byte{0x92}},
	{"LOAD", []byte{0x93}},
	{"SAVE", []byte{0x94}},
	{"VERIFY", []byte{0x95}},
	{"DEF", []byte{0x96}},
	{"POKE", []byte{0x97}},
	{"PRINT#", []byte{0x98}},
	{"PRINT", []byte{0x99}},
	{"CONT", []byte{0x9a}},
	{"LIST", []byte{0x9b}},
	{"CLR", []byte{0x9c}},
	{"CMD", []byte{0x9d}},
	{"SYS", []byte{0x9e}},
	{"OPEN", []byte{0x9f}},
	{"CLOSE", []byte{0xa0}},
	{"GET", []byte{0xa1}},
	{"NEW", []byte{0xa2}},
	{"TAB(", []byte{0xa3}},
	{"TO", []byte{0xa4}},
	{"FN", []byte{0xa5}},
	{"SPC(", []byte{0xa6}},
	{"THEN", []byte{0xa7}},
	{"NOT", []byte{0xa8}},
	{"STEP", []byte{0xa9}},
	{"+", []byte{0xaa}},
	{"-", []byte{0xab}},
	{"*", []byte{0xac}},
	{"/", []byte{0xad}},
	{"^", []byte{0xae}},
	{"AND", []byte{0xaf}},
	{"OR", []byte{0xb0}},
	{">", []byte{0xb1}},
	{"=", []byte{0xb2}},
	{"<", []byte{0xb3}},
	{"SGN", []byte{0xb4}},
	{"INT", []byte{0xb5}},
	{"ABS", []byte{0xb6}},
	{"USR", []byte{0xb7}},
	{"FRE", []byte{0xb8}},
	{"POS", []byte{0xb9}},
	{"SQR", []byte{0xba}},
	{"RND", []byte{0xbb}},
	{"LOG", []byte{0xbc}},
	{"EXP", []byte{0xbd}},
	{"COS", []byte{0xbe}},
	{"SIN", []byte{0xbf}},
	{"TAN", []byte{0xc0}},
	{"ATN", []byte{0xc1}},
	{"PEEK", []byte{0xc2}},
	{"LEN", []byte{0xc3}},
	{"STR$", []byte{0xc4}},
	{"VAL", []byte{0xc5}},
	{"ASC", []byte{0xc6}},
	{"CHR$", []byte{0xc7}},
	{"LEFT$", []byte{0xc8}},
	{"RIGHT$", []byte{0xc9}},
	{"MID$", []byte{0xca}},
	{"GO", []byte{0xcb}},
}

// NewBasicV2Table builds the token table used by the C64 and VIC-20 dialects.
func NewBasicV2Table() (*Table, error) {
	return NewTable(basicV2Entries)
}
