package basic

// BASIC 7.0 escape prefixes. Keywords behind a prefix tokenize to two bytes:
// $CE introduces the secondary function set, $FE the secondary statement set.
const (
	escapePrefixFunc = 0xce
	escapePrefixStmt = 0xfe
)

// BASIC 7.0 single byte keyword set, following the V2 set from $CC on.
// $CE and $FE are escape prefixes and must not appear here.
var basic70Entries = []Entry{
	{"RGR", []byte{0xcc}},
	{"RCLR", []byte{0xcd}},
	{"JOY", []byte{0xcf}},
	{"RDOT", []byte{0xd0}},
	{"DEC", []byte{0xd1}},
	{"HEX$", []byte{0xd2}},
	{"ERR$", []byte{0xd3}},
	{"INSTR", []byte{0xd4}},
	{"ELSE", []byte{0xd5}},
	{"RESUME", []byte{0xd6}},
	{"TRAP", []byte{0xd7}},
	{"TRON", []byte{0xd8}},
	{"TROFF", []byte{0xd9}},
	{"SOUND", []byte{0xda}},
	{"VOL", []byte{0xdb}},
	{"AUTO", []byte{0xdc}},
	{"PUDEF", []byte{0xdd}},
	{"GRAPHIC", []byte{0xde}},
	{"PAINT", []byte{0xdf}},
	{"CHAR", []byte{0xe0}},
	{"BOX", []byte{0xe1}},
	{"CIRCLE", []byte{0xe2}},
	{"GSHAPE", []byte{0xe3}},
	{"SSHAPE", []byte{0xe4}},
	{"DRAW", []byte{0xe5}},
	{"LOCATE", []byte{0xe6}},
	{"COLOR", []byte{0xe7}},
	{"SCNCLR", []byte{0xe8}},
	{"SCALE", []byte{0xe9}},
	{"HELP", []byte{0xea}},
	{"DO", []byte{0xeb}},
	{"LOOP", []byte{0xec}},
	{"EXIT", []byte{0xed}},
	{"DIRECTORY", []byte{0xee}},
	{"DSAVE", []byte{0xef}},
	{"DLOAD", []byte{0xf0}},
	{"HEADER", []byte{0xf1}},
	{"SCRATCH", []byte{0xf2}},
	{"COLLECT", []byte{0xf3}},
	{"COPY", []byte{0xf4}},
	{"RENAME", []byte{0xf5}},
	{"BACKUP", []byte{0xf6}},
	{"DELETE", []byte{0xf7}},
	{"RENUMBER", []byte{0xf8}},
	{"KEY", []byte{0xf9}},
	{"MONITOR", []byte{0xfa}},
	{"USING", []byte{0xfb}},
	{"UNTIL", []byte{0xfc}},
	{"WHILE", []byte{0xfd}},
}

// Function set behind the $CE escape prefix.
var basic70EscapeFuncEntries = []Entry{
	{"POT", []byte{escapePrefixFunc, 0x02}},
	{"BUMP", []byte{escapePrefixFunc, 0x03}},
	{"PEN", []byte{escapePrefixFunc, 0x04}},
	{"RSPPOS", []byte{escapePrefixFunc, 0x05}},
	{"RSPRITE", []byte{escapePrefixFunc, 0x06}},
	{"RSPCOLOR", []byte{escapePrefixFunc, 0x07}},
	{"XOR", []byte{escapePrefixFunc, 0x08}},
	{"RWINDOW", []byte{escapePrefixFunc, 0x09}},
	{"POINTER", []byte{escapePrefixFunc, 0x0a}},
}

// Statement set behind the $FE escape prefix. Second bytes $20 and $22 are
// unassigned on the machine.
var basic70EscapeStmtEntries = []Entry{
	{"BANK", []byte{escapePrefixStmt, 0x02}},
	{"FILTER", []byte{escapePrefixStmt, 0x03}},
	{"PLAY", []byte{escapePrefixStmt, 0x04}},
	{"TEMPO", []byte{escapePrefixStmt, 0x05}},
	{"MOVSPR", []byte{escapePrefixStmt, 0x06}},
	{"SPRITE", []byte{escapePrefixStmt, 0x07}},
	{"SPRCOLOR", []byte{escapePrefixStmt, 0x08}},
	{"RREG", []byte{escapePrefixStmt, 0x09}},
	{"ENVELOPE", []byte{escapePrefixStmt, 0x0a}},
	{"SLEEP", []byte{escapePrefixStmt, 0x0b}},
	{"CATALOG", []byte{escapePrefixStmt, 0x0c}},
	{"DOPEN", []byte{escapePrefixStmt, 0x0d}},
	{"APPEND", []byte{escapePrefixStmt, 0x0e}},
	{"DCLOSE", []byte{escapePrefixStmt, 0x0f}},
	{"BSAVE", []byte{escapePrefixStmt, 0x10}},
	{"BLOAD", []byte{escapePrefixStmt, 0x11}},
	{"RECORD", []byte{escapePrefixStmt, 0x12}},
	{"CONCAT", []byte{escapePrefixStmt, 0x13}},
	{"DVERIFY", []byte{escapePrefixStmt, 0x14}},
	{"DCLEAR", []byte{escapePrefixStmt, 0x15}},
	{"SPRSAV", []byte{escapePrefixStmt, 0x16}},
	{"COLLISION", []byte{escapePrefixStmt, 0x17}},
	{"BEGIN", []byte{escapePrefixStmt, 0x18}},
	{"BEND", []byte{escapePrefixStmt, 0x19}},
	{"WINDOW", []byte{escapePrefixStmt, 0x1a}},
	{"BOOT", []byte{escapePrefixStmt, 0x1b}},
	{"WIDTH", []byte{escapePrefixStmt, 0x1c}},
	{"SPRDEF", []byte{escapePrefixStmt, 0x1d}},
	{"QUIT", []byte{escapePrefixStmt, 0x1e}},
	{"STASH", []byte{escapePrefixStmt, 0x1f}},
	{"FETCH", []byte{escapePrefixStmt, 0x21}},
	{"SWAP", []byte{escapePrefixStmt, 0x23}},
	{"OFF", []byte{escapePrefixStmt, 0x24}},
	{"FAST", []byte{escapePrefixStmt, 0x25}},
	{"SLOW", []byte{escapePrefixStmt, 0x26}},
}

// NewBasic70Table builds the C128 token table: the V2 keyword set extended by
// the BASIC 7.0 single byte keywords and both escaped secondary sets.
func NewBasic70Table() (*Table, error) {
	entries := make([]Entry, 0, len(basicV2Entries)+len(basic70Entries)+
		len(basic70EscapeFuncEntries)+len(basic70EscapeStmtEntries))
	entries = append(entries, basicV2Entries...)
	entries = append(entries, basic70Entries...)
	entries = append(entries, basic70EscapeFuncEntries...)
	entries = append(entries, basic70EscapeStmtEntries...)
	return NewTable(entries)
}
