package basic

import (
	"fmt"
	"strings"
)

// specialChar maps a petcat style brace code to its PETSCII byte value.
type specialChar struct {
	name string
	code byte
}

// Canonical control and special character codes. These are matched inside and
// outside of quoted strings, the magazines used them to print otherwise
// untypeable PETSCII bytes. The first name of a byte value is the canonical
// one used when detokenizing.
var specialChars = []specialChar{
	{"WHT", 0x05},
	{"RETURN", 0x0d},
	{"DOWN", 0x11},
	{"RVSON", 0x12},
	{"HOME", 0x13},
	{"DEL", 0x14},
	{"RED", 0x1c},
	{"RIGHT", 0x1d},
	{"GRN", 0x1e},
	{"BLU", 0x1f},
	{"ORNG", 0x81},
	{"F1", 0x85},
	{"F3", 0x86},
	{"F5", 0x87},
	{"F7", 0x88},
	{"F2", 0x89},
	{"F4", 0x8a},
	{"F6", 0x8b},
	{"F8", 0x8c},
	{"s RETURN", 0x8d},
	{"BLK", 0x90},
	{"UP", 0x91},
	{"RVSOFF", 0x92},
	{"CLR", 0x93},
	{"INST", 0x94},
	{"BRN", 0x95},
	{"LRED", 0x96},
	{"GRY1", 0x97},
	{"GRY2", 0x98},
	{"LGRN", 0x99},
	{"LBLU", 0x9a},
	{"GRY3", 0x9b},
	{"PUR", 0x9c},
	{"LEFT", 0x9d},
	{"YEL", 0x9e},
	{"CYN", 0x9f},
	{"SS", 0xa0},
	{"PI", 0xff},
}

// Encode-only aliases for keys whose PETSCII value lies in the plain text
// range or that have a canonical code above.
var specialAliases = []specialChar{
	{"EP", 0x5c},
	{"UP_ARROW", 0x5e},
	{"LEFT_ARROW", 0x5f},
	{"s SPACE", 0xa0},
	{"s UP_ARROW", 0xde},
}

// Shifted letters {s A}..{s Z} occupy $C1..$DA, Commodore key graphics
// {c A}..{c Z} are scattered over $A1..$BF following the keyboard layout.
var commodoreKeyCodes = [26]byte{
	0xb0, 0xbf, 0xbc, 0xac, 0xb1, 0xbb, 0xa5, 0xb4, 0xa2, 0xb5,
	0xa1, 0xb6, 0xa7, 0xaa, 0xb9, 0xaf, 0xab, 0xb2, 0xae, 0xa3,
	0xb8, 0xbe, 0xb3, 0xbd, 0xb7, 0xad,
}

var (
	specialByName map[string]byte // keyed by upper cased name
	specialByCode map[byte]string // values keep the petcat display casing
)

func init() {
	specialByName = make(map[string]byte, len(specialChars)+len(specialAliases)+52)
	specialByCode = make(map[byte]string, len(specialChars)+52)

	register := func(name string, code byte, canonical bool) {
		specialByName[strings.ToUpper(name)] = code
		if canonical {
			if _, ok := specialByCode[code]; !ok {
				specialByCode[code] = name
			}
		}
	}

	for _, sc := range specialChars {
		register(sc.name, sc.code, true)
	}
	for _, sc := range specialAliases {
		register(sc.name, sc.code, false)
	}
	for i := range byte(26) {
		register(fmt.Sprintf("s %c", 'A'+i), 0xc1+i, true)
		register(fmt.Sprintf("c %c", 'A'+i), commodoreKeyCodes[i], true)
	}
}

// SpecialCharCode returns the PETSCII byte for a petcat brace code name.
// Names are matched case insensitively.
func SpecialCharCode(name string) (byte, bool) {
	code, ok := specialByName[strings.ToUpper(name)]
	return code, ok
}

// SpecialCharName returns the canonical petcat name for a PETSCII byte.
func SpecialCharName(code byte) (string, bool) {
	name, ok := specialByCode[code]
	return name, ok
}
