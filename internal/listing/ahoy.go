package listing

import (
	"regexp"
	"strconv"
	"strings"
)

// Ahoy printed its own two letter special character codes before switching
// to the spelled out names. Both map onto the petcat names the codec
// understands.
var ahoyToPetcat = map[string]string{
	"SC": "CLR",
	"HM": "HOME",
	"CU": "UP",
	"CD": "DOWN",
	"CL": "LEFT",
	"CR": "RIGHT",
	"SS": "SS",
	"IN": "INST",
	"BK": "BLK",
	"WH": "WHT",
	"RD": "RED",
	"CY": "CYN",
	"PU": "PUR",
	"GN": "GRN",
	"BL": "BLU",
	"YE": "YEL",
	"RV": "RVSON",
	"RO": "RVSOFF",
}

// matches a repeat group like {12 "CD"} or a plain brace code like {SC}
var (
	braceGroup  = regexp.MustCompile(`\{\d+\s?"[^"{}]+"\}|\{[^{}]*\}`)
	repeatGroup = regexp.MustCompile(`^\{(\d+)\s?"([^"{}]+)"\}$`)
)

// convertAhoySpecials rewrites Ahoy special character codes in a listing
// line to petcat brace codes, expanding the {n "CODE"} repeat form.
func convertAhoySpecials(line string) string {
	return braceGroup.ReplaceAllStringFunc(line, func(group string) string {
		if m := repeatGroup.FindStringSubmatch(group); m != nil {
			count, err := strconv.Atoi(m[1])
			if err != nil || count < 1 {
				count = 1
			}
			code := "{" + petcatName(m[2]) + "}"
			return strings.Repeat(code, count)
		}

		name := strings.TrimSpace(group[1 : len(group)-1])
		return "{" + petcatName(name) + "}"
	})
}

func petcatName(name string) string {
	if petcat, ok := ahoyToPetcat[strings.ToUpper(name)]; ok {
		return petcat
	}
	return name
}
