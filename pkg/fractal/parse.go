package fractal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// complexPattern matches a complex number of the form "a", "ib", "a+ib",
// "a-ib", "i", "-i", "a+i" or "a-i" with an optional fractional part.
// When both parts are present a sign between them is mandatory.
var complexPattern = regexp.MustCompile(
	`^([-+]?[0-9]+(?:\.[0-9]+)?)?(?:([-+]?)i([0-9]+(?:\.[0-9]+)?)?)?$`)

// ParseComplex parses a textual complex number such as "1", "-i7.5" or
// "2.3-i1". Whitespace is ignored.
func ParseComplex(input string) (complex128, error) {
	s := strings.Join(strings.Fields(input), "")
	if s == "" {
		return 0, fmt.Errorf("fractal: complex number must not be empty")
	}

	groups := complexPattern.FindStringSubmatch(s)
	if groups == nil || (groups[1] == "" && !strings.Contains(s, "i")) {
		return 0, fmt.Errorf("fractal: cannot interpret %q as a complex number", input)
	}
	realPart, imSign, imMagnitude := groups[1], groups[2], groups[3]

	// "2i3" is ambiguous; a sign must separate the parts.
	if realPart != "" && strings.Contains(s, "i") && imSign == "" {
		return 0, fmt.Errorf("fractal: cannot interpret %q as a complex number", input)
	}

	var re, im float64
	var err error

	if realPart != "" {
		if re, err = strconv.ParseFloat(realPart, 64); err != nil {
			return 0, fmt.Errorf("fractal: cannot interpret %q as a complex number", input)
		}
	}
	if strings.Contains(s, "i") {
		if imMagnitude == "" {
			imMagnitude = "1"
		}
		if im, err = strconv.ParseFloat(imSign+imMagnitude, 64); err != nil {
			return 0, fmt.Errorf("fractal: cannot interpret %q as a complex number", input)
		}
	}

	return complex(re, im), nil
}
