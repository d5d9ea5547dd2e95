package oklchtheme

import (
	"regexp"
	"strconv"
	"strings"
)

// literalPattern matches a complete oklch(...) literal.
// Lightness may be a percentage; chroma and hue are bare numbers.
var literalPattern = regexp.MustCompile(`^oklch\(\s*([\d.]+%?)\s+([\d.]+)\s+([\d.]+)\s*\)$`)

// Triple is an OKLCH color value.
// L is on the 0-1 scale, rounded to 3 decimals.
type Triple struct {
	L float64
	C float64
	H float64
}

// ParseTriple parses an oklch(<l> <c> <h>) literal.
// It returns false when s is not an OKLCH literal.
func ParseTriple(s string) (Triple, bool) {
	m := literalPattern.FindStringSubmatch(s)
	if m == nil {
		return Triple{}, false
	}

	l, ok := parseLightness(m[1])
	if !ok {
		return Triple{}, false
	}
	c, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Triple{}, false
	}
	h, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Triple{}, false
	}

	return Triple{L: l, C: c, H: h}, true
}

// parseLightness converts "50%" or "0.5" to 0.5, rounded to 3 decimals.
func parseLightness(raw string) (float64, bool) {
	percent := strings.HasSuffix(raw, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
	if err != nil {
		return 0, false
	}
	if percent {
		v /= 100
	}

	// Round through a fixed 3-decimal text form so "0.5" and "50%" land on
	// the same float64.
	v, err = strconv.ParseFloat(strconv.FormatFloat(v, 'f', 3, 64), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Equal reports exact component-wise equality.
func (t Triple) Equal(o Triple) bool {
	return t.L == o.L && t.C == o.C && t.H == o.H
}

// String renders the triple as an oklch() literal, e.g. "oklch(0.6 0.15 250)".
func (t Triple) String() string {
	var b strings.Builder
	b.WriteString("oklch(")
	b.WriteString(formatNumber(t.L))
	b.WriteByte(' ')
	b.WriteString(formatNumber(t.C))
	b.WriteByte(' ')
	b.WriteString(formatNumber(t.H))
	b.WriteByte(')')
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
