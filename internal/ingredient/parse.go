// Package ingredient turns free-text recipe ingredient lines into structured
// data: a parsed name/quantity/unit triple, a grocery category, a purchase
// unit and an estimated price. Everything here is a best-effort heuristic
// over Spanish recipe text; no function in this package ever fails.
package ingredient

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line is one parsed ingredient line. Quantity defaults to 1 when the text
// carries none; Unit may be empty (nothing to display).
type Line struct {
	Name     string
	Quantity float64
	Unit     string
}

// lineRe captures an optional leading quantity (integer, comma/dot decimal,
// or simple fraction), an optional unit token, an optional "de" connector,
// and the ingredient name. Unit alternatives are ordered longest-first so
// "gramos" is not consumed as "g".
var lineRe = regexp.MustCompile(`^(\d+\s*/\s*\d+|\d+(?:[.,]\d+)?)\s*` +
	`(?:(gramos|kilos|litros|litro|cucharaditas|cucharadita|cucharadas|cucharada|tazas|taza|unidades|uds|gr|ud|un|kg|ml|g|l)\b\.?\s*)?` +
	`(?:de\s+)?(.+)$`)

// canonicalUnits maps every recognized unit synonym to its short form.
var canonicalUnits = map[string]string{
	"g":            "g",
	"gr":           "g",
	"gramos":       "g",
	"kg":           "kg",
	"kilos":        "kg",
	"ml":           "ml",
	"l":            "l",
	"litro":        "l",
	"litros":       "l",
	"cucharada":    "cucharada",
	"cucharadas":   "cucharada",
	"cucharadita":  "cucharadita",
	"cucharaditas": "cucharadita",
	"taza":         "taza",
	"tazas":        "taza",
	"unidades":     "unidades",
	"ud":           "unidades",
	"uds":          "unidades",
	"un":           "unidades",
}

// Parse extracts name, quantity and unit from one free-text ingredient line.
// It never fails: text with no leading quantity degrades to quantity 1 with
// the whole trimmed string as the name, and a missing unit is inferred from
// the name. Parsing the same string twice always yields the same Line.
func Parse(raw string) Line {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return Line{Name: "", Quantity: 1}
	}

	m := lineRe.FindStringSubmatch(text)
	if m == nil {
		// Pure text such as "sal al gusto": keep it whole.
		name := capitalize(text)
		return Line{Name: name, Quantity: 1, Unit: InferUnit(name)}
	}

	qty := parseQuantity(m[1])
	unit := canonicalUnits[m[2]]
	name := capitalize(strings.TrimSpace(m[3]))
	if unit == "" {
		unit = InferUnit(name)
	}
	return Line{Name: name, Quantity: qty, Unit: unit}
}

// parseQuantity evaluates "a/b" fractions and comma-or-dot decimals.
// The token already matched the quantity pattern, so failures only happen
// on degenerate fractions; those fall back to 1.
func parseQuantity(token string) float64 {
	if num, den, ok := strings.Cut(token, "/"); ok {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return 1
		}
		return n / d
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64)
	if err != nil {
		return 1
	}
	return v
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
