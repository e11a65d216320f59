// Package casing converts JSON object keys between camelCase and snake_case.
package casing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

var (
	// snakeSegment matches, in order of preference: an acronym followed by a
	// capitalised word or a word boundary, a word with trailing digits, a lone
	// capital, a digit run.
	snakeSegment = regexp2.MustCompile(`[A-Z]{2,}(?=[A-Z][a-z]+\d*|\b)|[A-Z]?[a-z]+\d*|[A-Z]|\d+`, regexp2.ECMAScript)

	// camelSep matches a run of separators plus the character that follows
	// it. The whitespace set is the ECMAScript one, which is wider than \s.
	camelSep = regexp.MustCompile(`[-_.\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]+(.)?`)
)

// ToSnake lowercases the word segments of key and joins them with "_".
// Segments are acronyms ("HTTP" in "HTTPServer"), capitalised or lowercase
// words with trailing digits, lone capitals and digit runs. A key without any
// segment is returned unchanged.
func ToSnake(key string) string {
	segs := segments(key)
	if len(segs) == 0 {
		return key
	}
	for i, s := range segs {
		segs[i] = strings.ToLower(s)
	}
	return strings.Join(segs, "_")
}

// ToCamel removes separator runs, upper-casing the character that follows
// each run, then lowercases the first character.
func ToCamel(key string) string {
	out := camelSep.ReplaceAllStringFunc(key, func(m string) string {
		return strings.ToUpper(camelSep.FindStringSubmatch(m)[1])
	})
	if out == "" {
		return out
	}
	r, size := utf8.DecodeRuneInString(out)
	return string(unicode.ToLower(r)) + out[size:]
}

// segments returns the word segments of s. Characters outside every segment
// are dropped.
func segments(s string) []string {
	var out []string
	m, err := snakeSegment.FindStringMatch(s)
	for m != nil && err == nil {
		out = append(out, m.String())
		m, err = snakeSegment.FindNextMatch(m)
	}
	return out
}

// ConvertKeys returns a copy of v with fn applied to every map key at every
// depth. Slices are walked element-wise; other values are returned as is.
func ConvertKeys(v any, fn func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fn(k)] = ConvertKeys(val, fn)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = ConvertKeys(val, fn)
		}
		return out
	default:
		return v
	}
}

// SnakeKeys converts every key of a decoded JSON value to snake_case.
func SnakeKeys(v any) any { return ConvertKeys(v, ToSnake) }

// CamelKeys converts every key of a decoded JSON value to camelCase.
func CamelKeys(v any) any { return ConvertKeys(v, ToCamel) }
