// Package entity decides whether a string is validly HTML-entity-encoded
// before anyone un-escapes it. The guard exists to prevent double-decoding
// or corrupting text that is already plain UTF-8.
package entity

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Digit-run bounds. Runs longer than these are treated as malformed rather
// than attempted-parsed.
const (
	maxHexDigits = 6
	maxDecDigits = 7
)

var escapePattern = regexp.MustCompile(`&(#[xX][0-9a-fA-F]+|#[0-9]+|[a-zA-Z][a-zA-Z0-9]*);`)

// IsValidEscapeSequence reports whether s contains at least one well-formed
// HTML escape sequence: a numeric character reference whose code point lies
// outside the UTF-16 surrogate range, or a whitelisted named entity.
// Total over all inputs; the empty string yields false.
func IsValidEscapeSequence(s string) bool {
	if s == "" {
		return false
	}
	for _, m := range escapePattern.FindAllStringSubmatch(s, -1) {
		if validReference(m[1]) {
			return true
		}
	}
	return false
}

// UnescapeIfValid decodes HTML entities in s only when the guard accepts it;
// otherwise s is returned byte-for-byte.
func UnescapeIfValid(s string) string {
	if !IsValidEscapeSequence(s) {
		return s
	}
	return html.UnescapeString(s)
}

// validReference checks a single reference body (the part between & and ;).
func validReference(body string) bool {
	switch {
	case strings.HasPrefix(body, "#x"), strings.HasPrefix(body, "#X"):
		digits := body[2:]
		if len(digits) > maxHexDigits {
			return false
		}
		cp, err := strconv.ParseInt(digits, 16, 32)
		if err != nil {
			return false
		}
		return codePointAllowed(cp)
	case strings.HasPrefix(body, "#"):
		digits := body[1:]
		if len(digits) > maxDecDigits {
			return false
		}
		cp, err := strconv.ParseInt(digits, 10, 32)
		if err != nil {
			return false
		}
		return codePointAllowed(cp)
	default:
		return namedEntities[body]
	}
}

// codePointAllowed rejects the UTF-16 surrogate range and anything past the
// Unicode ceiling.
func codePointAllowed(cp int64) bool {
	if cp < 0 {
		return false
	}
	if cp <= 0xD7FF {
		return true
	}
	return cp >= 0xE000 && cp <= 0x10FFFF
}
