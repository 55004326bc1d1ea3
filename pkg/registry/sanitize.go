package registry

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxStringArgSize bounds every string argument, in bytes.
const MaxStringArgSize = 4096

var (
	ErrArgTooLarge = errors.New("argument exceeds maximum allowed size")
	ErrInvalidUTF8 = errors.New("argument contains invalid UTF-8 sequences")
)

// SanitizeString enforces the size limit, rejects invalid UTF-8 and strips
// control characters other than newline, tab and carriage return.
func SanitizeString(s string) (string, error) {
	if len(s) > MaxStringArgSize {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrArgTooLarge, len(s), MaxStringArgSize)
	}
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}

	// Fast path: no control chars.
	clean := true
	for _, r := range s {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

// SanitizeArgs returns a copy of args with every string value sanitized.
// The input map is never modified.
func SanitizeArgs(args map[string]any) (Args, error) {
	out := make(Args, len(args))
	for k, v := range args {
		s, ok := v.(string)
		if !ok {
			out[k] = v
			continue
		}
		clean, err := SanitizeString(s)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = clean
	}
	return out, nil
}
