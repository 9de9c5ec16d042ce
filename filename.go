package slug

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MakeFilename converts a string into a filename-friendly slug.
//
// Unlike Make it keeps spaces, dots and underscores so the result still
// reads like a file name: runs of spaces/underscores collapse to the first
// character of the run, runs of dots collapse to a single dot, and every
// other non-alphanumeric code point collapses into a single dash. The
// result never starts with a dash or space and never ends with one; a
// trailing dot survives.
//
// MakeFilename honors the Lowercase, CustomReplace and StripChars options.
// Separator, length and suffix options do not apply.
func MakeFilename(input string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := preprocess(input, cfg)

	// Output is pure ASCII, so a byte slice is enough.
	out := make([]byte, 0, len(s))
	prevDash := true // true at start to suppress a leading dash
	prevSpace := true
	prevDot := false

	emit := func(r rune) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			prevDash, prevSpace, prevDot = false, false, false
			out = append(out, byte(r))
		case r >= 'A' && r <= 'Z':
			prevDash, prevSpace, prevDot = false, false, false
			if cfg.lowercase {
				r += 'a' - 'A'
			}
			out = append(out, byte(r))
		case r == ' ' || r == '_':
			if !prevSpace {
				out = append(out, byte(r))
				prevDash, prevSpace, prevDot = false, true, false
			}
		case r == '.':
			if !prevDot {
				out = append(out, '.')
				prevDash, prevSpace, prevDot = false, false, true
			}
		default:
			if !prevDash {
				out = append(out, '-')
				prevDash, prevSpace, prevDot = true, false, false
			}
		}
	}

	for _, r := range norm.NFKD.String(s) {
		switch {
		case r < utf8.RuneSelf:
			emit(r)
		case unicode.Is(unicode.Mn, r):
			// combining mark, base letter already emitted
		case latinFold[r] != "":
			for _, fr := range latinFold[r] {
				emit(fr)
			}
		default:
			emit('-')
		}
	}

	for len(out) > 0 && (out[len(out)-1] == '-' || out[len(out)-1] == ' ') {
		out = out[:len(out)-1]
	}
	return string(out)
}
