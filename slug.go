package slug

import (
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// defaultSuffixLength is used for suffixes the caller did not size
// explicitly (reserved-slug collisions and MinLength padding).
const defaultSuffixLength = 6

// latinFold maps Latin letters that NFKD leaves intact to their
// conventional ASCII spellings. Everything else non-ASCII either
// decomposes into base + combining marks or is treated as a boundary.
var latinFold = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "Th",
	'ł': "l", 'Ł': "L",
	'ħ': "h", 'Ħ': "H",
	'ŧ': "t", 'Ŧ': "T",
	'ŋ': "ng", 'Ŋ': "NG",
	'ı': "i",
	'ĸ': "k",
}

// Make converts an arbitrary string into a URL-safe slug.
//
// The input is NFKD-decomposed so that accented characters split into a
// base letter plus combining marks; the marks are dropped, ASCII
// alphanumerics pass through, and every other code point acts as a word
// boundary collapsed into a single separator. Make is total: it never
// fails, and input with no transliterable content yields an empty string.
func Make(input string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	base := transform(preprocess(input, cfg), cfg)

	suffixLen := cfg.suffixLength
	if suffixLen == 0 && isReserved(base, cfg.reserved) {
		suffixLen = defaultSuffixLength
	}

	var result string
	switch {
	case cfg.suffixLength > 0:
		result = appendSuffix(base, cfg, suffixLen)
	case suffixLen > 0:
		result = appendReservedSuffix(base, cfg, suffixLen)
	default:
		result = truncate(base, cfg.maxLength, cfg.separator)
	}

	return padToMinLength(result, cfg)
}

// preprocess applies CustomReplace substitutions and StripChars removal
// before any unicode handling.
func preprocess(s string, cfg config) string {
	if len(cfg.replacements) > 0 {
		pairs := make([]string, 0, len(cfg.replacements)*2)
		for _, k := range slices.Sorted(maps.Keys(cfg.replacements)) {
			pairs = append(pairs, k, cfg.replacements[k])
		}
		s = strings.NewReplacer(pairs...).Replace(s)
	}
	if cfg.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(cfg.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}
	return s
}

// transform is the core pass: decompose, classify, collapse boundaries.
func transform(s string, cfg config) string {
	var b strings.Builder
	b.Grow(len(s))

	// pending tracks a separator owed before the next emitted character;
	// it is never flushed at the end, so trailing separators cannot occur.
	pending := false
	empty := true

	emit := func(r rune) {
		alnum := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
		if !alnum {
			if !empty {
				pending = true
			}
			return
		}
		if cfg.lowercase && r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if pending {
			b.WriteString(cfg.separator)
			pending = false
		}
		b.WriteRune(r)
		empty = false
	}

	for _, r := range norm.NFKD.String(s) {
		switch {
		case r < utf8.RuneSelf:
			emit(r)
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition: drop, the
			// base letter was already emitted
		case latinFold[r] != "":
			for _, fr := range latinFold[r] {
				emit(fr)
			}
		default:
			// untransliterable: acts as a boundary signal
			emit('-')
		}
	}

	return b.String()
}

// isReserved reports whether base matches a reserved slug, ignoring case.
func isReserved(base string, reserved []string) bool {
	for _, r := range reserved {
		if strings.EqualFold(base, r) {
			return true
		}
	}
	return false
}

// appendSuffix joins base with an explicitly requested random suffix.
// Under MaxLength the suffix survives whole and the base is truncated;
// if even the suffix alone exceeds the limit, the suffix is cut instead.
func appendSuffix(base string, cfg config, n int) string {
	suffix := generateSuffix(n, cfg.lowercase)
	if cfg.maxLength > 0 {
		keep := cfg.maxLength - n - utf8.RuneCountInString(cfg.separator)
		if keep <= 0 {
			return truncateRunes(suffix, cfg.maxLength)
		}
		base = trimTrailingSeparator(truncateRunes(base, keep), cfg.separator)
	}
	if base == "" {
		return suffix
	}
	return base + cfg.separator + suffix
}

// appendReservedSuffix joins base with a collision-avoidance suffix.
// Unlike appendSuffix the base survives whole and the suffix shrinks
// into whatever room MaxLength leaves.
func appendReservedSuffix(base string, cfg config, n int) string {
	if cfg.maxLength > 0 {
		avail := cfg.maxLength - utf8.RuneCountInString(base) - utf8.RuneCountInString(cfg.separator)
		if avail <= 0 {
			return truncate(base, cfg.maxLength, cfg.separator)
		}
		n = min(n, avail)
	}
	suffix := generateSuffix(n, cfg.lowercase)
	if base == "" {
		return suffix
	}
	return base + cfg.separator + suffix
}

// padToMinLength appends a fixed-size random suffix when the result is
// shorter than MinLength. Runs after all other post-processing; MaxLength
// still wins when both are set.
func padToMinLength(result string, cfg config) string {
	if cfg.minLength <= 0 || utf8.RuneCountInString(result) >= cfg.minLength {
		return result
	}

	n := defaultSuffixLength
	sepLen := utf8.RuneCountInString(cfg.separator)
	if result == "" {
		sepLen = 0
	}
	if cfg.maxLength > 0 {
		avail := cfg.maxLength - utf8.RuneCountInString(result) - sepLen
		if avail <= 0 {
			return result
		}
		n = min(n, avail)
	}

	suffix := generateSuffix(n, cfg.lowercase)
	if result == "" {
		return suffix
	}
	return result + cfg.separator + suffix
}

// truncate cuts s to at most max runes and trims any trailing separator
// the cut may have exposed. max <= 0 disables truncation.
func truncate(s string, max int, sep string) string {
	if max <= 0 {
		return s
	}
	return trimTrailingSeparator(truncateRunes(s, max), sep)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func trimTrailingSeparator(s, sep string) string {
	if sep == "" {
		return s
	}
	return strings.TrimRight(s, sep)
}
