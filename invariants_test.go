package slug_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/slug"
)

// inputs exercising the transform from every direction: plain ASCII,
// degenerate input, heavy diacritics, untransliterable scripts, and
// already-slugged strings.
var invariantInputs = []string{
	"",
	" ",
	"-",
	"---",
	"!!!",
	"a",
	"A",
	"7",
	"Hello World",
	"Hello, World!",
	"  --Leading/Trailing--  ",
	"Café déjà vu",
	"Über Größe straße",
	"Zażółć gęślą jaźń",
	"Æúű--cool?",
	"Côte d'Ivoire 2024",
	"2024 Report v2",
	"user@example.com",
	"path/to/file.txt",
	"Hello 😀 World 🌍",
	"Война и мир",
	"日本語のテキスト",
	"already-a-slug",
	"MiXeD CaSe InPuT",
	"\t\n\r ",
	"ﬁnancial ½ ™",
	strings.Repeat("x y ", 100),
}

var (
	lowerSlugRe = regexp.MustCompile(`^[a-z0-9-]*$`)
	mixedSlugRe = regexp.MustCompile(`^[a-zA-Z0-9-]*$`)
)

func TestOutputInvariants(t *testing.T) {
	t.Parallel()

	for _, input := range invariantInputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			lower := slug.Make(input)
			preserved := slug.Make(input, slug.Lowercase(false))

			for _, s := range []string{lower, preserved} {
				assert.False(t, strings.HasPrefix(s, "-"), "no leading separator: %q", s)
				assert.False(t, strings.HasSuffix(s, "-"), "no trailing separator: %q", s)
				assert.NotContains(t, s, "--", "no consecutive separators: %q", s)
			}

			assert.Regexp(t, lowerSlugRe, lower)
			assert.Regexp(t, mixedSlugRe, preserved)

			// Case relation: lowercasing the case-preserving result must
			// give the default result.
			assert.Equal(t, lower, strings.ToLower(preserved))

			// Idempotence: slug output is a fixed point of the transform.
			assert.Equal(t, lower, slug.Make(lower))
			assert.Equal(t, preserved, slug.Make(preserved, slug.Lowercase(false)))
		})
	}
}

func TestEmptyInputAlwaysEmpty(t *testing.T) {
	assert.Equal(t, "", slug.Make(""))
	assert.Equal(t, "", slug.Make("", slug.Lowercase(false)))
	assert.Equal(t, "", slug.Make("", slug.Separator("_")))
	assert.Equal(t, "", slug.MakeFilename(""))
}

func TestFilenameInvariants(t *testing.T) {
	t.Parallel()

	fileRe := regexp.MustCompile(`^[a-zA-Z0-9 ._-]*$`)

	for _, input := range invariantInputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			result := slug.MakeFilename(input, slug.Lowercase(false))
			assert.Regexp(t, fileRe, result)
			assert.False(t, strings.HasSuffix(result, "-"))
			assert.False(t, strings.HasSuffix(result, " "))
			assert.False(t, strings.HasPrefix(result, "-"))
			assert.False(t, strings.HasPrefix(result, " "))
		})
	}
}
