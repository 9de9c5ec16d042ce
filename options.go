package slug

// Option configures slug generation.
type Option func(*config)

type config struct {
	separator    string
	lowercase    bool
	maxLength    int
	minLength    int
	suffixLength int
	stripChars   string
	replacements map[string]string
	reserved     []string
}

func defaultConfig() config {
	return config{
		separator: "-",
		lowercase: true,
	}
}

// Lowercase controls whether ASCII letters are lowercased.
// Enabled by default; pass false to preserve the input casing.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// Separator sets the string emitted between word segments.
// Defaults to "-". An empty separator joins segments directly.
func Separator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// MaxLength truncates the slug to at most n runes.
// Zero or negative disables truncation.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// MinLength pads slugs shorter than n runes with a random suffix.
// Zero or negative disables padding. When combined with MaxLength,
// MaxLength takes priority and the padding suffix shrinks to fit.
func MinLength(n int) Option {
	return func(c *config) {
		c.minLength = n
	}
}

// StripChars removes the given characters from the input before processing.
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace applies string replacements before slugification.
// Useful for domain-specific mappings like "&" -> "and".
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.replacements = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of n runes,
// separated from the slug body by the configured separator.
// Zero or negative disables the suffix.
func WithSuffix(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.suffixLength = n
		}
	}
}

// ReservedSlugs prevents the listed slugs (compared case-insensitively)
// from being returned as-is by appending a random suffix.
func ReservedSlugs(slugs ...string) Option {
	return func(c *config) {
		c.reserved = slugs
	}
}
