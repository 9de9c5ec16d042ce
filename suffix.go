package slug

import (
	"crypto/rand"
	"time"
)

const (
	suffixAlphabetLower = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixAlphabetMixed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// generateSuffix returns n random alphanumeric characters. Entropy comes
// from crypto/rand; on read failure it degrades to time-based entropy
// (degraded but functional) rather than surfacing an error.
func generateSuffix(n int, lowercase bool) string {
	if n <= 0 {
		return ""
	}

	alphabet := suffixAlphabetLower
	if !lowercase {
		alphabet = suffixAlphabetMixed
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		seed := uint64(time.Now().UnixNano())
		for i := range buf {
			seed = seed*6364136223846793005 + 1442695040888963407
			buf[i] = byte(seed >> 33)
		}
	}

	out := make([]byte, n)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out)
}
