// Package boxname derives Sandboxie box names from account display names.
package boxname

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// DefaultPrefix namespaces every box this tool creates.
const DefaultPrefix = "Viber_"

// minExtra is how many characters a derived name must carry beyond the
// prefix before it is kept. Shorter results use a random suffix.
const minExtra = 2

// fallbackLen is the number of hex characters in a random suffix.
const fallbackLen = 8

// MaxLen is the longest box name Sandboxie accepts.
const MaxLen = 32

// validRegex matches names that are safe both as a [section] header and as
// a /box: argument.
var validRegex = regexp.MustCompile(`^[A-Za-z0-9_]{1,32}$`)

// Derive maps an account name to a box name: prefix followed by the ASCII
// letters and digits of name, cut to MaxLen. Degenerate names (too few
// usable characters) get prefix plus 8 random lowercase hex characters
// instead.
func Derive(prefix, name string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	var b strings.Builder
	b.WriteString(prefix)
	for _, r := range name {
		if isASCIIAlnum(r) {
			b.WriteRune(r)
		}
	}

	id := b.String()
	if len(id) <= len(prefix)+minExtra {
		return prefix + randomSuffix()
	}
	return truncate(id, MaxLen)
}

// Unique returns id if it is free, otherwise id with the first free
// numeric suffix (_2, _3, ...).
func Unique(id string, taken func(string) bool) string {
	if !taken(id) {
		return id
	}
	for n := 2; ; n++ {
		suffix := fmt.Sprintf("_%d", n)
		candidate := truncate(id, MaxLen-len(suffix)) + suffix
		if !taken(candidate) {
			return candidate
		}
	}
}

// Valid reports whether id can be used as a box name.
func Valid(id string) bool {
	return validRegex.MatchString(id)
}

// IsFallback reports whether id has the random-suffix shape for prefix.
func IsFallback(prefix, id string) bool {
	suffix, ok := strings.CutPrefix(id, prefix)
	if !ok || len(suffix) != fallbackLen {
		return false
	}
	for _, r := range suffix {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return false
		}
	}
	return true
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:fallbackLen]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func isASCIIAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
