package content

import (
	"fmt"
	"sort"
	"strings"
)

// hashString is a djb2-xor hash over the token string, kept at 32 bits
// for a stable short hex form. Cache-key quality only, not cryptographic.
func hashString(value string) string {
	var hash uint32 = 5381
	for _, b := range []byte(value) {
		hash = (hash * 33) ^ uint32(b)
	}
	return fmt.Sprintf("%x", hash)
}

// Fingerprint derives the deterministic content version token from a set
// of slug@version-lastUpdatedISO tokens. The tokens are sorted before
// hashing so construction order never changes the result; the entry
// count is appended for quick at-a-glance diffing.
func Fingerprint(tokens []string, entryCount int) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)

	h := hashString(strings.Join(sorted, "|"))
	if len(h) > 8 {
		h = h[:8]
	}
	return fmt.Sprintf("%s-%d", h, entryCount)
}
