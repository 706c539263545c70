package content

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint_OrderIndependent(t *testing.T) {
	tokens := []string{
		"klima@1.0.0-2025-01-01",
		"wasser@2.1.0-2025-02-10",
		"energie@0.9.0-2024-12-24",
		"boden@1.1.1-2025-03-03",
	}

	want := Fingerprint(tokens, 4)
	for i := 0; i < 10; i++ {
		shuffled := make([]string, len(tokens))
		copy(shuffled, tokens)
		rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		require.Equal(t, want, Fingerprint(shuffled, 4))
	}
}

func TestFingerprint_SensitiveToVersionAndTimestamp(t *testing.T) {
	base := []string{"klima@1.0.0-2025-01-01", "wasser@2.1.0-2025-02-10"}
	bumpedVersion := []string{"klima@1.0.1-2025-01-01", "wasser@2.1.0-2025-02-10"}
	bumpedDate := []string{"klima@1.0.0-2025-01-02", "wasser@2.1.0-2025-02-10"}

	require.NotEqual(t, Fingerprint(base, 2), Fingerprint(bumpedVersion, 2))
	require.NotEqual(t, Fingerprint(base, 2), Fingerprint(bumpedDate, 2))
}

func TestFingerprint_Shape(t *testing.T) {
	fp := Fingerprint([]string{"a@1-x", "b@2-y"}, 2)
	parts := strings.Split(fp, "-")
	require.Len(t, parts, 2)
	require.LessOrEqual(t, len(parts[0]), 8)
	require.NotEmpty(t, parts[0])
	require.Equal(t, "2", parts[1])
}

func TestFingerprint_CountSuffixDiffers(t *testing.T) {
	tokens := []string{"a@1-x"}
	require.NotEqual(t, Fingerprint(tokens, 1), Fingerprint(tokens, 2))
}
