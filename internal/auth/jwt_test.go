package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testTokenService() TokenService {
	return TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "krisenkanon-test",
		Duration: time.Hour,
	}
}

func TestTokenService_SignAndParse(t *testing.T) {
	ts := testTokenService()
	editor := &Editor{ID: "ed-1", Handle: "mira", TokenVersion: 3}

	token, exp, err := ts.Sign(editor)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "ed-1", claims.EditorID)
	require.Equal(t, "mira", claims.Handle)
	require.Equal(t, 3, claims.TokenVersion)
	require.Equal(t, "krisenkanon-test", claims.Issuer)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	ts := testTokenService()
	token, _, err := ts.Sign(&Editor{ID: "ed-1", Handle: "mira"})
	require.NoError(t, err)

	other := testTokenService()
	other.Secret = []byte("different-secret")
	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	ts := testTokenService()
	ts.Duration = -time.Minute

	token, _, err := ts.Sign(&Editor{ID: "ed-1", Handle: "mira"})
	require.NoError(t, err)

	_, err = ts.Parse(token)
	require.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	_, err := testTokenService().Parse("not.a.token")
	require.Error(t, err)
}
