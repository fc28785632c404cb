package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := IssueAdminToken("ops@manthmwear.in", "secret", time.Hour)
	require.NoError(t, err)

	email, err := ParseAdminToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "ops@manthmwear.in", email)
}

func TestParseAdminTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueAdminToken("ops@manthmwear.in", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseAdminTokenRejectsExpired(t *testing.T) {
	token, err := IssueAdminToken("ops@manthmwear.in", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, "secret")
	assert.Error(t, err)
}

func TestParseAdminTokenRejectsGarbage(t *testing.T) {
	_, err := ParseAdminToken("not-a-token", "secret")
	assert.Error(t, err)
}
