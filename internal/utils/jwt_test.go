package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "auth-server"
	testSignKey = "test-sign-key"
	testUserID  = "64f1b2a3c4d5e6f708192a3b"
	testLogin   = "alice"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, testLogin, time.Hour, testSignKey)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testUserID, token.UserID)
	assert.Equal(t, testLogin, token.Login)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		login    string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", userID: testUserID, login: testLogin, duration: time.Hour, signKey: testSignKey},
		{name: "empty userID", issuer: testIssuer, login: testLogin, duration: time.Hour, signKey: testSignKey},
		{name: "empty login", issuer: testIssuer, userID: testUserID, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, userID: testUserID, login: testLogin, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, userID: testUserID, login: testLogin, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.login, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testUserID, testLogin, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)

	require.NoError(t, err)
	assert.Equal(t, testUserID, parsed.UserID)
	assert.Equal(t, testLogin, parsed.Login)
	assert.True(t, parsed.Valid)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testUserID, testLogin, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "another-key", testIssuer)

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("some-other-service", testUserID, testLogin, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testUserID, testLogin, time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)

	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

// a token signed with "none" must never pass signature verification
func TestValidateAndParseJWTToken_ForgedAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-jwt", testSignKey, testIssuer)
	assert.Error(t, err)
}
