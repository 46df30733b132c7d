package main

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSignToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	now := time.Now()
	signed, err := signToken(key, " 1234567890 ", time.Hour, now)
	require.NoError(t, err)

	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(signed, &claims, func(*jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}), jwt.WithExpirationRequired(), jwt.WithIssuer(tokenIssuer))
	require.NoError(t, err)
	require.Equal(t, "1234567890", claims.Subject)
	require.NotEmpty(t, claims.ID)
	require.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, time.Second)

	_, err = signToken(key, "  ", time.Hour, now)
	require.Error(t, err)
	_, err = signToken(key, "1", 0, now)
	require.Error(t, err)
}
