package jwtinfra

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-bytes-long!"

func TestNewProvider_MissingSecret(t *testing.T) {
	_, err := NewProvider("")
	assert.Error(t, err)
}

func TestSignAndVerify(t *testing.T) {
	p, err := NewProvider(testSecret)
	require.NoError(t, err)

	token, err := p.Sign("a1")
	require.NoError(t, err)

	claims, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.AccountID)
	assert.WithinDuration(t, time.Now().Add(p.expiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerify_WrongSecret(t *testing.T) {
	p1, err := NewProvider(testSecret)
	require.NoError(t, err)
	p2, err := NewProvider("a-completely-different-secret-value")
	require.NoError(t, err)

	token, err := p1.Sign("a1")
	require.NoError(t, err)

	_, err = p2.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Tampered(t *testing.T) {
	p, err := NewProvider(testSecret)
	require.NoError(t, err)

	token, err := p.Sign("a1")
	require.NoError(t, err)

	_, err = p.Verify(token[:len(token)-2] + "xx")
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	p, err := NewProvider(testSecret)
	require.NoError(t, err)

	// Hand-craft a token that expired a minute ago, signed with the same secret.
	claims := Claims{
		AccountID: "a1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = p.Verify(expired)
	assert.Error(t, err)
}

func TestVerify_RejectsNonHMACAlg(t *testing.T) {
	p, err := NewProvider(testSecret)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{AccountID: "a1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = p.Verify(unsigned)
	assert.Error(t, err)
}
