package adminauth

import (
	"testing"
	"time"

	"limo-booking-service/config"
	"limo-booking-service/internal/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	return New(&config.AdminConfig{PasswordHash: hash, JWTSecret: "jwt-secret", SessionTTL: time.Hour})
}

func TestLogin(t *testing.T) {
	s := newService(t)

	t.Run("success", func(t *testing.T) {
		token, expiresAt, err := s.Login("s3cret")
		require.NoError(t, err)

		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
		assert.NoError(t, s.Validate(token))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := s.Login("guess")
		assert.True(t, errors.IsKind(err, errors.KindUnauthorized))
	})

	t.Run("disabled without hash", func(t *testing.T) {
		disabled := New(&config.AdminConfig{JWTSecret: "jwt-secret"})
		_, _, err := disabled.Login("")
		assert.True(t, errors.IsKind(err, errors.KindUnauthorized))
	})
}

func TestValidate(t *testing.T) {
	s := newService(t)

	t.Run("expired", func(t *testing.T) {
		token, _, err := s.Login("s3cret")
		require.NoError(t, err)

		s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { s.now = time.Now }()

		assert.True(t, errors.IsKind(s.Validate(token), errors.KindUnauthorized))
	})

	t.Run("signed with another secret", func(t *testing.T) {
		other := New(&config.AdminConfig{PasswordHash: string(s.passwordHash), JWTSecret: "other", SessionTTL: time.Hour})
		token, _, err := other.Login("s3cret")
		require.NoError(t, err)

		assert.Error(t, s.Validate(token))
	})

	t.Run("none algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: subject}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		assert.Error(t, s.Validate(token))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Error(t, s.Validate(""))
	})
}
