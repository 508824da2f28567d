package adminauth

import (
	"time"

	"limo-booking-service/config"
	"limo-booking-service/internal/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	CookieName = "admin_session"
	subject    = "admin"
)

// Service checks the operator password and issues the signed session token
// stored in the admin cookie.
type Service struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func New(cfg *config.AdminConfig) *Service {
	return &Service{
		passwordHash: []byte(cfg.PasswordHash),
		secret:       []byte(cfg.JWTSecret),
		ttl:          cfg.SessionTTL,
		now:          time.Now,
	}
}

// HashPassword produces the value expected in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login returns a session token and its expiry when password matches.
func (s *Service) Login(password string) (string, time.Time, error) {
	if len(s.passwordHash) == 0 || len(s.secret) == 0 {
		return "", time.Time{}, errors.UnauthorizedError("admin login is disabled")
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, errors.UnauthorizedError("invalid password")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.InternalServerError("error sign admin session")
	}
	return signed, expiresAt, nil
}

func (s *Service) Validate(token string) error {
	if token == "" || len(s.secret) == 0 {
		return errors.UnauthorizedError("unauthorized")
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid || claims.Subject != subject {
		return errors.UnauthorizedError("unauthorized")
	}
	return nil
}
