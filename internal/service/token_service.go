package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService emite y valida los tokens de invitado que identifican al
// usuario anónimo dueño de sus resultados. No hay cuentas ni contraseñas:
// el token es la única credencial.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

type GuestClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "face-quiz",
	}
}

// IssueGuestToken genera un id de usuario nuevo y devuelve (userID, token).
func (s *TokenService) IssueGuestToken() (string, string, error) {
	if len(s.secret) == 0 {
		return "", "", ErrTokenInvalid
	}

	userID := uuid.NewString()
	now := time.Now().UTC()
	claims := GuestClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", err
	}
	return userID, signed, nil
}

// ParseToken valida firma y vigencia y devuelve los claims.
func (s *TokenService) ParseToken(token string) (GuestClaims, error) {
	if len(s.secret) == 0 {
		return GuestClaims{}, ErrTokenInvalid
	}

	var claims GuestClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return GuestClaims{}, ErrTokenExpired
		}
		return GuestClaims{}, ErrTokenInvalid
	}
	if !parsed.Valid || claims.UserID == "" {
		return GuestClaims{}, ErrTokenInvalid
	}
	return claims, nil
}
