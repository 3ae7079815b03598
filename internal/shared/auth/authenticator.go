package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieToken  = "token"
	bearerPrefix = "Bearer "
)

// Authenticator decides whether a dashboard request carries a valid session.
//
//go:generate mockgen -source=authenticator.go -destination=./mocks/authenticator_mock.go -package=mocks
type Authenticator interface {
	IsAuthenticated(r *http.Request) bool
}

type jwtAuthenticator struct {
	secret []byte
	now    func() time.Time
}

// NewJWTAuthenticator accepts HS256 tokens signed with secret, sent either as a
// bearer token or in the "token" cookie set by the dashboard login.
func NewJWTAuthenticator(secret string) Authenticator {
	return &jwtAuthenticator{secret: []byte(secret), now: time.Now}
}

func (a *jwtAuthenticator) IsAuthenticated(r *http.Request) bool {
	tokenString := tokenFromRequest(r)
	if tokenString == "" {
		return false
	}
	return a.validate(tokenString) == nil
}

func (a *jwtAuthenticator) validate(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}

func tokenFromRequest(r *http.Request) string {
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return strings.TrimSpace(header[len(bearerPrefix):])
		}
		return ""
	}
	if cookie, err := r.Cookie(cookieToken); err == nil {
		return cookie.Value
	}
	return ""
}

// IssueToken signs a session token for subject. Used by tooling and tests; the
// dashboard's own login issues tokens with the same secret.
func IssueToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
