package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie carrying the admin UI session token.
const SessionCookie = "session"

// Session is the authenticated caller identity extracted from a token.
type Session struct {
	Email string
	Name  string
	Role  string
}

// ErrNoSession covers every failure mode of session extraction: missing
// token, bad signature, wrong algorithm, expiry. The gate fails closed on
// all of them.
var ErrNoSession = errors.New("no valid session")

// SessionReader resolves a request to an authenticated session.
type SessionReader interface {
	Read(r *http.Request) (*Session, error)
}

// JWTSessionReader reads HS256 session tokens from the Authorization header
// (API clients) or the session cookie (admin UI).
type JWTSessionReader struct {
	secret string
}

func NewJWTSessionReader(secret string) *JWTSessionReader {
	return &JWTSessionReader{secret: secret}
}

func (j *JWTSessionReader) Read(r *http.Request) (*Session, error) {
	token := bearerToken(r)
	if token == "" {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			return nil, ErrNoSession
		}
		token = cookie.Value
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(j.secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrNoSession
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if email == "" || role == "" {
		return nil, ErrNoSession
	}

	return &Session{Email: email, Name: name, Role: role}, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
