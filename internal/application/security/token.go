package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenCodec issues and parses the stateless HS256 bearer tokens that carry
// the principal between requests.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token carrying the principal's identity claims.
func (codec *TokenCodec) Issue(principal Principal) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    principal.ID,
		"first_name": principal.FirstName,
		"username":   principal.Username,
		"authority":  principal.Authority,
		"jti":        uuid.NewString(),
		"iat":        now.Unix(),
		"exp":        now.Add(codec.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(codec.secret)
}

// Parse validates the token and rebuilds the principal from its claims. The
// password hash never travels in the token.
func (codec *TokenCodec) Parse(tokenString string) (Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return codec.secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return Principal{}, ErrInvalidToken
	}
	authority, ok := claims["authority"].(string)
	if !ok {
		return Principal{}, ErrInvalidToken
	}

	firstName, _ := claims["first_name"].(string)
	username, _ := claims["username"].(string)

	return Principal{
		ID:         uint(userID),
		FirstName:  firstName,
		Username:   username,
		Functional: true,
		Authority:  authority,
	}, nil
}
