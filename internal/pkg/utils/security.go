package utils

import (
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/exceptions"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// AccountClaims is the subset of the Cobalt access token the service relies on.
type AccountClaims struct {
	AccountID string `json:"accountId,omitempty"`
	RoleID    string `json:"roleId,omitempty"`
	jwt.RegisteredClaims
}

func ExtractBearerToken(authorizationHeader string) (string, error) {
	if !strings.HasPrefix(authorizationHeader, constvars.AuthorizationBearerPrefix) {
		return "", exceptions.ErrTokenMissing(nil)
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, constvars.AuthorizationBearerPrefix))
	if token == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return token, nil
}

func ParseAccessToken(tokenString, secret string) (*AccountClaims, error) {
	claims := &AccountClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalid(err)
	}

	if !token.Valid {
		return nil, exceptions.ErrTokenInvalid(nil)
	}

	if claims.AccountID == "" {
		claims.AccountID = claims.Subject
	}
	if claims.AccountID == "" {
		return nil, exceptions.ErrTokenAccountMissing(nil)
	}

	return claims, nil
}
