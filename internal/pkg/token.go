package pkg

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid      = errors.New("session token invalid")
	ErrTokenParseFailure = errors.New("session token parse failure")
)

// SessionSecret 由 main 从配置注入
var SessionSecret []byte

type SessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// SignSession 将会话ID包进HS256签名的cookie值；过期由存储侧TTL控制，token本身不带exp
func SignSession(sid string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "session",
		},
	})
	return token.SignedString(SessionSecret)
}

// ParseSession 校验签名并取出会话ID
func ParseSession(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		return SessionSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrTokenInvalid
	}
	if !token.Valid {
		return "", ErrTokenParseFailure
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.SID == "" || claims.Subject != "session" {
		return "", ErrTokenInvalid
	}
	return claims.SID, nil
}
