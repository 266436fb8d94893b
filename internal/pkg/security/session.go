package security

import (
	"CreatorHub/internal/api/config"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims 托管身份服务签发的会话令牌载荷
// sub 是该服务分配的用户标识，本服务只透传不解释。
type SessionClaims struct {
	jwt.RegisteredClaims
}

// ValidateSession 验证会话令牌并解析出 Claims
func ValidateSession(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if issuer := config.Cfg.Auth.Issuer; issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名方法: %v", token.Header["alg"])
		}
		return []byte(config.Cfg.Auth.SessionKey), nil
	}, opts...)

	if err != nil {
		return nil, fmt.Errorf("token 解析失败: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token 无效或已过期")
	}
	if claims.Subject == "" {
		return nil, errors.New("token 缺少用户标识")
	}

	return claims, nil
}

// ExtractSignature 从 Token 字符串中提取签名，作注销名单的键
func ExtractSignature(tokenString string) (string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return "", errors.New("token 格式不正确")
	}
	return parts[2], nil
}
