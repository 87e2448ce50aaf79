package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/minhtran/phimhub/pkg/constant"
	"github.com/minhtran/phimhub/pkg/response"
)

type Claims struct {
	UserExtID string `json:"user_ext_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	signatureKey []byte
}

func NewJWTService(secretKey string) *JWTService {
	return &JWTService{signatureKey: []byte(secretKey)}
}

func (j *JWTService) GenerateToken(userExtID string, role string) (string, error) {
	if userExtID == "" {
		return "", errors.New("user_ext_id cannot be empty")
	}
	if len(j.signatureKey) == 0 {
		return "", errors.New("signature_key cannot be empty")
	}

	claims := Claims{
		UserExtID: userExtID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.signatureKey)
}

func (j *JWTService) ValidateToken(tokenStr string) (*Claims, error) {
	tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("invalid signing method")
		}
		return j.signatureKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// JWTMiddleware validates the Authorization header and stores the caller's
// identity in the echo context for downstream handlers.
func (j *JWTService) JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(echo.HeaderAuthorization)
			if token == "" {
				return response.Error(c, 401, "unauthorized", "missing authorization token")
			}

			claims, err := j.ValidateToken(token)
			if err != nil {
				return response.Error(c, 401, "unauthorized", err.Error())
			}

			c.Set(string(constant.CtxKeyUserExtID), claims.UserExtID)
			c.Set(string(constant.CtxKeyUserRole), claims.Role)
			return next(c)
		}
	}
}

// GetUserExtIDFromContext extracts user_ext_id from echo context
func GetUserExtIDFromContext(c echo.Context) (string, error) {
	userExtID, ok := c.Get(string(constant.CtxKeyUserExtID)).(string)
	if !ok || userExtID == "" {
		return "", errors.New("user_ext_id not found in context")
	}
	return userExtID, nil
}
