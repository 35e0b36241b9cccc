package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

const CookieName = "PMU_SESSION"

// Session resolves the caller's employee id from a signed session token and
// exposes it as "uid" on the request context. It looks in the session cookie
// first, then the Authorization header. Requests without a valid token get 401.
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := ""
			if ck, err := c.Cookie(CookieName); err == nil {
				raw = ck.Value
			}
			if raw == "" {
				if h := c.Request().Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
					raw = strings.TrimPrefix(h, "Bearer ")
				}
			}
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			uid, err := ParseToken(raw, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid session"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

func NewToken(uid uint, secret string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"uid": float64(uid)})
	return tok.SignedString([]byte(secret))
}

func ParseToken(raw, secret string) (uint, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return 0, jwt.ErrSignatureInvalid
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return 0, jwt.ErrSignatureInvalid
	}
	return uint(uid), nil
}

// UID reads the employee id the Session middleware stored on the context.
func UID(c echo.Context) uint {
	v, _ := c.Get("uid").(uint)
	return v
}
