package http

import (
	"errors"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Caller roles carried in the JWT "role" claim.
const (
	RoleAdmin = "admin"
	RoleRider = "rider"
)

const principalContextKey = "principal"

// Principal represents the authenticated caller from JWT.
type Principal struct {
	UserID int64
	Role   string
}

// ParseBearer extracts and validates a Bearer JWT from an Authorization
// header value and returns the caller's Principal.
func ParseBearer(header, secret string) (*Principal, error) {
	if header == "" {
		return nil, errors.New("missing authorization")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.New("invalid authorization header")
	}

	return parseJWT(strings.TrimSpace(parts[1]), secret)
}

// parseJWT validates and extracts claims from a JWT token.
func parseJWT(tokenStr, secret string) (*Principal, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}

	type claims struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}

	c, _ := tok.Claims.(*claims)
	if c == nil || c.UserID <= 0 || c.Role == "" {
		return nil, errors.New("invalid claims")
	}

	return &Principal{UserID: c.UserID, Role: strings.ToLower(c.Role)}, nil
}

// AuthMiddleware authenticates every request with a Bearer JWT and stores
// the resulting Principal on the echo context. Requests without a valid
// token are rejected with 401; role checks happen in the handlers.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := ParseBearer(ctx.Request().Header.Get(echo.HeaderAuthorization), secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse(http.StatusUnauthorized, "authentication required"))
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// principalFrom retrieves the authenticated Principal stored by
// AuthMiddleware, nil when the request was not authenticated.
func principalFrom(ctx echo.Context) *Principal {
	principal, _ := ctx.Get(principalContextKey).(*Principal)
	return principal
}
