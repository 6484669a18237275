package httpapi

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"taskboard/internal/server/auth"
)

// userContextKey is where the middleware stores the authenticated user's id.
const userContextKey = "userID"

// accessTokenMiddleware guards a route group with bearer-token auth. Token
// verification is delegated to auth.ParseToken; the resolved user id is
// stored in the echo context. Every failure, missing header included, gets
// the same generic 401 so clients cannot distinguish expiry from tampering.
func accessTokenMiddleware(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: userContextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return auth.ParseToken(tokenString, secret)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, errorBody{Error: "Unauthorized", Message: "Invalid or expired token"})
		},
	})
}

// userIDFromContext returns the user id attached by accessTokenMiddleware.
func userIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(userContextKey).(int64)
	return id, ok
}
