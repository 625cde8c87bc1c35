package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CORS allows origin ("*" for any) with the given methods and headers.
// Preflight OPTIONS requests are answered for every route.
func CORS(origin string, methods, headers []string) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{origin},
		AllowMethods: methods,
		AllowHeaders: headers,
	})
}
