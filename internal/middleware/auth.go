package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
    "github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// AdminCookie is the cookie carrying the dashboard access token.
const AdminCookie = "admin_token"

// AdminAuth returns an Echo middleware that validates the dashboard
// access token and injects the subject and role claims into the request
// context.  The token is read from the admin_token cookie, with an
// Authorization bearer header accepted as a fallback for scripted
// access.  Browser requests without a valid token are redirected to the
// sign-in page; non-HTML clients get a plain 401.
func AdminAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            raw := ""
            if cookie, err := c.Cookie(AdminCookie); err == nil {
                raw = cookie.Value
            }
            if raw == "" {
                if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
                    raw = strings.TrimPrefix(auth, "Bearer ")
                }
            }
            if raw == "" {
                return reject(c)
            }

            // Parse the token using the HS256 signing method and our
            // secret.  The callback supplies the signing key and rejects
            // any token signed with a different algorithm.
            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return reject(c)
            }
            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return reject(c)
            }

            // Store the subject (admin email) and role claims in the
            // context for handlers and the role middleware.
            c.Set("admin_email", claims["sub"])
            c.Set("role", claims["role"])
            return next(c)
        }
    }
}

// reject sends an unauthenticated request to the sign-in page when the
// client looks like a browser, or a JSON 401 otherwise.
func reject(c echo.Context) error {
    if strings.Contains(c.Request().Header.Get("Accept"), "text/html") {
        return c.Redirect(http.StatusSeeOther, "/admin/login")
    }
    return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
}
