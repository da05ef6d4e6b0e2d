package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soundhire/internal/pkg/flash"
	"soundhire/internal/pkg/jwt"
)

// AdminCookie carries the signed admin-session claim. It is a browser
// session cookie: the claim lives only as long as the session does.
const AdminCookie = "soundhire_admin"

// AdminAuth guards admin-only routes. A missing or invalid claim redirects
// to the login page with a warning.
func AdminAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookie)
		if err != nil || token == "" {
			flash.Add(c, flash.LevelWarning, "Please log in to access the admin dashboard")
			c.Redirect(http.StatusFound, "/admin/login/")
			c.Abort()
			return
		}

		if _, err := jwtService.ValidateToken(token); err != nil {
			flash.Add(c, flash.LevelWarning, "Please log in to access the admin dashboard")
			c.Redirect(http.StatusFound, "/admin/login/")
			c.Abort()
			return
		}

		c.Next()
	}
}

// IsAdmin reports whether the request carries a valid admin claim, without
// redirecting. Used by the login page to skip straight to the dashboard.
func IsAdmin(c *gin.Context, jwtService *jwt.Service) bool {
	token, err := c.Cookie(AdminCookie)
	if err != nil || token == "" {
		return false
	}
	_, err = jwtService.ValidateToken(token)
	return err == nil
}
