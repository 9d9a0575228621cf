package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
)

// AdminMiddleware: s'encadena després d'AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, _ := c.Get(ContextIsAdmin)
		if admin, ok := isAdmin.(bool); !ok || !admin {
			httperr.Forbidden(c, "admin_only", "Accés no permès, només els administradors poden realitzar aquesta acció.")
			c.Abort()
			return
		}

		c.Next()
	}
}
