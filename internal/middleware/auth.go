package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth пускает дальше только аутентифицированных. Анонима (в том числе
// сессию, указывающую на удалённого пользователя) отправляем на /login
// редиректом — без 401/403.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
