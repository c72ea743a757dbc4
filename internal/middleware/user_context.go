package middleware

import (
	"mdo-portal/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const currentUserKey = "CurrentUser"

// InjectUser резолвит сессию в пользователя: достаём username из подписанной
// куки, подгружаем запись из БД и кладём в контекст запроса. Нет сессии или
// пользователь удалён — остаёмся анонимом, это не ошибка.
func InjectUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uname, ok := sess.Get("user").(string); ok && uname != "" {
			var user models.User
			err := db.WithContext(c.Request.Context()).
				Where("username = ?", uname).
				First(&user).Error
			if err == nil {
				c.Set(currentUserKey, user)
			}
		}

		c.Next()
	}
}

// CurrentUser возвращает пользователя, которого положил InjectUser.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
