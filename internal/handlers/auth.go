package handlers

import (
	"net/http"
	"strings"

	"mdo-portal/internal/middleware"
	"mdo-portal/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Некорректные данные"})
		return
	}

	form.Username = strings.TrimSpace(form.Username)

	db := h.db.WithContext(c.Request.Context())

	var user models.User
	if err := db.Where("username = ?", form.Username).First(&user).Error; err != nil {
		render(c, http.StatusOK, "login.html", gin.H{"error": "Неверный логин или пароль"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		render(c, http.StatusOK, "login.html", gin.H{"error": "Неверный логин или пароль"})
		return
	}

	// в подписанной куке храним только username, остальное каждый раз
	// поднимает из БД middleware.InjectUser
	sess := sessions.Default(c)
	sess.Set("user", user.Username)
	_ = sess.Save()

	log.Info().Str("user", user.Username).Msg("login")

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		log.Info().Str("user", user.Username).Msg("logout")
	}

	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/login")
}
