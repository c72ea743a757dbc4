package server

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"mdo-portal/internal/config"
	"mdo-portal/internal/handlers"
	"mdo-portal/internal/middleware"
	"mdo-portal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionMaxAge = 12 * 60 * 60 // секунд

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"fmtDate": func(t time.Time) string { return t.Format("02.01.2006") },
	}).ParseFS(web.FS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	staticFS, _ := fs.Sub(web.FS, "static")
	r.StaticFS("/static", http.FS(staticFS))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("mdo_session", store))

	r.Use(middleware.InjectUser(db))

	h := handlers.New(db)

	// ГЛАВНАЯ
	r.GET("/", h.IndexPage)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// СВОДКА ПО ОТДЕЛЕНИЮ
	auth.GET("/dashboard", h.Dashboard)

	// СОВЕЩАНИЯ И ПОСЕЩАЕМОСТЬ
	auth.GET("/meetings", h.ListMeetings)

	// РАСПИСАНИЕ ПРИЁМОВ
	auth.GET("/schedule", h.ListClinicSlots)

	// КЛИНИЧЕСКАЯ НАГРУЗКА
	auth.GET("/services", h.ListServiceEntries)
	auth.POST("/services", h.CreateServiceEntry)

	// НАУЧНАЯ РАБОТА
	auth.GET("/research", h.ListResearchItems)

	// HEALTHCHECK
	r.GET("/health", h.Health)

	return r
}
