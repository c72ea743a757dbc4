package handlers

import (
	"net/http"
	"strings"
	"time"

	"mdo-portal/internal/middleware"
	"mdo-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

//
// ЖУРНАЛ УСЛУГ
//

// ListServiceEntries — журнал клинической нагрузки отделения.
// Свежие записи сверху; при совпадении даты позже созданная — выше.
func (h *Handler) ListServiceEntries(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())

	var entries []models.ServiceEntry
	if err := db.Preload("User").Order("date desc, id desc").Find(&entries).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки журнала услуг")
		return
	}

	render(c, http.StatusOK, "services.html", gin.H{
		"entries": entries,
	})
}

//
// ДОБАВЛЕНИЕ ЗАПИСИ
//

// CreateServiceEntry добавляет запись о процедуре за текущую дату
// от имени вошедшего пользователя.
func (h *Handler) CreateServiceEntry(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	procedure := strings.TrimSpace(c.PostForm("procedure_name"))
	notes := strings.TrimSpace(c.PostForm("notes"))

	entry := models.ServiceEntry{
		Date:          today(),
		ProcedureName: procedure,
		Notes:         notes,
		UserID:        user.ID,
	}

	db := h.db.WithContext(c.Request.Context())
	if err := db.Create(&entry).Error; err != nil {
		log.Error().Err(err).Msg("не удалось сохранить запись о процедуре")
		c.String(http.StatusInternalServerError, "Ошибка сохранения")
		return
	}

	log.Info().
		Str("user", user.Username).
		Str("procedure", entry.ProcedureName).
		Msg("добавлена запись о процедуре")

	c.Redirect(http.StatusSeeOther, "/services")
}

// today возвращает текущую дату без времени.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
