package handlers

import (
	"net/http"

	"mdo-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// ListClinicSlots — расписание амбулаторных приёмов всего отделения.
func (h *Handler) ListClinicSlots(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())

	var slots []models.ClinicSlot
	if err := db.Preload("User").Find(&slots).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки расписания")
		return
	}

	render(c, http.StatusOK, "schedule.html", gin.H{
		"slots": slots,
	})
}
