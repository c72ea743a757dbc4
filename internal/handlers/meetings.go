package handlers

import (
	"net/http"

	"mdo-portal/internal/middleware"
	"mdo-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// ListMeetings — журнал посещаемости совещаний.
// admin и head видят все записи, doctor — только свои.
func (h *Handler) ListMeetings(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	db := h.db.WithContext(c.Request.Context())

	q := db.Preload("Meeting").Preload("User")
	if user.Role != models.RoleAdmin && user.Role != models.RoleHead {
		q = q.Where("user_id = ?", user.ID)
	}

	var attendance []models.Attendance
	if err := q.Find(&attendance).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки посещаемости")
		return
	}

	render(c, http.StatusOK, "meetings.html", gin.H{
		"attendance": attendance,
	})
}
