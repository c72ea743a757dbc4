package handlers

import (
	"net/http"

	"mdo-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// ListResearchItems — научная работа отделения: публикации,
// доклады и клинические исследования.
func (h *Handler) ListResearchItems(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())

	var items []models.ResearchItem
	if err := db.Preload("User").Find(&items).Error; err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки научных работ")
		return
	}

	render(c, http.StatusOK, "research.html", gin.H{
		"items": items,
	})
}
