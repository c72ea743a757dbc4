package handlers

import (
	"net/http"

	"mdo-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// Dashboard — сводные счётчики по всем разделам портала.
func (h *Handler) Dashboard(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())

	var meetings, clinics, procedures, research int64
	db.Model(&models.Meeting{}).Count(&meetings)
	db.Model(&models.ClinicSlot{}).Count(&clinics)
	db.Model(&models.ServiceEntry{}).Count(&procedures)
	db.Model(&models.ResearchItem{}).Count(&research)

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"stats": gin.H{
			"meetings":   meetings,
			"clinics":    clinics,
			"procedures": procedures,
			"research":   research,
		},
	})
}
