package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgroRegistroBR/rural-registry/internal/httperr"
	"github.com/AgroRegistroBR/rural-registry/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve a trilha de auditoria, com filtros opcionais por ação e
// entidade.
func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")

	q := h.db.Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}
	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "erro ao listar a auditoria")
		return
	}

	c.JSON(200, gin.H{
		"total": len(logs),
		"logs":  logs,
	})
}
