package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/AgroRegistroBR/rural-registry/internal/models"
)

// Logger grava a trilha de auditoria do cadastro (criações, alterações,
// exclusões e mutações de vínculo) na tabela audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(action, entity string, entityID *uint, metadata any) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
