package farm

import (
	"context"

	"gorm.io/gorm"

	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
)

// SetCrop associa (ou desassocia) uma safra a uma fazenda e devolve a
// fazenda com a coleção de safras pós-mutação.
type SetCrop struct {
	db *gorm.DB
}

func NewSetCrop(db *gorm.DB) *SetCrop {
	return &SetCrop{db: db}
}

func (uc *SetCrop) Execute(ctx context.Context, farmID, cropID uint, isAdd bool) (*models.Farm, error) {
	return store.SetMembership[models.Farm, models.Crop](
		ctx, uc.db, "Crops", farmID, cropID, isAdd,
	)
}
