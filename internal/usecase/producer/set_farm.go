package producer

import (
	"context"

	"gorm.io/gorm"

	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
)

// SetFarm associa (ou desassocia) uma fazenda a um produtor e devolve o
// produtor com a coleção de fazendas pós-mutação.
type SetFarm struct {
	db *gorm.DB
}

func NewSetFarm(db *gorm.DB) *SetFarm {
	return &SetFarm{db: db}
}

func (uc *SetFarm) Execute(ctx context.Context, producerID, farmID uint, isAdd bool) (*models.Producer, error) {
	return store.SetMembership[models.Producer, models.Farm](
		ctx, uc.db, "Farms", producerID, farmID, isAdd,
	)
}
