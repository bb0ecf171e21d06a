package farm

import (
	"context"

	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
)

type UpdateFarmInput = CreateFarmInput

type UpdateFarm struct {
	farms *store.Store[models.Farm]
}

func NewUpdateFarm(farms *store.Store[models.Farm]) *UpdateFarm {
	return &UpdateFarm{farms: farms}
}

// Execute revalida as áreas e sobrescreve todos os campos da fazenda.
// O vínculo com o produtor não muda por aqui.
func (uc *UpdateFarm) Execute(ctx context.Context, id uint, in UpdateFarmInput) (*models.Farm, error) {

	if err := validateAreas(in.AgriculturalArea, in.VegetationArea, in.TotalArea); err != nil {
		return nil, err
	}

	current, err := uc.farms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	farm := &models.Farm{
		Name:             in.Name,
		City:             in.City,
		State:            in.State,
		TotalArea:        in.TotalArea,
		AgriculturalArea: in.AgriculturalArea,
		VegetationArea:   in.VegetationArea,
		Active:           in.Active,
	}
	if current != nil {
		farm.ProducerID = current.ProducerID
	}

	return uc.farms.Update(ctx, id, farm)
}
