package crop

import (
	"context"

	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
)

type UpdateCropInput = CreateCropInput

type UpdateCrop struct {
	crops *store.Store[models.Crop]
}

func NewUpdateCrop(crops *store.Store[models.Crop]) *UpdateCrop {
	return &UpdateCrop{crops: crops}
}

// Execute revalida os anos e sobrescreve todos os campos da safra,
// preservando o vínculo com a fazenda.
func (uc *UpdateCrop) Execute(ctx context.Context, id uint, in UpdateCropInput) (*models.Crop, error) {

	if err := validateYears(in.PlantingYear, in.HarvestYear); err != nil {
		return nil, err
	}

	current, err := uc.crops.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	crop := &models.Crop{
		Name:         in.Name,
		CultureType:  in.CultureType,
		Variety:      in.Variety,
		PlantingYear: in.PlantingYear,
		HarvestYear:  in.HarvestYear,
		YieldTonnes:  in.YieldTonnes,
		Active:       in.Active,
	}
	if current != nil {
		crop.FarmID = current.FarmID
	}

	return uc.crops.Update(ctx, id, crop)
}
