package crop

import (
	"context"

	"github.com/AgroRegistroBR/rural-registry/internal/httperr"
	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateCropInput struct {
	Name         string
	CultureType  string
	Variety      string
	PlantingYear int
	HarvestYear  int
	YieldTonnes  float64
	Active       bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateCrop struct {
	crops *store.Store[models.Crop]
}

func NewCreateCrop(crops *store.Store[models.Crop]) *CreateCrop {
	return &CreateCrop{crops: crops}
}

func (uc *CreateCrop) Execute(ctx context.Context, in CreateCropInput) (*models.Crop, error) {

	if err := validateYears(in.PlantingYear, in.HarvestYear); err != nil {
		return nil, err
	}

	return uc.crops.Create(ctx, &models.Crop{
		Name:         in.Name,
		CultureType:  in.CultureType,
		Variety:      in.Variety,
		PlantingYear: in.PlantingYear,
		HarvestYear:  in.HarvestYear,
		YieldTonnes:  in.YieldTonnes,
		Active:       in.Active,
	})
}

// validateYears: não se colhe antes de plantar.
func validateYears(planting, harvest int) error {
	if planting > harvest {
		return httperr.ErrValidation("o ano de plantio nao pode ser maior que o ano de colheita")
	}
	return nil
}
