package farm

import (
	"context"

	"github.com/AgroRegistroBR/rural-registry/internal/httperr"
	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateFarmInput struct {
	Name             string
	City             string
	State            string
	TotalArea        int64
	AgriculturalArea int64
	VegetationArea   int64
	Active           bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateFarm struct {
	farms *store.Store[models.Farm]
}

func NewCreateFarm(farms *store.Store[models.Farm]) *CreateFarm {
	return &CreateFarm{farms: farms}
}

func (uc *CreateFarm) Execute(ctx context.Context, in CreateFarmInput) (*models.Farm, error) {

	if err := validateAreas(in.AgriculturalArea, in.VegetationArea, in.TotalArea); err != nil {
		return nil, err
	}

	return uc.farms.Create(ctx, &models.Farm{
		Name:             in.Name,
		City:             in.City,
		State:            in.State,
		TotalArea:        in.TotalArea,
		AgriculturalArea: in.AgriculturalArea,
		VegetationArea:   in.VegetationArea,
		Active:           in.Active,
	})
}

// validateAreas: a soma das áreas agricultável e de vegetação não pode
// exceder a área total da fazenda.
func validateAreas(agricultural, vegetation, total int64) error {
	if agricultural+vegetation > total {
		return httperr.ErrValidation(
			"a soma das areas agricultavel e de vegetacao nao pode exceder a area total da fazenda",
		)
	}
	return nil
}
