package crop

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/AgroRegistroBR/rural-registry/internal/db"
	"github.com/AgroRegistroBR/rural-registry/internal/httperr"
	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func validInput() CreateCropInput {
	return CreateCropInput{
		Name:         "Safra Soja 2022",
		CultureType:  "Soja",
		Variety:      "Transgenica",
		PlantingYear: 2022,
		HarvestYear:  2023,
		YieldTonnes:  120.5,
		Active:       true,
	}
}

func TestCreateCrop(t *testing.T) {
	db := newTestDB(t)
	uc := NewCreateCrop(store.NewStore[models.Crop](db))

	crop, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotZero(t, crop.ID)
	assert.Equal(t, "Soja", crop.CultureType)
}

func TestCreateCropPlantingAfterHarvest(t *testing.T) {
	db := newTestDB(t)
	uc := NewCreateCrop(store.NewStore[models.Crop](db))

	in := validInput()
	in.PlantingYear = 2024
	in.HarvestYear = 2023

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err))
}

// Plantio e colheita no mesmo ano são válidos.
func TestCreateCropSameYear(t *testing.T) {
	db := newTestDB(t)
	uc := NewCreateCrop(store.NewStore[models.Crop](db))

	in := validInput()
	in.PlantingYear = 2023
	in.HarvestYear = 2023

	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestUpdateCrop(t *testing.T) {
	db := newTestDB(t)
	crops := store.NewStore[models.Crop](db)
	create := NewCreateCrop(crops)
	update := NewUpdateCrop(crops)
	ctx := context.Background()

	crop, err := create.Execute(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = "Safra Soja 2023"
	in.PlantingYear = 2023
	in.HarvestYear = 2024

	updated, err := update.Execute(ctx, crop.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Safra Soja 2023", updated.Name)
	assert.Equal(t, 2023, updated.PlantingYear)
}

func TestUpdateCropInvalidYears(t *testing.T) {
	db := newTestDB(t)
	crops := store.NewStore[models.Crop](db)
	create := NewCreateCrop(crops)
	update := NewUpdateCrop(crops)
	ctx := context.Background()

	crop, err := create.Execute(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.PlantingYear = 2025
	in.HarvestYear = 2024

	_, err = update.Execute(ctx, crop.ID, in)
	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err))
}

func TestUpdateCropNotFound(t *testing.T) {
	db := newTestDB(t)
	update := NewUpdateCrop(store.NewStore[models.Crop](db))

	_, err := update.Execute(context.Background(), 1000, validInput())
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
}

func TestUpdateCropKeepsFarmLink(t *testing.T) {
	db := newTestDB(t)
	crops := store.NewStore[models.Crop](db)
	farms := store.NewStore[models.Farm](db)
	create := NewCreateCrop(crops)
	update := NewUpdateCrop(crops)
	ctx := context.Background()

	farm, err := farms.Create(ctx, &models.Farm{
		Name:             "Fazenda Boa Vista",
		City:             "Ribeirao Preto",
		State:            "SP",
		TotalArea:        150,
		AgriculturalArea: 100,
		VegetationArea:   50,
		Active:           true,
	})
	require.NoError(t, err)

	crop, err := create.Execute(ctx, validInput())
	require.NoError(t, err)

	_, err = store.SetMembership[models.Farm, models.Crop](ctx, db, "Crops", farm.ID, crop.ID, true)
	require.NoError(t, err)

	in := validInput()
	in.Variety = "Convencional"
	updated, err := update.Execute(ctx, crop.ID, in)
	require.NoError(t, err)
	require.NotNil(t, updated.FarmID)
	assert.Equal(t, farm.ID, *updated.FarmID)
}
