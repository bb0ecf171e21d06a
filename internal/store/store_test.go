package store

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
)

// newTestDB abre um sqlite em memória com FKs ligadas, para que as
// constraints de cascata declaradas nos modelos valham nos testes.
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

func newFarm(name string, total, agricultural, vegetation int64) *models.Farm {
	return &models.Farm{
		Name:             name,
		City:             "Ribeirao Preto",
		State:            "SP",
		TotalArea:        total,
		AgriculturalArea: agricultural,
		VegetationArea:   vegetation,
		Active:           true,
	}
}

func newCrop(name, culture string) *models.Crop {
	return &models.Crop{
		Name:         name,
		CultureType:  culture,
		Variety:      "Organico",
		PlantingYear: 2022,
		HarvestYear:  2023,
		YieldTonnes:  50.5,
		Active:       true,
	}
}

func TestStoreCreateAndGetByID(t *testing.T) {
	db := newTestDB(t)
	farms := NewStore[models.Farm](db)
	ctx := context.Background()

	created, err := farms.Create(ctx, newFarm("Fazenda Boa Vista", 150, 100, 50))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Fazenda Boa Vista", created.Name)

	found, err := farms.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestStoreGetByIDNotFoundIsNil(t *testing.T) {
	db := newTestDB(t)
	farms := NewStore[models.Farm](db)

	found, err := farms.GetByID(context.Background(), 1000)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestStoreGetAll(t *testing.T) {
	db := newTestDB(t)
	farms := NewStore[models.Farm](db)
	ctx := context.Background()

	_, err := farms.Create(ctx, newFarm("Fazenda Primavera", 500, 300, 200))
	require.NoError(t, err)
	_, err = farms.Create(ctx, newFarm("Fazenda Santa Fe", 750, 400, 350))
	require.NoError(t, err)

	all, err := farms.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStoreUpdateOverwritesAllFields(t *testing.T) {
	db := newTestDB(t)
	farms := NewStore[models.Farm](db)
	ctx := context.Background()

	created, err := farms.Create(ctx, newFarm("Fazenda Boa Vista", 150, 100, 50))
	require.NoError(t, err)

	updated, err := farms.Update(ctx, created.ID, newFarm("Fazenda Boa Vista II", 300, 200, 100))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Fazenda Boa Vista II", updated.Name)
	assert.Equal(t, int64(300), updated.TotalArea)
}

func TestStoreUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	farms := NewStore[models.Farm](db)

	_, err := farms.Update(context.Background(), 1000, newFarm("Fazenda Fantasma", 10, 5, 5))
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
	assert.Contains(t, err.Error(), "1000")
}

func TestStoreSoftDeleteKeepsRow(t *testing.T) {
	db := newTestDB(t)
	farms := NewStore[models.Farm](db)
	ctx := context.Background()

	created, err := farms.Create(ctx, newFarm("Fazenda Boa Vista", 150, 100, 50))
	require.NoError(t, err)

	deactivated, err := farms.SoftDelete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	found, err := farms.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.False(t, found.Active)
}

func TestStoreSoftDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	farms := NewStore[models.Farm](db)

	_, err := farms.SoftDelete(context.Background(), 1000)
	assert.True(t, httperr.IsNotFound(err))
}

func TestStoreDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	farms := NewStore[models.Farm](db)

	err := farms.Delete(context.Background(), 1000)
	assert.True(t, httperr.IsNotFound(err))
}

// A exclusão da fazenda leva as safras junto (cascata declarada na FK).
func TestStoreDeleteFarmCascadesCrops(t *testing.T) {
	db := newTestDB(t)
	farms := NewStore[models.Farm](db)
	crops := NewStore[models.Crop](db)
	ctx := context.Background()

	farm, err := farms.Create(ctx, newFarm("Fazenda Boa Vista", 150, 100, 50))
	require.NoError(t, err)

	crop, err := crops.Create(ctx, newCrop("Safra Soja 2022", "Soja"))
	require.NoError(t, err)

	_, err = SetMembership[models.Farm, models.Crop](ctx, db, "Crops", farm.ID, crop.ID, true)
	require.NoError(t, err)

	require.NoError(t, farms.Delete(ctx, farm.ID))

	orphan, err := crops.GetByID(ctx, crop.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan)
}

// A exclusão do produtor NÃO cascateia: a fazenda sobrevive com a FK limpa.
func TestStoreDeleteProducerOrphansFarms(t *testing.T) {
	db := newTestDB(t)
	producers := NewStore[models.Producer](db)
	farms := NewStore[models.Farm](db)
	ctx := context.Background()

	prod, err := producers.Create(ctx, &models.Producer{
		User: models.User{
			Name:         "Pedro da Silva",
			CPFCNPJ:      "12345678909",
			Phone:        "11999999999",
			Email:        "pedro.silva@teste.com.br",
			PasswordHash: "x",
			Role:         models.RoleOrdinary,
			Active:       true,
		},
		Active: true,
	})
	require.NoError(t, err)

	farm, err := farms.Create(ctx, newFarm("Fazenda Boa Vista", 150, 100, 50))
	require.NoError(t, err)

	_, err = SetMembership[models.Producer, models.Farm](ctx, db, "Farms", prod.ID, farm.ID, true)
	require.NoError(t, err)

	require.NoError(t, producers.Delete(ctx, prod.ID))

	survivor, err := farms.GetByID(ctx, farm.ID)
	require.NoError(t, err)
	require.NotNil(t, survivor)
	assert.Nil(t, survivor.ProducerID)
}
