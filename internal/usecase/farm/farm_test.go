package farm

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

func validInput() CreateFarmInput {
	return CreateFarmInput{
		Name:             "Fazenda Boa Vista",
		City:             "Ribeirao Preto",
		State:            "SP",
		TotalArea:        150,
		AgriculturalArea: 100,
		VegetationArea:   50,
		Active:           true,
	}
}

func TestCreateFarm(t *testing.T) {
	db := newTestDB(t)
	uc := NewCreateFarm(store.NewStore[models.Farm](db))

	farm, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotZero(t, farm.ID)
	assert.Equal(t, "Fazenda Boa Vista", farm.Name)
	assert.Equal(t, int64(150), farm.TotalArea)
}

func TestCreateFarmAreasExceedTotal(t *testing.T) {
	db := newTestDB(t)
	uc := NewCreateFarm(store.NewStore[models.Farm](db))

	in := validInput()
	in.AgriculturalArea = 120
	in.VegetationArea = 50

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err))
}

// A soma exatamente igual ao total é válida.
func TestCreateFarmAreasEqualTotal(t *testing.T) {
	db := newTestDB(t)
	uc := NewCreateFarm(store.NewStore[models.Farm](db))

	in := validInput()
	in.TotalArea = 150
	in.AgriculturalArea = 100
	in.VegetationArea = 50

	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestUpdateFarm(t *testing.T) {
	db := newTestDB(t)
	farms := store.NewStore[models.Farm](db)
	create := NewCreateFarm(farms)
	update := NewUpdateFarm(farms)
	ctx := context.Background()

	farm, err := create.Execute(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = "Fazenda Boa Vista II"
	in.TotalArea = 300
	in.AgriculturalArea = 200
	in.VegetationArea = 100

	updated, err := update.Execute(ctx, farm.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Fazenda Boa Vista II", updated.Name)
	assert.Equal(t, int64(300), updated.TotalArea)
}

// A invariante de áreas vale também na atualização: reduzir o total abaixo
// da soma corrente é rejeitado antes de tocar o storage.
func TestUpdateFarmShrinkTotalBelowSum(t *testing.T) {
	db := newTestDB(t)
	farms := store.NewStore[models.Farm](db)
	create := NewCreateFarm(farms)
	update := NewUpdateFarm(farms)
	ctx := context.Background()

	farm, err := create.Execute(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.TotalArea = 50

	_, err = update.Execute(ctx, farm.ID, in)
	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err))

	// nada mudou
	kept, err := farms.GetByID(ctx, farm.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), kept.TotalArea)
}

func TestUpdateFarmNotFound(t *testing.T) {
	db := newTestDB(t)
	update := NewUpdateFarm(store.NewStore[models.Farm](db))

	_, err := update.Execute(context.Background(), 1000, validInput())
	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))
}

func TestUpdateFarmKeepsProducerLink(t *testing.T) {
	db := newTestDB(t)
	farms := store.NewStore[models.Farm](db)
	producers := store.NewStore[models.Producer](db)
	create := NewCreateFarm(farms)
	update := NewUpdateFarm(farms)
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

	farm, err := create.Execute(ctx, validInput())
	require.NoError(t, err)

	_, err = store.SetMembership[models.Producer, models.Farm](ctx, db, "Farms", prod.ID, farm.ID, true)
	require.NoError(t, err)

	in := validInput()
	in.Name = "Fazenda Renomeada"
	updated, err := update.Execute(ctx, farm.ID, in)
	require.NoError(t, err)
	require.NotNil(t, updated.ProducerID)
	assert.Equal(t, prod.ID, *updated.ProducerID)
}

func TestDashboardEmpty(t *testing.T) {
	db := newTestDB(t)
	uc := NewDashboard(db)

	data, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, data.TotalFarms)
	assert.Nil(t, data.TotalArea)
	assert.Empty(t, data.FarmsByState)
	assert.Empty(t, data.FarmsByCulture)
}

func TestDashboardAggregates(t *testing.T) {
	db := newTestDB(t)
	farms := store.NewStore[models.Farm](db)
	crops := store.NewStore[models.Crop](db)
	uc := NewDashboard(db)
	ctx := context.Background()

	mk := func(name, state string, total, agricultural, vegetation int64) *models.Farm {
		farm, err := farms.Create(ctx, &models.Farm{
			Name:             name,
			City:             "Cidade",
			State:            state,
			TotalArea:        total,
			AgriculturalArea: agricultural,
			VegetationArea:   vegetation,
			Active:           true,
		})
		require.NoError(t, err)
		return farm
	}

	f1 := mk("Fazenda Primavera", "SP", 500, 300, 200)
	f2 := mk("Fazenda Santa Fe", "SP", 750, 400, 350)
	f3 := mk("Fazenda Encerrada", "MG", 1000, 600, 400)

	// fazenda inativada segue contando no dashboard
	_, err := farms.SoftDelete(ctx, f3.ID)
	require.NoError(t, err)

	plant := func(farmID uint, name, culture string) {
		crop, err := crops.Create(ctx, &models.Crop{
			Name:         name,
			CultureType:  culture,
			Variety:      "Comum",
			PlantingYear: 2022,
			HarvestYear:  2023,
			Active:       true,
		})
		require.NoError(t, err)
		_, err = store.SetMembership[models.Farm, models.Crop](ctx, db, "Crops", farmID, crop.ID, true)
		require.NoError(t, err)
	}

	plant(f1.ID, "Safra Soja 2022", "Soja")
	plant(f2.ID, "Safra Milho 2022", "Milho")
	plant(f3.ID, "Safra Cafe 2022", "Cafe")

	data, err := uc.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), data.TotalFarms)
	require.NotNil(t, data.TotalArea)
	assert.Equal(t, int64(2250), *data.TotalArea)

	byState := map[string]int64{}
	for _, s := range data.FarmsByState {
		byState[s.State] = s.TotalFarms
	}
	assert.Equal(t, map[string]int64{"SP": 2, "MG": 1}, byState)

	byCulture := map[string]int64{}
	for _, c := range data.FarmsByCulture {
		byCulture[c.CultureType] = c.TotalFarms
	}
	assert.Equal(t, map[string]int64{"Soja": 1, "Milho": 1, "Cafe": 1}, byCulture)

	// três pares distintos de uso do solo, um por fazenda
	assert.Len(t, data.FarmsBySoilUse, 3)
}
