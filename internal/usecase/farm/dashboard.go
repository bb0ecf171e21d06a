package farm

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/AgroRegistroBR/rural-registry/internal/models"
)

// ======================================================
// OUTPUT
// ======================================================

type StateCount struct {
	State      string `json:"state"`
	TotalFarms int64  `json:"total_farms"`
}

type CultureCount struct {
	CultureType string `json:"culture_type"`
	TotalFarms  int64  `json:"total_farms"`
}

type SoilUseCount struct {
	AgriculturalArea int64 `json:"agricultural_area"`
	VegetationArea   int64 `json:"vegetation_area"`
	TotalFarms       int64 `json:"total_farms"`
}

type DashboardData struct {
	TotalFarms      int64          `json:"total_farms"`
	TotalArea       *int64         `json:"total_area"`
	FarmsByState    []StateCount   `json:"farms_by_state"`
	FarmsByCulture  []CultureCount `json:"farms_by_culture"`
	FarmsBySoilUse  []SoilUseCount `json:"farms_by_soil_use"`
}

// ======================================================
// USE CASE
// ======================================================

// Dashboard agrega o estado atual do cadastro em uma passada lógica.
// Nada é cacheado: toda chamada reconsulta o storage.
type Dashboard struct {
	db *gorm.DB
}

func NewDashboard(db *gorm.DB) *Dashboard {
	return &Dashboard{db: db}
}

func (uc *Dashboard) Execute(ctx context.Context) (*DashboardData, error) {

	db := uc.db.WithContext(ctx)
	data := &DashboardData{}

	if err := db.Model(&models.Farm{}).Count(&data.TotalFarms).Error; err != nil {
		return nil, err
	}

	// SUM devolve NULL quando não há fazendas; o dashboard repassa a ausência.
	var totalArea sql.NullInt64
	if err := db.Model(&models.Farm{}).
		Select("SUM(total_area)").
		Scan(&totalArea).Error; err != nil {
		return nil, err
	}
	if totalArea.Valid {
		data.TotalArea = &totalArea.Int64
	}

	if err := db.Model(&models.Farm{}).
		Select("state, COUNT(*) AS total_farms").
		Group("state").
		Scan(&data.FarmsByState).Error; err != nil {
		return nil, err
	}

	// Fazendas por cultura plantada: safras juntadas às fazendas donas.
	// Fazenda sem safra não aparece aqui.
	if err := db.Model(&models.Crop{}).
		Select("crops.culture_type, COUNT(farms.id) AS total_farms").
		Joins("JOIN farms ON crops.farm_id = farms.id").
		Group("crops.culture_type").
		Scan(&data.FarmsByCulture).Error; err != nil {
		return nil, err
	}

	// Histograma pelo par exato (agricultável, vegetação); áreas distintas
	// nunca são mescladas em faixas.
	if err := db.Model(&models.Farm{}).
		Select("agricultural_area, vegetation_area, COUNT(*) AS total_farms").
		Group("agricultural_area, vegetation_area").
		Scan(&data.FarmsBySoilUse).Error; err != nil {
		return nil, err
	}

	return data, nil
}
