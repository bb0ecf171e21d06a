package dto

type CreateUpdateCropDTO struct {
	Name         string  `json:"name" binding:"required,max=100"`
	CultureType  string  `json:"culture_type" binding:"required,max=100"`
	Variety      string  `json:"variety" binding:"required,max=100"`
	PlantingYear int     `json:"planting_year" binding:"required"`
	HarvestYear  int     `json:"harvest_year" binding:"required"`
	YieldTonnes  float64 `json:"yield_tonnes" binding:"gte=0"`
	Active       *bool   `json:"active" binding:"required"`
}
