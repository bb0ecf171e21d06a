package models

import "time"

type Crop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	CultureType string `gorm:"size:100;not null" json:"culture_type"`
	Variety     string `gorm:"size:100;not null" json:"variety"`

	PlantingYear int     `gorm:"not null" json:"planting_year"`
	HarvestYear  int     `gorm:"not null" json:"harvest_year"`
	YieldTonnes  float64 `gorm:"not null" json:"yield_tonnes"`

	Active bool `gorm:"default:true" json:"active"`

	FarmID *uint `json:"farm_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Crop) PrimaryKey() uint { return c.ID }
func (c Crop) Kind() string     { return "safra" }
