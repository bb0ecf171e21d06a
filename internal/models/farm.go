package models

import "time"

type Farm struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	City  string `gorm:"size:100;not null" json:"city"`
	State string `gorm:"size:2;not null" json:"state"`

	// Áreas em hectares.
	TotalArea        int64 `gorm:"not null" json:"total_area"`
	AgriculturalArea int64 `gorm:"not null" json:"agricultural_area"`
	VegetationArea   int64 `gorm:"not null" json:"vegetation_area"`

	Active bool `gorm:"default:true" json:"active"`

	ProducerID *uint `json:"producer_id"`

	Crops []Crop `gorm:"foreignKey:FarmID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"crops"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f Farm) PrimaryKey() uint { return f.ID }
func (f Farm) Kind() string     { return "fazenda" }
