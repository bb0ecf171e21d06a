package dto

type CreateUpdateFarmDTO struct {
	Name             string `json:"name" binding:"required,max=100"`
	City             string `json:"city" binding:"required,max=100"`
	State            string `json:"state" binding:"required,len=2"`
	TotalArea        int64  `json:"total_area" binding:"gte=0"`
	AgriculturalArea int64  `json:"agricultural_area" binding:"gte=0"`
	VegetationArea   int64  `json:"vegetation_area" binding:"gte=0"`
	Active           *bool  `json:"active" binding:"required"`
}
