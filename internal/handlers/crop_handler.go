package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgroRegistroBR/rural-registry/internal/audit"
	"github.com/AgroRegistroBR/rural-registry/internal/dto"
	"github.com/AgroRegistroBR/rural-registry/internal/httperr"
	"github.com/AgroRegistroBR/rural-registry/internal/httpresp"
	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
	uccrop "github.com/AgroRegistroBR/rural-registry/internal/usecase/crop"
)

type CropHandler struct {
	crops    *store.Store[models.Crop]
	createUC *uccrop.CreateCrop
	updateUC *uccrop.UpdateCrop
	audit    *audit.Dispatcher
}

func NewCropHandler(
	crops *store.Store[models.Crop],
	createUC *uccrop.CreateCrop,
	updateUC *uccrop.UpdateCrop,
	auditDispatcher *audit.Dispatcher,
) *CropHandler {
	return &CropHandler{
		crops:    crops,
		createUC: createUC,
		updateUC: updateUC,
		audit:    auditDispatcher,
	}
}

func (h *CropHandler) Create(c *gin.Context) {
	var req dto.CreateUpdateCropDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	crop, err := h.createUC.Execute(c.Request.Context(), uccrop.CreateCropInput{
		Name:         req.Name,
		CultureType:  req.CultureType,
		Variety:      req.Variety,
		PlantingYear: req.PlantingYear,
		HarvestYear:  req.HarvestYear,
		YieldTonnes:  req.YieldTonnes,
		Active:       *req.Active,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "crop_created", Entity: crop.Kind(), EntityID: &crop.ID})
	c.JSON(http.StatusCreated, crop)
}

func (h *CropHandler) List(c *gin.Context) {
	crops, err := h.crops.GetAll(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}
	httpresp.List(c, crops)
}

func (h *CropHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	crop, err := h.crops.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}
	if crop == nil {
		httperr.NotFound(c, "not_found", httperr.ErrNotFound(models.Crop{}.Kind(), id).Error())
		return
	}
	httpresp.OK(c, crop)
}

func (h *CropHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateUpdateCropDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	crop, err := h.updateUC.Execute(c.Request.Context(), id, uccrop.UpdateCropInput{
		Name:         req.Name,
		CultureType:  req.CultureType,
		Variety:      req.Variety,
		PlantingYear: req.PlantingYear,
		HarvestYear:  req.HarvestYear,
		YieldTonnes:  req.YieldTonnes,
		Active:       *req.Active,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "crop_updated", Entity: crop.Kind(), EntityID: &crop.ID})
	httpresp.OK(c, crop)
}

func (h *CropHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.crops.Delete(c.Request.Context(), id); err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "crop_deleted", Entity: models.Crop{}.Kind(), EntityID: &id})
	c.Status(http.StatusNoContent)
}

func (h *CropHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	crop, err := h.crops.SoftDelete(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "crop_deactivated", Entity: crop.Kind(), EntityID: &crop.ID})
	httpresp.OK(c, crop)
}
