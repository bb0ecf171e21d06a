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
	ucfarm "github.com/AgroRegistroBR/rural-registry/internal/usecase/farm"
)

type FarmHandler struct {
	farms       *store.Store[models.Farm]
	createUC    *ucfarm.CreateFarm
	updateUC    *ucfarm.UpdateFarm
	setCropUC   *ucfarm.SetCrop
	dashboardUC *ucfarm.Dashboard
	audit       *audit.Dispatcher
}

func NewFarmHandler(
	farms *store.Store[models.Farm],
	createUC *ucfarm.CreateFarm,
	updateUC *ucfarm.UpdateFarm,
	setCropUC *ucfarm.SetCrop,
	dashboardUC *ucfarm.Dashboard,
	auditDispatcher *audit.Dispatcher,
) *FarmHandler {
	return &FarmHandler{
		farms:       farms,
		createUC:    createUC,
		updateUC:    updateUC,
		setCropUC:   setCropUC,
		dashboardUC: dashboardUC,
		audit:       auditDispatcher,
	}
}

func (h *FarmHandler) Create(c *gin.Context) {
	var req dto.CreateUpdateFarmDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	farm, err := h.createUC.Execute(c.Request.Context(), ucfarm.CreateFarmInput{
		Name:             req.Name,
		City:             req.City,
		State:            req.State,
		TotalArea:        req.TotalArea,
		AgriculturalArea: req.AgriculturalArea,
		VegetationArea:   req.VegetationArea,
		Active:           *req.Active,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "farm_created", Entity: farm.Kind(), EntityID: &farm.ID})
	c.JSON(http.StatusCreated, farm)
}

func (h *FarmHandler) List(c *gin.Context) {
	farms, err := h.farms.GetAll(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}
	httpresp.List(c, farms)
}

func (h *FarmHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	farm, err := h.farms.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}
	if farm == nil {
		httperr.NotFound(c, "not_found", httperr.ErrNotFound(models.Farm{}.Kind(), id).Error())
		return
	}
	httpresp.OK(c, farm)
}

func (h *FarmHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateUpdateFarmDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	farm, err := h.updateUC.Execute(c.Request.Context(), id, ucfarm.UpdateFarmInput{
		Name:             req.Name,
		City:             req.City,
		State:            req.State,
		TotalArea:        req.TotalArea,
		AgriculturalArea: req.AgriculturalArea,
		VegetationArea:   req.VegetationArea,
		Active:           *req.Active,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "farm_updated", Entity: farm.Kind(), EntityID: &farm.ID})
	httpresp.OK(c, farm)
}

func (h *FarmHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	// Aqui a cascata vale: as safras da fazenda são removidas junto.
	if err := h.farms.Delete(c.Request.Context(), id); err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "farm_deleted", Entity: models.Farm{}.Kind(), EntityID: &id})
	c.Status(http.StatusNoContent)
}

func (h *FarmHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	farm, err := h.farms.SoftDelete(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "farm_deactivated", Entity: farm.Kind(), EntityID: &farm.ID})
	httpresp.OK(c, farm)
}

func (h *FarmHandler) setCrop(c *gin.Context, isAdd bool) {
	farmID, ok := parseID(c, "id")
	if !ok {
		return
	}
	cropID, ok := parseID(c, "cropID")
	if !ok {
		return
	}

	farm, err := h.setCropUC.Execute(c.Request.Context(), farmID, cropID, isAdd)
	if err != nil {
		httperr.From(c, err)
		return
	}

	action := "crop_attached"
	if !isAdd {
		action = "crop_detached"
	}
	h.audit.Dispatch(audit.Event{Action: action, Entity: farm.Kind(), EntityID: &farm.ID, Metadata: gin.H{"crop_id": cropID}})
	httpresp.OK(c, farm)
}

func (h *FarmHandler) AttachCrop(c *gin.Context) {
	h.setCrop(c, true)
}

func (h *FarmHandler) DetachCrop(c *gin.Context) {
	h.setCrop(c, false)
}

// Dashboard recalcula os agregados a cada chamada.
func (h *FarmHandler) Dashboard(c *gin.Context) {
	data, err := h.dashboardUC.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}
	httpresp.OK(c, data)
}
