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
	ucproducer "github.com/AgroRegistroBR/rural-registry/internal/usecase/producer"
)

type ProducerHandler struct {
	producers    *store.Store[models.Producer]
	createUC     *ucproducer.CreateProducer
	updateUC     *ucproducer.UpdateProducer
	setFarmUC    *ucproducer.SetFarm
	byDocumentUC *ucproducer.GetByDocument
	audit        *audit.Dispatcher
}

func NewProducerHandler(
	producers *store.Store[models.Producer],
	createUC *ucproducer.CreateProducer,
	updateUC *ucproducer.UpdateProducer,
	setFarmUC *ucproducer.SetFarm,
	byDocumentUC *ucproducer.GetByDocument,
	auditDispatcher *audit.Dispatcher,
) *ProducerHandler {
	return &ProducerHandler{
		producers:    producers,
		createUC:     createUC,
		updateUC:     updateUC,
		setFarmUC:    setFarmUC,
		byDocumentUC: byDocumentUC,
		audit:        auditDispatcher,
	}
}

func (h *ProducerHandler) Create(c *gin.Context) {
	var req dto.CreateUpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	prod, err := h.createUC.Execute(c.Request.Context(), ucproducer.CreateProducerInput{
		Name:     req.Name,
		CPFCNPJ:  req.CPFCNPJ,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Active:   *req.Active,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "producer_created", Entity: prod.Kind(), EntityID: &prod.ID})
	c.JSON(http.StatusCreated, prod)
}

func (h *ProducerHandler) List(c *gin.Context) {
	producers, err := h.producers.GetAll(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}
	httpresp.List(c, producers)
}

func (h *ProducerHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	prod, err := h.producers.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}
	if prod == nil {
		httperr.NotFound(c, "not_found", httperr.ErrNotFound(models.Producer{}.Kind(), id).Error())
		return
	}
	httpresp.OK(c, prod)
}

// GetByDocument busca o produtor pelo CPF/CNPJ do usuário vinculado.
func (h *ProducerHandler) GetByDocument(c *gin.Context) {
	document := c.Param("cpf_cnpj")

	prod, err := h.byDocumentUC.Execute(c.Request.Context(), document)
	if err != nil {
		httperr.From(c, err)
		return
	}
	if prod == nil {
		httperr.NotFound(c, "not_found", "produtor com documento "+document+" nao encontrado")
		return
	}
	httpresp.OK(c, prod)
}

func (h *ProducerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateUpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	prod, err := h.updateUC.Execute(c.Request.Context(), id, ucproducer.UpdateProducerInput{
		Name:     req.Name,
		CPFCNPJ:  req.CPFCNPJ,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Active:   *req.Active,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "producer_updated", Entity: prod.Kind(), EntityID: &prod.ID})
	httpresp.OK(c, prod)
}

func (h *ProducerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	// A exclusão do produtor não leva as fazendas junto: a FK é apenas limpa.
	if err := h.producers.Delete(c.Request.Context(), id); err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "producer_deleted", Entity: models.Producer{}.Kind(), EntityID: &id})
	c.Status(http.StatusNoContent)
}

func (h *ProducerHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	prod, err := h.producers.SoftDelete(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "producer_deactivated", Entity: prod.Kind(), EntityID: &prod.ID})
	httpresp.OK(c, prod)
}

func (h *ProducerHandler) setFarm(c *gin.Context, isAdd bool) {
	producerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	farmID, ok := parseID(c, "farmID")
	if !ok {
		return
	}

	prod, err := h.setFarmUC.Execute(c.Request.Context(), producerID, farmID, isAdd)
	if err != nil {
		httperr.From(c, err)
		return
	}

	action := "farm_attached"
	if !isAdd {
		action = "farm_detached"
	}
	h.audit.Dispatch(audit.Event{Action: action, Entity: prod.Kind(), EntityID: &prod.ID, Metadata: gin.H{"farm_id": farmID}})
	httpresp.OK(c, prod)
}

func (h *ProducerHandler) AttachFarm(c *gin.Context) {
	h.setFarm(c, true)
}

func (h *ProducerHandler) DetachFarm(c *gin.Context) {
	h.setFarm(c, false)
}
