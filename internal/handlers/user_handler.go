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
	ucuser "github.com/AgroRegistroBR/rural-registry/internal/usecase/user"
)

type UserHandler struct {
	users        *store.Store[models.User]
	createUC     *ucuser.CreateUser
	updateUC     *ucuser.UpdateUser
	byDocumentUC *ucuser.GetByDocument
	audit        *audit.Dispatcher
}

func NewUserHandler(
	users *store.Store[models.User],
	createUC *ucuser.CreateUser,
	updateUC *ucuser.UpdateUser,
	byDocumentUC *ucuser.GetByDocument,
	auditDispatcher *audit.Dispatcher,
) *UserHandler {
	return &UserHandler{
		users:        users,
		createUC:     createUC,
		updateUC:     updateUC,
		byDocumentUC: byDocumentUC,
		audit:        auditDispatcher,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.createUC.Execute(c.Request.Context(), ucuser.CreateUserInput{
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

	h.audit.Dispatch(audit.Event{Action: "user_created", Entity: user.Kind(), EntityID: &user.ID})
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.GetAll(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}
	if user == nil {
		httperr.NotFound(c, "not_found", httperr.ErrNotFound(models.User{}.Kind(), id).Error())
		return
	}
	httpresp.OK(c, user)
}

// GetByDocument busca o usuário pelo CPF/CNPJ.
func (h *UserHandler) GetByDocument(c *gin.Context) {
	document := c.Param("cpf_cnpj")

	user, err := h.byDocumentUC.Execute(c.Request.Context(), document)
	if err != nil {
		httperr.From(c, err)
		return
	}
	if user == nil {
		httperr.NotFound(c, "not_found", "usuario com documento "+document+" nao encontrado")
		return
	}
	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateUpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.updateUC.Execute(c.Request.Context(), id, ucuser.UpdateUserInput{
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

	h.audit.Dispatch(audit.Event{Action: "user_updated", Entity: user.Kind(), EntityID: &user.ID})
	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "user_deleted", Entity: models.User{}.Kind(), EntityID: &id})
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.SoftDelete(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "user_deactivated", Entity: user.Kind(), EntityID: &user.ID})
	httpresp.OK(c, user)
}
