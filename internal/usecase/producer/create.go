package producer

import (
	"context"

	"github.com/AgroRegistroBR/rural-registry/internal/httperr"
	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
	ucuser "github.com/AgroRegistroBR/rural-registry/internal/usecase/user"
)

// ======================================================
// INPUT
// ======================================================

type CreateProducerInput struct {
	Name     string
	CPFCNPJ  string
	Phone    string
	Email    string
	Password string
	Role     string
	Active   bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateProducer struct {
	producers *store.Store[models.Producer]
}

func NewCreateProducer(producers *store.Store[models.Producer]) *CreateProducer {
	return &CreateProducer{producers: producers}
}

// Execute valida e cria o produtor junto com o usuário que o sustenta,
// em uma única unidade de trabalho.
func (uc *CreateProducer) Execute(ctx context.Context, in CreateProducerInput) (*models.Producer, error) {

	if err := rejectAdmin(in.Role); err != nil {
		return nil, err
	}

	fields, err := ucuser.ValidateFields(in.Name, in.CPFCNPJ, in.Phone)
	if err != nil {
		return nil, err
	}

	hash, err := models.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return uc.producers.Create(ctx, &models.Producer{
		User: models.User{
			Name:         fields.Name,
			CPFCNPJ:      in.CPFCNPJ,
			Phone:        fields.Phone,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         in.Role,
			Active:       in.Active,
		},
		Active: in.Active,
	})
}

// rejectAdmin: produtor é sempre usuário comum; admin é barrado na
// validação, não no storage.
func rejectAdmin(role string) error {
	if role == models.RoleAdmin {
		return httperr.ErrValidation("produtor nao pode ser do tipo admin")
	}
	return nil
}
