package producer

import (
	"context"

	"gorm.io/gorm"

	"github.com/AgroRegistroBR/rural-registry/internal/httperr"
	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
	ucuser "github.com/AgroRegistroBR/rural-registry/internal/usecase/user"
)

type UpdateProducerInput = CreateProducerInput

type UpdateProducer struct {
	db *gorm.DB
}

func NewUpdateProducer(db *gorm.DB) *UpdateProducer {
	return &UpdateProducer{db: db}
}

// Execute sobrescreve os dados cadastrais do produtor (que vivem na linha
// de usuário) e o flag de ativo do próprio produtor. As duas escritas
// compartilham a mesma transação: se qualquer uma falhar, nenhuma persiste.
func (uc *UpdateProducer) Execute(ctx context.Context, id uint, in UpdateProducerInput) (*models.Producer, error) {

	if err := rejectAdmin(in.Role); err != nil {
		return nil, err
	}

	fields, err := ucuser.ValidateFields(in.Name, in.CPFCNPJ, in.Phone)
	if err != nil {
		return nil, err
	}

	producers := store.NewStore[models.Producer](uc.db)

	current, err := producers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, httperr.ErrNotFound(models.Producer{}.Kind(), id)
	}

	hash, err := models.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	if err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := store.NewStore[models.User](tx)
		if _, err := users.Update(ctx, current.UserID, &models.User{
			Name:         fields.Name,
			CPFCNPJ:      in.CPFCNPJ,
			Phone:        fields.Phone,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         in.Role,
			Active:       in.Active,
		}); err != nil {
			return err
		}

		current.Active = in.Active
		txProducers := store.NewStore[models.Producer](tx)
		_, err := txProducers.Update(ctx, id, current)
		return err
	}); err != nil {
		return nil, err
	}

	return producers.GetByID(ctx, id)
}
