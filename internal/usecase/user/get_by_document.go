package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AgroRegistroBR/rural-registry/internal/models"
)

// GetByDocument localiza um usuário pelo CPF/CNPJ.
type GetByDocument struct {
	db *gorm.DB
}

func NewGetByDocument(db *gorm.DB) *GetByDocument {
	return &GetByDocument{db: db}
}

// Execute devolve (nil, nil) quando não há usuário com o documento.
func (uc *GetByDocument) Execute(ctx context.Context, document string) (*models.User, error) {
	var user models.User
	err := uc.db.WithContext(ctx).
		Where("cpf_cnpj = ?", document).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
