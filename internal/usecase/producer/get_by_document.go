package producer

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AgroRegistroBR/rural-registry/internal/models"
)

// GetByDocument localiza um produtor pelo CPF/CNPJ do usuário vinculado.
type GetByDocument struct {
	db *gorm.DB
}

func NewGetByDocument(db *gorm.DB) *GetByDocument {
	return &GetByDocument{db: db}
}

// Execute devolve (nil, nil) quando não há produtor com o documento.
func (uc *GetByDocument) Execute(ctx context.Context, document string) (*models.Producer, error) {
	var prod models.Producer
	err := uc.db.WithContext(ctx).
		Joins("JOIN users ON users.id = producers.user_id").
		Where("users.cpf_cnpj = ?", document).
		Preload(clause.Associations).
		First(&prod).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prod, nil
}
