package user

import (
	"context"

	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
)

type UpdateUserInput = CreateUserInput

type UpdateUser struct {
	users *store.Store[models.User]
}

func NewUpdateUser(users *store.Store[models.User]) *UpdateUser {
	return &UpdateUser{users: users}
}

// Execute sobrescreve todos os campos do usuário, re-hasheando a senha
// informada. As mesmas invariantes da criação valem aqui.
func (uc *UpdateUser) Execute(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {

	fields, err := ValidateFields(in.Name, in.CPFCNPJ, in.Phone)
	if err != nil {
		return nil, err
	}

	hash, err := models.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return uc.users.Update(ctx, id, &models.User{
		Name:         fields.Name,
		CPFCNPJ:      in.CPFCNPJ,
		Phone:        fields.Phone,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Active:       in.Active,
	})
}
