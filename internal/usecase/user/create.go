package user

import (
	"context"

	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateUserInput struct {
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

type CreateUser struct {
	users *store.Store[models.User]
}

func NewCreateUser(users *store.Store[models.User]) *CreateUser {
	return &CreateUser{users: users}
}

func (uc *CreateUser) Execute(ctx context.Context, in CreateUserInput) (*models.User, error) {

	fields, err := ValidateFields(in.Name, in.CPFCNPJ, in.Phone)
	if err != nil {
		return nil, err
	}

	hash, err := models.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return uc.users.Create(ctx, &models.User{
		Name:         fields.Name,
		CPFCNPJ:      in.CPFCNPJ,
		Phone:        fields.Phone,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Active:       in.Active,
	})
}
