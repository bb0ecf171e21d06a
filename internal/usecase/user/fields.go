package user

import (
	"strings"

	"github.com/AgroRegistroBR/rural-registry/internal/httperr"
	"github.com/AgroRegistroBR/rural-registry/internal/validators"
)

type Fields struct {
	Name  string
	Phone string
}

// ValidateFields aplica as invariantes de campo compartilhadas por
// usuários e produtores, antes de qualquer escrita.
func ValidateFields(name, document, phone string) (Fields, error) {

	trimmed := strings.TrimSpace(name)
	if len(strings.Split(trimmed, " ")) < 2 || len(trimmed) > 100 {
		return Fields{}, httperr.ErrValidation("nome invalido: informe nome e sobrenome")
	}

	if !validators.ValidateDocument(document) {
		return Fields{}, httperr.ErrValidation("CPF/CNPJ invalido: %s", document)
	}

	normalized, ok := validators.NormalizePhone(phone)
	if !ok {
		return Fields{}, httperr.ErrValidation("telefone invalido: formato (99) 99999-9999 ou 99999-9999")
	}

	return Fields{Name: trimmed, Phone: normalized}, nil
}
