package httperr

import (
	"errors"
	"fmt"
)

// NotFoundError indica operação sobre um id inexistente. A mensagem sempre
// nomeia a entidade e o id ofensor.
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s com id %d nao encontrado", e.Kind, e.ID)
}

func ErrNotFound(kind string, id uint) error {
	return NotFoundError{Kind: kind, ID: id}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ValidationError indica invariante de domínio violada antes de qualquer
// escrita; nenhum estado parcial é deixado para trás.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func ErrValidation(format string, args ...any) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
