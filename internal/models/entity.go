package models

// Entity é o contrato mínimo que o store genérico exige de um modelo:
// a chave primária gerada e o nome da entidade usado em mensagens de erro.
type Entity interface {
	PrimaryKey() uint
	Kind() string
}
