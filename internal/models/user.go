package models

import "time"

const (
	RoleOrdinary = "ordinary"
	RoleAdmin    = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	CPFCNPJ      string `gorm:"column:cpf_cnpj;size:18;uniqueIndex;not null" json:"cpf_cnpj"`
	Phone        string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'ordinary'" json:"role"`
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) PrimaryKey() uint { return u.ID }
func (u User) Kind() string     { return "usuario" }
