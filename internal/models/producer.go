package models

import "time"

// Produtor é um usuário comum que possui fazendas. A especialização é
// modelada como has-a (FK para users) em vez de herança de tabela.
type Producer struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Farms []Farm `gorm:"foreignKey:ProducerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"farms"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Producer) PrimaryKey() uint { return p.ID }
func (p Producer) Kind() string     { return "produtor" }
