package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AgroRegistroBR/rural-registry/internal/httperr"
	"github.com/AgroRegistroBR/rural-registry/internal/models"
)

// SetMembership adiciona (ou remove) um membro da coleção do dono e devolve
// o dono recarregado com a coleção atual. O mesmo protocolo atende
// produtor↔fazenda e fazenda↔safra: só mudam os tipos e o nome da associação.
//
// Adicionar um membro já presente e remover um ausente são no-ops: a
// remoção apenas limpa a FK do membro, nunca apaga a linha.
func SetMembership[O models.Entity, M models.Entity](
	ctx context.Context,
	db *gorm.DB,
	assoc string,
	ownerID uint,
	memberID uint,
	isAdd bool,
) (*O, error) {

	var owner O
	if err := db.WithContext(ctx).First(&owner, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(owner.Kind(), ownerID)
		}
		return nil, err
	}

	var member M
	if err := db.WithContext(ctx).First(&member, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(member.Kind(), memberID)
		}
		return nil, err
	}

	if err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		association := tx.Model(&owner).Association(assoc)
		if isAdd {
			return association.Append(&member)
		}
		return association.Delete(&member)
	}); err != nil {
		return nil, err
	}

	var fresh O
	if err := db.WithContext(ctx).Preload(clause.Associations).First(&fresh, ownerID).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}
