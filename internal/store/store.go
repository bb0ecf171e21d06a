package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AgroRegistroBR/rural-registry/internal/httperr"
	"github.com/AgroRegistroBR/rural-registry/internal/models"
)

// Store é o CRUD genérico usado por todas as entidades do cadastro.
// Cada operação roda em exatamente uma unidade de trabalho: em caso de
// falha de storage a transação é desfeita e o erro original é devolvido
// sem embrulho, sem retry e sem estado parcial.
type Store[T models.Entity] struct {
	db *gorm.DB
}

func NewStore[T models.Entity](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// Create insere o registro e o relê para capturar id e defaults gerados.
func (s *Store[T]) Create(ctx context.Context, rec *T) (*T, error) {
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(rec).Error
	}); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, (*rec).PrimaryKey())
}

// GetByID devolve (nil, nil) quando o id não existe; quem decide se a
// ausência é erro é a camada de cima.
func (s *Store[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var rec T
	err := s.db.WithContext(ctx).Preload(clause.Associations).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	var recs []T
	if err := s.db.WithContext(ctx).Preload(clause.Associations).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Update sobrescreve todos os campos do registro existente.
func (s *Store[T]) Update(ctx context.Context, id uint, rec *T) (*T, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, httperr.ErrNotFound((*rec).Kind(), id)
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(existing).
			Select("*").
			Omit("id", "created_at").
			Updates(rec).Error
	}); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// SoftDelete inativa o registro sem removê-lo.
func (s *Store[T]) SoftDelete(ctx context.Context, id uint) (*T, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		var zero T
		return nil, httperr.ErrNotFound(zero.Kind(), id)
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(existing).Update("active", false).Error
	}); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete remove o registro em definitivo. Cascatas e limpeza de FK ficam
// a cargo das constraints declaradas nos modelos.
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		var zero T
		return httperr.ErrNotFound(zero.Kind(), id)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(existing).Error
	})
}
