package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormGateway implements Gateway on top of GORM. It holds no connection of
// its own: every call runs against the unit of work handed in by the caller.
type GormGateway[T any] struct {
	orders map[Order]struct{}
}

// NewGormGateway returns a gateway that can sort pages by id and by any of
// the extra columns given.
func NewGormGateway[T any](orders ...Order) *GormGateway[T] {
	g := &GormGateway[T]{orders: map[Order]struct{}{OrderByID: {}}}
	for _, o := range orders {
		g.orders[o] = struct{}{}
	}
	return g
}

func (g *GormGateway[T]) Insert(ctx context.Context, uow *gorm.DB, rec *T) error {
	return g.commit(ctx, uow, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return err
		}
		return refresh(tx, rec)
	})
}

func (g *GormGateway[T]) FindByID(ctx context.Context, uow *gorm.DB, id int64) (*T, error) {
	if uow == nil {
		return nil, ErrNoUnitOfWork
	}
	var rec T
	err := uow.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (g *GormGateway[T]) FindPage(ctx context.Context, uow *gorm.DB, q PageQuery) ([]T, error) {
	if uow == nil {
		return nil, ErrNoUnitOfWork
	}
	order := q.OrderBy
	if order == "" {
		order = OrderByID
	}
	if _, ok := g.orders[order]; !ok {
		return nil, ErrUnsupportedOrder
	}

	tx := uow.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: string(order)}})
	if order != OrderByID {
		// ties keep insertion order
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: string(OrderByID)}})
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	rows := make([]T, 0)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (g *GormGateway[T]) UpdateInPlace(ctx context.Context, uow *gorm.DB, rec *T) error {
	return g.commit(ctx, uow, func(tx *gorm.DB) error {
		res := tx.Model(rec).Select("*").Omit(clause.Associations).Updates(rec)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return refresh(tx, rec)
	})
}

func (g *GormGateway[T]) Delete(ctx context.Context, uow *gorm.DB, rec *T) error {
	return g.commit(ctx, uow, func(tx *gorm.DB) error {
		res := tx.Delete(rec)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (g *GormGateway[T]) DeleteAll(ctx context.Context, uow *gorm.DB) error {
	return g.commit(ctx, uow, func(tx *gorm.DB) error {
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T)).Error
	})
}

// commit runs fn in a transaction on the unit of work and maps constraint
// violations to the package's sentinel errors.
func (g *GormGateway[T]) commit(ctx context.Context, uow *gorm.DB, fn func(tx *gorm.DB) error) error {
	if uow == nil {
		return ErrNoUnitOfWork
	}
	return translate(uow.WithContext(ctx).Transaction(fn))
}

// refresh reloads rec by its primary key so the caller sees the stored row:
// rounded numerics and timestamps at column precision.
func refresh[T any](tx *gorm.DB, rec *T) error {
	return tx.First(rec).Error
}

// translate relies on gorm.Config{TranslateError: true}.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return ErrCheckViolation
	}
	return err
}
