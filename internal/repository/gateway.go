package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey is returned when a write violates a unique name.
	ErrDuplicateKey = errors.New("duplicate key value")

	// ErrForeignKey is returned when a write references a missing row.
	ErrForeignKey = errors.New("foreign key violation")

	// ErrCheckViolation is returned when a write breaks a CHECK constraint,
	// such as a price that is stored as zero.
	ErrCheckViolation = errors.New("check constraint violation")

	// ErrNotFound is returned by UpdateInPlace and Delete when the record
	// vanished between the caller's lookup and the write.
	ErrNotFound = errors.New("record not found")

	// ErrUnsupportedOrder is returned by FindPage for an ordering the
	// gateway was not built with.
	ErrUnsupportedOrder = errors.New("unsupported order")

	// ErrNoUnitOfWork is returned when a database-backed gateway is called
	// without a unit of work.
	ErrNoUnitOfWork = errors.New("no unit of work")
)

// Order names the column a page is sorted by, ascending.
type Order string

const (
	OrderByID    Order = "id"
	OrderByPrice Order = "price"
	OrderByName  Order = "name"
)

// PageQuery selects a window of records. A Limit <= 0 means no limit.
type PageQuery struct {
	Offset  int
	Limit   int
	OrderBy Order
}

// Gateway is the data access contract shared by every record type.
// Callers own the unit of work (uow) and pass it on each call; mutating
// calls commit it before returning. Implementations that do not need a
// database accept a nil uow.
type Gateway[T any] interface {
	Insert(ctx context.Context, uow *gorm.DB, rec *T) error
	// FindByID returns nil, nil when no record has the id.
	FindByID(ctx context.Context, uow *gorm.DB, id int64) (*T, error)
	FindPage(ctx context.Context, uow *gorm.DB, q PageQuery) ([]T, error)
	// UpdateInPlace overwrites every column of an existing record.
	UpdateInPlace(ctx context.Context, uow *gorm.DB, rec *T) error
	Delete(ctx context.Context, uow *gorm.DB, rec *T) error
	DeleteAll(ctx context.Context, uow *gorm.DB) error
}
