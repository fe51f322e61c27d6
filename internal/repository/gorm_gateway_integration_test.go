//go:build integration

package repository_test

// Runs against a real Postgres via testcontainers:
//   go test -tags integration ./internal/repository/...

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"

	"productmgmt/internal/infra"
	"productmgmt/internal/model"
	"productmgmt/internal/repository"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("products_test"),
		tcPostgres.WithUsername("products"),
		tcPostgres.WithPassword("products"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, pgC)

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDatabase(dsn, infra.PoolConfig{MaxOpenConns: 5, MaxIdleConns: 2})
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))
	// patches are idempotent
	require.NoError(t, infra.RunMigrations(db))
	return db
}

func TestGormGateway(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	products := repository.NewGormGateway[model.Product](repository.OrderByPrice)
	categories := repository.NewGormGateway[model.Category](repository.OrderByName)

	t.Run("insert assigns id and created_at", func(t *testing.T) {
		p := newProduct("Widget", 9.99)
		require.NoError(t, products.Insert(ctx, db, p))
		assert.NotZero(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())

		got, err := products.FindByID(ctx, db, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Widget", got.Name)
		assert.True(t, decimal.RequireFromString("9.99").Equal(got.Price))
	})

	t.Run("missing id is nil, nil", func(t *testing.T) {
		got, err := products.FindByID(ctx, db, 987654)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate name", func(t *testing.T) {
		err := products.Insert(ctx, db, newProduct("Widget", 1))
		assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	})

	t.Run("foreign key", func(t *testing.T) {
		missing := int64(424242)
		p := newProduct("Orphan", 1)
		p.CategoryID = &missing
		assert.ErrorIs(t, products.Insert(ctx, db, p), repository.ErrForeignKey)
	})

	t.Run("update in place and missing row", func(t *testing.T) {
		p := newProduct("Gadget", 5)
		require.NoError(t, products.Insert(ctx, db, p))
		created := p.CreatedAt

		p.Description = ""
		p.Price = decimal.NewFromFloat(7.5)
		p.Quantity = 0
		require.NoError(t, products.UpdateInPlace(ctx, db, p))

		got, err := products.FindByID(ctx, db, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Quantity)
		assert.True(t, decimal.NewFromFloat(7.5).Equal(got.Price))
		assert.True(t, created.Equal(got.CreatedAt), "created_at %v, stored %v", created, got.CreatedAt)
		assert.True(t, p.CreatedAt.Equal(got.CreatedAt))

		ghost := newProduct("Ghost", 1)
		ghost.ID = 999999
		assert.ErrorIs(t, products.UpdateInPlace(ctx, db, ghost), repository.ErrNotFound)
		// update must not create the row
		got, err = products.FindByID(ctx, db, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("writes hand back the stored row", func(t *testing.T) {
		p := newProduct("Rounded", 10.005)
		require.NoError(t, products.Insert(ctx, db, p))
		assert.True(t, decimal.RequireFromString("10.01").Equal(p.Price), "price %s", p.Price)

		got, err := products.FindByID(ctx, db, p.ID)
		require.NoError(t, err)
		assert.True(t, p.CreatedAt.Equal(got.CreatedAt), "created_at %v, stored %v", p.CreatedAt, got.CreatedAt)
		assert.Zero(t, p.CreatedAt.Nanosecond()%1000)

		p.Price = decimal.NewFromFloat(3.333)
		require.NoError(t, products.UpdateInPlace(ctx, db, p))
		assert.True(t, decimal.RequireFromString("3.33").Equal(p.Price), "price %s", p.Price)
	})

	t.Run("price check constraint", func(t *testing.T) {
		err := products.Insert(ctx, db, newProduct("Free", 0))
		assert.ErrorIs(t, err, repository.ErrCheckViolation)

		err = products.Insert(ctx, db, newProduct("Fraction", 0.001))
		assert.ErrorIs(t, err, repository.ErrCheckViolation)
	})

	t.Run("page ordering", func(t *testing.T) {
		rows, err := products.FindPage(ctx, db, repository.PageQuery{OrderBy: repository.OrderByPrice})
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		for i := 1; i < len(rows); i++ {
			assert.True(t, rows[i-1].Price.LessThanOrEqual(rows[i].Price))
		}

		rows, err = products.FindPage(ctx, db, repository.PageQuery{Offset: 0, Limit: 1})
		require.NoError(t, err)
		assert.Len(t, rows, 1)

		_, err = products.FindPage(ctx, db, repository.PageQuery{OrderBy: repository.OrderByName})
		assert.ErrorIs(t, err, repository.ErrUnsupportedOrder)
	})

	t.Run("deleting a category clears product references", func(t *testing.T) {
		cat := &model.Category{Name: "Tools"}
		require.NoError(t, categories.Insert(ctx, db, cat))
		p := newProduct("Hammer", 12)
		p.CategoryID = &cat.ID
		require.NoError(t, products.Insert(ctx, db, p))

		require.NoError(t, categories.Delete(ctx, db, cat))
		got, err := products.FindByID(ctx, db, p.ID)
		require.NoError(t, err)
		assert.Nil(t, got.CategoryID)
	})

	t.Run("delete and delete all", func(t *testing.T) {
		p := newProduct("Doomed", 3)
		require.NoError(t, products.Insert(ctx, db, p))
		require.NoError(t, products.Delete(ctx, db, p))
		assert.ErrorIs(t, products.Delete(ctx, db, p), repository.ErrNotFound)

		require.NoError(t, products.DeleteAll(ctx, db))
		rows, err := products.FindPage(ctx, db, repository.PageQuery{})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("nil unit of work", func(t *testing.T) {
		_, err := products.FindByID(ctx, nil, 1)
		assert.ErrorIs(t, err, repository.ErrNoUnitOfWork)
	})
}
