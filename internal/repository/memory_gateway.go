package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"productmgmt/internal/model"
)

// Orderings maps each supported Order to a comparator. OrderByID is
// always available and does not need an entry.
type Orderings[T any] map[Order]func(a, b *T) int

// ProductOrderings sorts products by price.
var ProductOrderings = Orderings[model.Product]{
	OrderByPrice: func(a, b *model.Product) int { return a.Price.Cmp(b.Price) },
}

// CategoryOrderings sorts categories by name.
var CategoryOrderings = Orderings[model.Category]{
	OrderByName: func(a, b *model.Category) int { return strings.Compare(a.Name, b.Name) },
}

// MemoryGateway is a process-local Gateway. It ignores the unit of work,
// assigns ascending ids and enforces unique names the way the database
// unique indexes do. Records are copied in and out so callers never share
// state with the store.
type MemoryGateway[T any, PT interface {
	*T
	model.Record
}] struct {
	mu       sync.RWMutex
	rows     map[int64]T
	nextID   int64
	orders   Orderings[T]
	now      func() time.Time
	onDelete []func(id int64)
}

// NewMemoryGateway returns an empty in-memory gateway.
func NewMemoryGateway[T any, PT interface {
	*T
	model.Record
}](orders Orderings[T]) *MemoryGateway[T, PT] {
	return &MemoryGateway[T, PT]{
		rows:   make(map[int64]T),
		orders: orders,
		now:    time.Now,
	}
}

type createdAtSetter interface{ SetCreatedAt(t time.Time) }

func (g *MemoryGateway[T, PT]) Insert(ctx context.Context, _ *gorm.DB, rec *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.nameTaken(PT(rec).UniqueName(), 0) {
		return ErrDuplicateKey
	}
	g.nextID++
	PT(rec).SetPrimaryKey(g.nextID)
	if s, ok := any(rec).(createdAtSetter); ok {
		// timestamptz keeps microseconds
		s.SetCreatedAt(g.now().UTC().Truncate(time.Microsecond))
	}
	g.rows[g.nextID] = *rec
	return nil
}

func (g *MemoryGateway[T, PT]) FindByID(ctx context.Context, _ *gorm.DB, id int64) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (g *MemoryGateway[T, PT]) FindPage(ctx context.Context, _ *gorm.DB, q PageQuery) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	byID := func(a, b *T) int { return cmp.Compare(PT(a).PrimaryKey(), PT(b).PrimaryKey()) }
	less := byID
	if q.OrderBy != "" && q.OrderBy != OrderByID {
		fn, ok := g.orders[q.OrderBy]
		if !ok {
			return nil, ErrUnsupportedOrder
		}
		less = func(a, b *T) int {
			if c := fn(a, b); c != 0 {
				return c
			}
			return byID(a, b)
		}
	}

	g.mu.RLock()
	rows := make([]T, 0, len(g.rows))
	for _, r := range g.rows {
		rows = append(rows, r)
	}
	g.mu.RUnlock()

	slices.SortStableFunc(rows, func(a, b T) int { return less(&a, &b) })

	if q.Offset >= len(rows) {
		return []T{}, nil
	}
	rows = rows[max(q.Offset, 0):]
	if q.Limit > 0 && q.Limit < len(rows) {
		rows = rows[:q.Limit]
	}
	return rows, nil
}

func (g *MemoryGateway[T, PT]) UpdateInPlace(ctx context.Context, _ *gorm.DB, rec *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	id := PT(rec).PrimaryKey()
	if _, ok := g.rows[id]; !ok {
		return ErrNotFound
	}
	if g.nameTaken(PT(rec).UniqueName(), id) {
		return ErrDuplicateKey
	}
	g.rows[id] = *rec
	return nil
}

func (g *MemoryGateway[T, PT]) Delete(ctx context.Context, _ *gorm.DB, rec *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	id := PT(rec).PrimaryKey()
	if _, ok := g.rows[id]; !ok {
		g.mu.Unlock()
		return ErrNotFound
	}
	delete(g.rows, id)
	g.mu.Unlock()

	g.deleted(id)
	return nil
}

// DeleteAll empties the store. Ids keep counting up, as a sequence would.
func (g *MemoryGateway[T, PT]) DeleteAll(ctx context.Context, _ *gorm.DB) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	ids := make([]int64, 0, len(g.rows))
	for id := range g.rows {
		ids = append(ids, id)
	}
	clear(g.rows)
	g.mu.Unlock()

	g.deleted(ids...)
	return nil
}

// OnDelete registers fn to run after a row is removed, outside g's lock.
func (g *MemoryGateway[T, PT]) OnDelete(fn func(id int64)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onDelete = append(g.onDelete, fn)
}

// SetNull clears the reference picked by ref on every row pointing at id.
func (g *MemoryGateway[T, PT]) SetNull(ref func(PT) **int64, id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for k, row := range g.rows {
		if r := ref(PT(&row)); *r != nil && **r == id {
			*r = nil
			g.rows[k] = row
		}
	}
}

func (g *MemoryGateway[T, PT]) deleted(ids ...int64) {
	g.mu.RLock()
	hooks := slices.Clone(g.onDelete)
	g.mu.RUnlock()

	for _, id := range ids {
		for _, fn := range hooks {
			fn(id)
		}
	}
}

// nameTaken must be called with g.mu held.
func (g *MemoryGateway[T, PT]) nameTaken(name string, exceptID int64) bool {
	for id, r := range g.rows {
		if id != exceptID && PT(&r).UniqueName() == name {
			return true
		}
	}
	return false
}

// NewMemoryStore returns product and category gateways linked the way the
// foreign key is: deleting a category sets category_id to NULL on its
// products.
func NewMemoryStore() (*MemoryGateway[model.Product, *model.Product], *MemoryGateway[model.Category, *model.Category]) {
	products := NewMemoryGateway[model.Product](ProductOrderings)
	categories := NewMemoryGateway[model.Category](CategoryOrderings)
	categories.OnDelete(func(id int64) {
		products.SetNull(func(p *model.Product) **int64 { return &p.CategoryID }, id)
	})
	return products, categories
}

var (
	_ Gateway[model.Product]  = (*MemoryGateway[model.Product, *model.Product])(nil)
	_ Gateway[model.Category] = (*MemoryGateway[model.Category, *model.Category])(nil)
	_ Gateway[model.Product]  = (*GormGateway[model.Product])(nil)
)
