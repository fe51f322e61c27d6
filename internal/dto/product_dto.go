package dto

import (
	"time"

	"productmgmt/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductCreate is the write shape for POST /products/.
// Tags only check that price is present; its value is checked by
// service.ProductValidator so that a non-positive price answers 400
// instead of 422. Pointers tell a missing field from a zero one.
type ProductCreate struct {
	Name        string   `json:"name"        validate:"required,max=255"`
	Description *string  `json:"description" validate:"required,max=255"`
	Price       *float64 `json:"price"       validate:"required"`
	Quantity    *int     `json:"quantity"    validate:"required,min=0"`
	CategoryID  *int64   `json:"category_id" validate:"omitempty,min=1"`
}

// ProductUpdate is the write shape for PUT /products/{id}. It mirrors
// ProductCreate except that price may be omitted.
type ProductUpdate struct {
	Name        string   `json:"name"        validate:"required,max=255"`
	Description *string  `json:"description" validate:"required,max=255"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"    validate:"required,min=0"`
	CategoryID  *int64   `json:"category_id" validate:"omitempty,min=1"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// MaxPage bounds page so that (page-1)*per_page cannot overflow.
const MaxPage = 1_000_000

// ListQuery is bound from the query string of the list endpoints. Offset and
// Limit take precedence over Page and PerPage when either is present.
type ListQuery struct {
	Page    int    `form:"page,default=1"      validate:"min=1,max=1000000"`
	PerPage int    `form:"per_page,default=10" validate:"min=1,max=100"`
	Offset  *int   `form:"offset"              validate:"omitempty,min=0"`
	Limit   *int   `form:"limit"               validate:"omitempty,min=1,max=100"`
	OrderBy string `form:"order_by,default=id"`
}

// Window resolves the query into an offset/limit pair. A lone offset pages
// by per_page; a lone limit starts at zero.
func (q ListQuery) Window() (offset, limit int) {
	if q.Offset == nil && q.Limit == nil {
		return (min(q.Page, MaxPage) - 1) * q.PerPage, q.PerPage
	}
	limit = q.PerPage
	if q.Limit != nil {
		limit = *q.Limit
	}
	if q.Offset != nil {
		offset = *q.Offset
	}
	return offset, limit
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CategoryID  *int64    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ─── Conversions ─────────────────────────────────────────────────────────────

// Cents converts a wire price to the stored numeric(10,2) value, rounding
// half away from zero as Postgres does.
func Cents(price float64) decimal.Decimal {
	return decimal.NewFromFloat(price).Round(2)
}

// NewProduct builds the persisted shape from a create request. ID and
// CreatedAt are left for the store to assign.
func NewProduct(req ProductCreate) *model.Product {
	return &model.Product{
		Name:        req.Name,
		Description: value(req.Description),
		Price:       Cents(value(req.Price)),
		Quantity:    value(req.Quantity),
		CategoryID:  req.CategoryID,
	}
}

// ApplyProductUpdate overwrites every base field of p with the request's
// values. An omitted price keeps the stored one.
func ApplyProductUpdate(p *model.Product, req ProductUpdate) {
	p.Name = req.Name
	p.Description = value(req.Description)
	if req.Price != nil {
		p.Price = Cents(*req.Price)
	}
	p.Quantity = value(req.Quantity)
	p.CategoryID = req.CategoryID
	p.Category = nil
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func ToProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Quantity:    p.Quantity,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
	}
}

// MessageResponse is returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
