package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"productmgmt/internal/dto"
)

// ErrInvalidPrice is returned when a write carries a price that is not
// strictly positive once rounded to cents, or does not fit numeric(10,2).
var ErrInvalidPrice = errors.New("invalid price")

// maxPrice is the first value numeric(10,2) cannot hold.
var maxPrice = decimal.New(1, 8)

// ProductValidator holds the business checks that run before a product write
// reaches ProductService. It performs no I/O.
type ProductValidator struct{}

func NewProductValidator() ProductValidator { return ProductValidator{} }

func (ProductValidator) ValidateCreate(req dto.ProductCreate) error {
	if req.Price == nil {
		return ErrInvalidPrice
	}
	return checkPrice(*req.Price)
}

// ValidateUpdate accepts an update without a price.
func (ProductValidator) ValidateUpdate(req dto.ProductUpdate) error {
	if req.Price == nil {
		return nil
	}
	return checkPrice(*req.Price)
}

func checkPrice(price float64) error {
	cents := dto.Cents(price)
	if !cents.IsPositive() || cents.GreaterThanOrEqual(maxPrice) {
		return ErrInvalidPrice
	}
	return nil
}
