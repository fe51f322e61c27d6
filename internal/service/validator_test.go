package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"productmgmt/internal/dto"
)

func ptr[T any](v T) *T { return &v }

func TestValidateCreate(t *testing.T) {
	v := NewProductValidator()

	tests := []struct {
		price   float64
		wantErr bool
	}{
		{10, false},
		{0.01, false},
		{0.005, false},
		{99999999.99, false},
		{0, true},
		{-1, true},
		{0.004, true},
		{1e8, true},
		{99999999.995, true},
	}
	for _, tc := range tests {
		err := v.ValidateCreate(dto.ProductCreate{Name: "Widget", Price: ptr(tc.price)})
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPrice, "price %v", tc.price)
		} else {
			assert.NoError(t, err, "price %v", tc.price)
		}
	}

	assert.ErrorIs(t, v.ValidateCreate(dto.ProductCreate{Name: "Widget"}), ErrInvalidPrice)
}

func TestValidateUpdate(t *testing.T) {
	v := NewProductValidator()

	assert.NoError(t, v.ValidateUpdate(dto.ProductUpdate{Name: "Widget"}))
	assert.NoError(t, v.ValidateUpdate(dto.ProductUpdate{Name: "Widget", Price: ptr(5.0)}))
	assert.ErrorIs(t, v.ValidateUpdate(dto.ProductUpdate{Name: "Widget", Price: ptr(0.0)}), ErrInvalidPrice)
	assert.ErrorIs(t, v.ValidateUpdate(dto.ProductUpdate{Name: "Widget", Price: ptr(-1.0)}), ErrInvalidPrice)
	assert.ErrorIs(t, v.ValidateUpdate(dto.ProductUpdate{Name: "Widget", Price: ptr(0.001)}), ErrInvalidPrice)
	assert.ErrorIs(t, v.ValidateUpdate(dto.ProductUpdate{Name: "Widget", Price: ptr(2e8)}), ErrInvalidPrice)
}
