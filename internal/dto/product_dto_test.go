package dto_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"productmgmt/internal/dto"
)

func ptr[T any](v T) *T { return &v }

func TestListQueryWindow(t *testing.T) {
	tests := []struct {
		name       string
		q          dto.ListQuery
		wantOffset int
		wantLimit  int
	}{
		{"first page", dto.ListQuery{Page: 1, PerPage: 10}, 0, 10},
		{"third page", dto.ListQuery{Page: 3, PerPage: 5}, 10, 5},
		{"offset and limit", dto.ListQuery{Page: 3, PerPage: 5, Offset: ptr(4), Limit: ptr(2)}, 4, 2},
		{"offset alone uses per_page", dto.ListQuery{Page: 3, PerPage: 5, Offset: ptr(1)}, 1, 5},
		{"limit alone starts at zero", dto.ListQuery{Page: 3, PerPage: 5, Limit: ptr(7)}, 0, 7},
		{"page is capped", dto.ListQuery{Page: math.MaxInt, PerPage: 100}, (dto.MaxPage - 1) * 100, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			offset, limit := tc.q.Window()
			assert.Equal(t, tc.wantOffset, offset)
			assert.Equal(t, tc.wantLimit, limit)
			assert.GreaterOrEqual(t, offset, 0)
		})
	}
}

func TestNewProductRoundsToCents(t *testing.T) {
	p := dto.NewProduct(dto.ProductCreate{
		Name:        "Widget",
		Description: ptr("d"),
		Price:       ptr(10.005),
		Quantity:    ptr(3),
	})
	assert.Equal(t, "10.01", p.Price.StringFixed(2))
	assert.Equal(t, 10.01, dto.ToProductResponse(p).Price)
	assert.Equal(t, 3, p.Quantity)
	assert.Equal(t, "d", p.Description)
}

func TestApplyProductUpdateKeepsPriceWhenOmitted(t *testing.T) {
	p := dto.NewProduct(dto.ProductCreate{Name: "Widget", Description: ptr("d"), Price: ptr(4.5), Quantity: ptr(1)})

	dto.ApplyProductUpdate(p, dto.ProductUpdate{Name: "Gadget", Description: ptr(""), Quantity: ptr(0)})
	assert.Equal(t, "Gadget", p.Name)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, 0, p.Quantity)
	assert.Equal(t, "4.50", p.Price.StringFixed(2))

	dto.ApplyProductUpdate(p, dto.ProductUpdate{Name: "Gadget", Description: ptr(""), Price: ptr(3.333), Quantity: ptr(0)})
	assert.Equal(t, "3.33", p.Price.StringFixed(2))
}
