package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"productmgmt/internal/dto"
	"productmgmt/internal/model"
	"productmgmt/internal/repository"
)

// ErrCategoryNotFound is returned when a product write references a category
// id that does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// ProductService defines the product operations behind /products/.
// Every call runs against the caller's unit of work (nil for the in-memory
// store). Lookups that miss return nil, nil.
type ProductService interface {
	ListProducts(ctx context.Context, uow *gorm.DB, offset, limit int, order repository.Order) ([]dto.ProductResponse, error)
	GetProduct(ctx context.Context, uow *gorm.DB, id int64) (*dto.ProductResponse, error)
	CreateProduct(ctx context.Context, uow *gorm.DB, req dto.ProductCreate) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, uow *gorm.DB, id int64, req dto.ProductUpdate) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, uow *gorm.DB, id int64) (*dto.ProductResponse, error)
	DeleteAllProducts(ctx context.Context, uow *gorm.DB) error
}

type productService struct {
	products   repository.Gateway[model.Product]
	categories repository.Gateway[model.Category]
}

func NewProductService(products repository.Gateway[model.Product], categories repository.Gateway[model.Category]) ProductService {
	return &productService{products: products, categories: categories}
}

func (s *productService) ListProducts(ctx context.Context, uow *gorm.DB, offset, limit int, order repository.Order) ([]dto.ProductResponse, error) {
	rows, err := s.products.FindPage(ctx, uow, repository.PageQuery{Offset: offset, Limit: limit, OrderBy: order})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	result := make([]dto.ProductResponse, 0, len(rows))
	for i := range rows {
		result = append(result, dto.ToProductResponse(&rows[i]))
	}
	return result, nil
}

func (s *productService) GetProduct(ctx context.Context, uow *gorm.DB, id int64) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, uow, id)
	if err != nil || p == nil {
		return nil, err
	}
	resp := dto.ToProductResponse(p)
	return &resp, nil
}

func (s *productService) CreateProduct(ctx context.Context, uow *gorm.DB, req dto.ProductCreate) (*dto.ProductResponse, error) {
	if err := s.checkCategory(ctx, uow, req.CategoryID); err != nil {
		return nil, err
	}
	p := dto.NewProduct(req)
	if err := s.products.Insert(ctx, uow, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	resp := dto.ToProductResponse(p)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, uow *gorm.DB, id int64, req dto.ProductUpdate) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, uow, id)
	if err != nil || p == nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, uow, req.CategoryID); err != nil {
		return nil, err
	}

	dto.ApplyProductUpdate(p, req)
	if err := s.products.UpdateInPlace(ctx, uow, p); err != nil {
		// deleted by another request since the lookup
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	resp := dto.ToProductResponse(p)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, uow *gorm.DB, id int64) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, uow, id)
	if err != nil || p == nil {
		return nil, err
	}
	if err := s.products.Delete(ctx, uow, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product %d: %w", id, err)
	}
	resp := dto.ToProductResponse(p)
	return &resp, nil
}

// DeleteAllProducts removes every product. It backs test fixtures and the
// seed command and is not exposed over HTTP.
func (s *productService) DeleteAllProducts(ctx context.Context, uow *gorm.DB) error {
	if err := s.products.DeleteAll(ctx, uow); err != nil {
		return fmt.Errorf("delete all products: %w", err)
	}
	return nil
}

func (s *productService) checkCategory(ctx context.Context, uow *gorm.DB, id *int64) error {
	if id == nil {
		return nil
	}
	c, err := s.categories.FindByID(ctx, uow, *id)
	if err != nil {
		return fmt.Errorf("lookup category %d: %w", *id, err)
	}
	if c == nil {
		return ErrCategoryNotFound
	}
	return nil
}
