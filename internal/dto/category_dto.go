package dto

import "productmgmt/internal/model"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CategoryCreate struct {
	Name string `json:"name" validate:"required,max=255"`
}

type CategoryUpdate struct {
	Name string `json:"name" validate:"required,max=255"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewCategory(req CategoryCreate) *model.Category {
	return &model.Category{Name: req.Name}
}

func ToCategoryResponse(c *model.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}
