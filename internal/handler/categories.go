package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"productmgmt/internal/dto"
	"productmgmt/internal/middleware"
	"productmgmt/internal/model"
	"productmgmt/internal/repository"
)

const msgCategoryConflict = "Category name already exists"

// CategoriesHandler serves /categories/ straight from the gateway; category
// writes carry no business rules beyond the schema.
type CategoriesHandler struct {
	categories repository.Gateway[model.Category]
}

func NewCategoriesHandler(categories repository.Gateway[model.Category]) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// List GET /categories/
func (h *CategoriesHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c, repository.OrderByID, repository.OrderByName)
	if !ok {
		return
	}
	rows, err := h.categories.FindPage(c.Request.Context(), middleware.UoW(c), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := make([]dto.CategoryResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToCategoryResponse(&rows[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /categories/:id
func (h *CategoriesHandler) Get(c *gin.Context) {
	cat, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// Create POST /categories/
func (h *CategoriesHandler) Create(c *gin.Context) {
	var req dto.CategoryCreate
	if !bindAndValidate(c, &req) {
		return
	}
	cat := dto.NewCategory(req)
	if err := h.categories.Insert(c.Request.Context(), middleware.UoW(c), cat); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// Update PUT /categories/:id
func (h *CategoriesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CategoryUpdate
	if !bindAndValidate(c, &req) {
		return
	}
	cat, err := h.categories.FindByID(c.Request.Context(), middleware.UoW(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if cat == nil {
		writeMessage(c, http.StatusNotFound, msgCategoryNotFound)
		return
	}
	cat.Name = req.Name
	if err := h.categories.UpdateInPlace(c.Request.Context(), middleware.UoW(c), cat); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// Delete DELETE /categories/:id
// Products that referenced the category keep existing with no category.
func (h *CategoriesHandler) Delete(c *gin.Context) {
	cat, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := h.categories.Delete(c.Request.Context(), middleware.UoW(c), cat); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted"})
}

// lookup resolves :id, writing 422 or 404 itself when it returns false.
func (h *CategoriesHandler) lookup(c *gin.Context) (*model.Category, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}
	cat, err := h.categories.FindByID(c.Request.Context(), middleware.UoW(c), id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	if cat == nil {
		writeMessage(c, http.StatusNotFound, msgCategoryNotFound)
		return nil, false
	}
	return cat, true
}

func (h *CategoriesHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(c, http.StatusNotFound, msgCategoryNotFound)
	case errors.Is(err, repository.ErrDuplicateKey):
		writeMessage(c, http.StatusConflict, msgCategoryConflict)
	default:
		_ = c.Error(err)
	}
}
