package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"productmgmt/internal/dto"
	"productmgmt/internal/middleware"
	"productmgmt/internal/repository"
	"productmgmt/internal/service"
)

const (
	msgProductNotFound  = "Product not found"
	msgProductConflict  = "Product name already exists"
	msgCategoryNotFound = "Category not found"
	msgInvalidPrice     = "Invalid price"
)

type ProductsHandler struct {
	svc       service.ProductService
	validator service.ProductValidator
}

func NewProductsHandler(svc service.ProductService, validator service.ProductValidator) *ProductsHandler {
	return &ProductsHandler{svc: svc, validator: validator}
}

// List godoc
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Param		page		query	int		false	"page number"	default(1)
//	@Param		per_page	query	int		false	"page size"		default(10)
//	@Param		offset		query	int		false	"rows to skip, overrides page"
//	@Param		limit		query	int		false	"page size, overrides per_page"
//	@Param		order_by	query	string	false	"sort column"	Enums(id, price)
//	@Success	200			{array}	dto.ProductResponse
//	@Failure	422			{object}	apierror.ValidationError
//	@Router		/products/ [get]
func (h *ProductsHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c, repository.OrderByID, repository.OrderByPrice)
	if !ok {
		return
	}
	resp, err := h.svc.ListProducts(c.Request.Context(), middleware.UoW(c), q.Offset, q.Limit, q.OrderBy)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
//
//	@Summary	Get a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"product id"
//	@Success	200	{object}	dto.ProductResponse
//	@Failure	404	{object}	apierror.APIError
//	@Router		/products/{id} [get]
func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetProduct(c.Request.Context(), middleware.UoW(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if resp == nil {
		writeMessage(c, http.StatusNotFound, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
//
//	@Summary	Create a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		product	body		dto.ProductCreate	true	"new product"
//	@Success	200		{object}	dto.ProductResponse
//	@Failure	400		{object}	apierror.APIError	"Invalid price"
//	@Failure	404		{object}	apierror.APIError	"Category not found"
//	@Failure	409		{object}	apierror.APIError
//	@Failure	422		{object}	apierror.ValidationError
//	@Router		/products/ [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.ProductCreate
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.validator.ValidateCreate(req); err != nil {
		h.fail(c, err)
		return
	}
	resp, err := h.svc.CreateProduct(c.Request.Context(), middleware.UoW(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
//
//	@Summary	Replace a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"product id"
//	@Param		product	body		dto.ProductUpdate	true	"new values; price may be omitted"
//	@Success	200		{object}	dto.ProductResponse
//	@Failure	400		{object}	apierror.APIError
//	@Failure	404		{object}	apierror.APIError
//	@Failure	409		{object}	apierror.APIError
//	@Failure	422		{object}	apierror.ValidationError
//	@Router		/products/{id} [put]
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ProductUpdate
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.validator.ValidateUpdate(req); err != nil {
		h.fail(c, err)
		return
	}
	resp, err := h.svc.UpdateProduct(c.Request.Context(), middleware.UoW(c), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	if resp == nil {
		writeMessage(c, http.StatusNotFound, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
//
//	@Summary	Delete a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"product id"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	apierror.APIError
//	@Router		/products/{id} [delete]
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.DeleteProduct(c.Request.Context(), middleware.UoW(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if resp == nil {
		writeMessage(c, http.StatusNotFound, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted"})
}

// fail maps service and store errors to responses. Anything unrecognised
// is left to middleware.ErrorHandler.
func (h *ProductsHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPrice), errors.Is(err, repository.ErrCheckViolation):
		writeMessage(c, http.StatusBadRequest, msgInvalidPrice)
	case errors.Is(err, service.ErrCategoryNotFound), errors.Is(err, repository.ErrForeignKey):
		writeMessage(c, http.StatusNotFound, msgCategoryNotFound)
	case errors.Is(err, repository.ErrDuplicateKey):
		writeMessage(c, http.StatusConflict, msgProductConflict)
	default:
		_ = c.Error(err)
	}
}
