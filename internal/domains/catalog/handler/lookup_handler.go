package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/domains/catalog/service"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/internal/shared/response"
)

// ProductTypeHandler - /api/product-types
type ProductTypeHandler struct {
	service service.ProductTypeService
}

func NewProductTypeHandler(service service.ProductTypeService) *ProductTypeHandler {
	return &ProductTypeHandler{service: service}
}

func (h *ProductTypeHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *ProductTypeHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, stats)
}

func (h *ProductTypeHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, item)
}

func (h *ProductTypeHandler) Create(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	var req model.NamedRequest
	if !response.BindJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, "Tạo loại sản phẩm thành công", item)
}

func (h *ProductTypeHandler) Update(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.NamedRequest
	if !response.BindJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), p, id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, item)
}

func (h *ProductTypeHandler) Delete(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), p, id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Xóa loại sản phẩm thành công", nil)
}

// CategoryHandler - /api/categories
type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, item)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	var req model.NamedRequest
	if !response.BindJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, "Tạo danh mục thành công", item)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.NamedRequest
	if !response.BindJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), p, id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, item)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), p, id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Xóa danh mục thành công", nil)
}
