package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/domains/catalog/model"
	"foodee-backend/internal/domains/catalog/service"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/internal/shared/response"
)

// maxUploadSize - giới hạn đọc multipart, ImageProcessor kiểm tra lại 5MB
const maxUploadSize = 5<<20 + 1

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(service service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListProducts GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, products)
}

// GetProduct GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, product)
}

// SearchProducts GET /api/products/search?name=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.service.SearchProducts(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, products)
}

// ListByProductType GET /api/products/by-product-type/:id
func (h *ProductHandler) ListByProductType(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	products, err := h.service.ListByProductType(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, products)
}

// ListByCategory GET /api/products/by-category/:id
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	products, err := h.service.ListByCategory(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, products)
}

// CreateProduct POST /api/products (admin)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	var req model.ProductRequest
	if !response.BindJSON(c, &req) {
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), p, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, "Tạo sản phẩm thành công", product)
}

// UpdateProduct PUT /api/products/:id (admin)
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.ProductRequest
	if !response.BindJSON(c, &req) {
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), p, id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, product)
}

// DeleteProduct DELETE /api/products/:id (admin)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), p, id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Xóa sản phẩm thành công", nil)
}

// UploadImage POST /api/products/:id/image (multipart, field "file")
func (h *ProductHandler) UploadImage(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.HandleError(c, model.ErrInvalidImage.Wrap(err))
		return
	}
	if file.Size > maxUploadSize {
		response.HandleError(c, model.ErrInvalidImage)
		return
	}

	f, err := file.Open()
	if err != nil {
		response.HandleError(c, model.ErrInvalidImage.Wrap(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize))
	if err != nil {
		response.HandleError(c, model.ErrInvalidImage.Wrap(err))
		return
	}

	product, err := h.service.UploadImage(c.Request.Context(), p, id, data)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Tải ảnh sản phẩm thành công", product)
}
