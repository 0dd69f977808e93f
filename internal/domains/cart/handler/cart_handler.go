package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/domains/cart/service"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/internal/shared/response"
)

// Handler - /api/cart, mọi route cần đăng nhập
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetCart GET /api/cart
func (h *Handler) GetCart(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	cart, err := h.service.GetCart(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Lấy giỏ hàng thành công", cart)
}

// AddToCart POST /api/cart/add?productId=&quantity=
func (h *Handler) AddToCart(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	productID, ok := response.QueryInt64(c, "productId")
	if !ok {
		return
	}
	quantity, ok := response.QueryInt64(c, "quantity")
	if !ok {
		return
	}

	cart, err := h.service.AddToCart(c.Request.Context(), p, productID, int(quantity))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, "Thêm sản phẩm vào giỏ hàng thành công", cart)
}

// UpdateQuantity PUT /api/cart/update?productId=&quantity=
func (h *Handler) UpdateQuantity(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	productID, ok := response.QueryInt64(c, "productId")
	if !ok {
		return
	}
	quantity, ok := response.QueryInt64(c, "quantity")
	if !ok {
		return
	}

	cart, err := h.service.UpdateQuantity(c.Request.Context(), p, productID, int(quantity))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Cập nhật số lượng sản phẩm thành công", cart)
}

// RemoveFromCart DELETE /api/cart/remove?productId=
func (h *Handler) RemoveFromCart(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	productID, ok := response.QueryInt64(c, "productId")
	if !ok {
		return
	}

	cart, err := h.service.RemoveFromCart(c.Request.Context(), p, productID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Xóa sản phẩm khỏi giỏ hàng thành công", cart)
}

// ClearCart DELETE /api/cart/clear
func (h *Handler) ClearCart(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	if err := h.service.ClearCart(c.Request.Context(), p); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Xóa giỏ hàng thành công", nil)
}
