package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/domains/order/model"
	"foodee-backend/internal/domains/order/service"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
	loc     *time.Location
}

// NewHandler - loc dùng để hiểu delivery date không kèm múi giờ
func NewHandler(service service.ServiceInterface, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{service: service, loc: loc}
}

// CreateOrder POST /api/orders
func (h *Handler) CreateOrder(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	var req model.CreateOrderRequest
	if !response.BindJSON(c, &req) {
		return
	}

	order, err := h.service.CreateOrderFromCart(c.Request.Context(), p, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, "Đặt hàng thành công", order)
}

// CreateOrderFromProduct POST /api/orders/create-from-product
func (h *Handler) CreateOrderFromProduct(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	var req model.CreateFromProductRequest
	if !response.BindJSON(c, &req) {
		return
	}

	order, err := h.service.CreateOrderFromProduct(c.Request.Context(), p, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, "Đặt hàng trực tiếp từ sản phẩm thành công", order)
}

// GetUserOrders GET /api/orders
func (h *Handler) GetUserOrders(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	orders, err := h.service.GetUserOrders(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Lấy danh sách đơn hàng thành công", orders)
}

// GetAllOrders GET /api/orders/admin
func (h *Handler) GetAllOrders(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	orders, err := h.service.GetAllOrders(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Lấy danh sách tất cả đơn hàng thành công", orders)
}

// UpdateOrderStatus PUT /api/orders/:id/status?status=
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	h.withOrder(c, "Cập nhật trạng thái đơn hàng thành công", func(c *gin.Context, id int64) (*model.OrderDTO, error) {
		p, _ := middleware.GetPrincipal(c)
		return h.service.UpdateOrderStatus(c.Request.Context(), p, id, c.Query("status"))
	})
}

// UpdatePaymentStatus PUT /api/orders/:id/payment-status?paymentStatus=
func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	h.withOrder(c, "Cập nhật trạng thái thanh toán thành công", func(c *gin.Context, id int64) (*model.OrderDTO, error) {
		p, _ := middleware.GetPrincipal(c)
		return h.service.UpdatePaymentStatus(c.Request.Context(), p, id, c.Query("paymentStatus"))
	})
}

// UpdateDeliveryDate PUT /api/orders/:id/delivery-date {deliveryDate}
func (h *Handler) UpdateDeliveryDate(c *gin.Context) {
	h.withOrder(c, "Cập nhật thời gian giao hàng thành công", func(c *gin.Context, id int64) (*model.OrderDTO, error) {
		p, _ := middleware.GetPrincipal(c)
		var req model.DeliveryDateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, response.ErrInvalidBody.Wrap(err)
		}
		date, err := req.Parse(h.loc)
		if err != nil {
			return nil, err
		}
		return h.service.UpdateDeliveryDate(c.Request.Context(), p, id, date)
	})
}

// CancelOrder PUT /api/orders/:id/cancel
func (h *Handler) CancelOrder(c *gin.Context) {
	h.withOrder(c, "Yêu cầu hủy đơn hàng thành công", func(c *gin.Context, id int64) (*model.OrderDTO, error) {
		p, _ := middleware.GetPrincipal(c)
		return h.service.CancelOrder(c.Request.Context(), p, id)
	})
}

// ApproveCancel PUT /api/orders/:id/approve-cancel
func (h *Handler) ApproveCancel(c *gin.Context) {
	h.withOrder(c, "Đồng ý yêu cầu hủy đơn hàng thành công", func(c *gin.Context, id int64) (*model.OrderDTO, error) {
		p, _ := middleware.GetPrincipal(c)
		return h.service.ApproveCancel(c.Request.Context(), p, id)
	})
}

// RejectCancel PUT /api/orders/:id/reject-cancel
func (h *Handler) RejectCancel(c *gin.Context) {
	h.withOrder(c, "Từ chối yêu cầu hủy đơn hàng thành công", func(c *gin.Context, id int64) (*model.OrderDTO, error) {
		p, _ := middleware.GetPrincipal(c)
		return h.service.RejectCancel(c.Request.Context(), p, id)
	})
}

// DeleteOrder DELETE /api/orders/:id/delete
func (h *Handler) DeleteOrder(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteOrder(c.Request.Context(), p, id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Xóa đơn hàng thành công", nil)
}

// withOrder: kiểm tra principal + path id rồi trả về OrderDTO
func (h *Handler) withOrder(c *gin.Context, message string, fn func(c *gin.Context, id int64) (*model.OrderDTO, error)) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		return
	}
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	order, err := fn(c, id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, message, order)
}
