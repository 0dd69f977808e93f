package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/domains/payment/gateway/vnpay"
	"foodee-backend/internal/domains/payment/model"
	"foodee-backend/internal/domains/payment/service"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/internal/shared/response"
	"foodee-backend/internal/shared/utils"
	"foodee-backend/pkg/logger"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// CreatePayment POST /api/payments/vnpay/create/:orderId
func (h *Handler) CreatePayment(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	orderID, ok := response.ParamID(c, "orderId")
	if !ok {
		return
	}

	res, err := h.service.CreatePaymentURL(c.Request.Context(), p, orderID, utils.ExtractClientIP(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Tạo URL thanh toán thành công", res)
}

// Confirm GET|POST /api/payments/vnpay/confirm
// Frontend trang /payment/result chuyển tiếp nguyên query của VNPay; body trả về là plain text
func (h *Handler) Confirm(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		logger.Warn("VNPay confirm: cannot parse form", map[string]interface{}{"error": err.Error()})
		c.String(http.StatusBadRequest, model.CallbackInvalid)
		return
	}

	// Request.Form gộp query string và form body
	params := vnpay.ExtractParams(c.Request.Form)
	if !h.service.HandleCallback(c.Request.Context(), params) {
		c.String(http.StatusBadRequest, model.CallbackInvalid)
		return
	}
	c.String(http.StatusOK, model.CallbackSuccess)
}
