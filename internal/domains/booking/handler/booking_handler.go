package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/domains/booking"
	"foodee-backend/internal/shared"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/internal/shared/response"
)

// BookingHandler - /api/booking
type BookingHandler struct {
	service booking.Service
}

func NewBookingHandler(service booking.Service) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create POST /api/booking/create
func (h *BookingHandler) Create(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	var req booking.CreateBookingRequest
	if !response.BindJSON(c, &req) {
		return
	}

	dto, err := h.service.CreateBooking(c.Request.Context(), p, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, "Đặt bàn thành công", dto)
}

// History GET /api/booking/history
func (h *BookingHandler) History(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	list, err := h.service.GetHistory(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Lấy lịch sử đặt bàn thành công", list)
}

// ListAll GET /api/booking/all
func (h *BookingHandler) ListAll(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	list, err := h.service.ListAll(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Lấy danh sách đặt bàn thành công", list)
}

// Get GET /api/booking/:id
func (h *BookingHandler) Get(c *gin.Context) {
	h.withBooking(c, "", h.service.GetBooking)
}

// Confirm PUT /api/booking/confirm/:id
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.withBooking(c, "Xác nhận đặt bàn thành công", h.service.Confirm)
}

// Cancel PUT /api/booking/cancel/:id
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.withBooking(c, "Hủy đặt bàn thành công", h.service.Cancel)
}

// UserCancel PUT /api/booking/user/cancel/:id
func (h *BookingHandler) UserCancel(c *gin.Context) {
	h.withBooking(c, "Yêu cầu hủy đặt bàn thành công", h.service.RequestCancel)
}

// ApproveCancel PUT /api/booking/approve-cancel/:id
func (h *BookingHandler) ApproveCancel(c *gin.Context) {
	h.withBooking(c, "Đồng ý hủy đặt bàn thành công", h.service.ApproveCancel)
}

// RejectCancel PUT /api/booking/reject-cancel/:id
func (h *BookingHandler) RejectCancel(c *gin.Context) {
	h.withBooking(c, "Từ chối hủy đặt bàn thành công", h.service.RejectCancel)
}

// Delete DELETE /api/booking/delete/:id
func (h *BookingHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "Xóa đặt bàn thành công", nil)
}

type bookingAction func(ctx context.Context, p shared.Principal, id int64) (*booking.BookingDTO, error)

func (h *BookingHandler) withBooking(c *gin.Context, message string, action bookingAction) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	dto, err := action(c.Request.Context(), p, id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, message, dto)
}
