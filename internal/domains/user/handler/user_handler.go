package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/domains/user"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/internal/shared/response"
)

// UserHandler xử lý HTTP requests cho auth và user profile
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Register POST /api/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if !response.BindJSON(c, &req) {
		return
	}

	dto, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, "Đăng ký người dùng thành công", dto)
}

// Login POST /api/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if !response.BindJSON(c, &req) {
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Đăng nhập thành công", res)
}

// ForgotPassword POST /api/auth/forgot-password
// Luôn trả về thành công, không cho biết email có tồn tại hay không
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req user.ForgotPasswordRequest
	if !response.BindJSON(c, &req) {
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Nếu email tồn tại, hệ thống đã gửi hướng dẫn đặt lại mật khẩu.", nil)
}

// ResetPassword POST /api/auth/reset-password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req user.ResetPasswordRequest
	if !response.BindJSON(c, &req) {
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Đặt lại mật khẩu thành công", nil)
}

// ========================================
// PROFILE ENDPOINTS
// ========================================

// GetProfile GET /api/user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	dto, err := h.service.GetProfile(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.OK(c, dto)
}

// UpdateProfile PUT /api/user/profile và PUT /api/user/admin/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req user.UpdateProfileRequest
	if !response.BindJSON(c, &req) {
		return
	}

	dto, err := h.service.UpdateProfile(c.Request.Context(), p, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Cập nhật thông tin thành công", dto)
}

// ========================================
// ADMIN ENDPOINTS
// ========================================

// ListUsers GET /api/user/all
func (h *UserHandler) ListUsers(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	users, err := h.service.ListUsers(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.OK(c, users)
}

// GetUser GET /api/user/:username
func (h *UserHandler) GetUser(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	dto, err := h.service.GetUserByUsername(c.Request.Context(), p, c.Param("username"))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.OK(c, dto)
}

// CreateUser POST /api/user/create
func (h *UserHandler) CreateUser(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req user.AdminUserRequest
	if !response.BindJSON(c, &req) {
		return
	}

	dto, err := h.service.CreateUser(c.Request.Context(), p, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, "Tạo người dùng thành công", dto)
}

// UpdateUser PUT /api/user/update/:username
func (h *UserHandler) UpdateUser(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req user.AdminUserRequest
	if !response.BindJSON(c, &req) {
		return
	}

	dto, err := h.service.UpdateUser(c.Request.Context(), p, c.Param("username"), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Cập nhật người dùng thành công", dto)
}

// DeleteUser DELETE /api/user/delete/:username
func (h *UserHandler) DeleteUser(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), p, c.Param("username")); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Xóa người dùng thành công", nil)
}
