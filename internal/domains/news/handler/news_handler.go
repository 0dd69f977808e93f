package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/domains/news/model"
	"foodee-backend/internal/domains/news/service"
	"foodee-backend/internal/shared/middleware"
	"foodee-backend/internal/shared/response"
)

type NewsHandler struct {
	service service.NewsService
}

func NewNewsHandler(service service.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

// List GET /api/news
func (h *NewsHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Lấy danh sách tin tức thành công", list)
}

// Search GET /api/news/search?title=
func (h *NewsHandler) Search(c *gin.Context) {
	list, err := h.service.Search(c.Request.Context(), c.Query("title"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Tìm kiếm tin tức thành công", list)
}

// Get GET /api/news/:id
func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	dto, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Lấy tin tức thành công", dto)
}

// Create POST /api/news
func (h *NewsHandler) Create(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	var req model.NewsRequest
	if !response.BindJSON(c, &req) {
		return
	}

	dto, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, "Tạo tin tức thành công", dto)
}

// Update PUT /api/news/:id
func (h *NewsHandler) Update(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req model.NewsRequest
	if !response.BindJSON(c, &req) {
		return
	}

	dto, err := h.service.Update(c.Request.Context(), p, id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Cập nhật tin tức thành công", dto)
}

// Delete DELETE /api/news/:id
func (h *NewsHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "Xóa tin tức thành công", nil)
}
