package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/domains/statistics/service"
	"foodee-backend/internal/shared/response"
	"foodee-backend/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StatisticsHandler - /api/statistics, chỉ admin (middleware ở router)
type StatisticsHandler struct {
	service service.ServiceInterface
}

func NewStatisticsHandler(service service.ServiceInterface) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// Summary GET /api/statistics/summary
func (h *StatisticsHandler) Summary(c *gin.Context) {
	data, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, data)
}

// Overview GET /api/statistics/dashboard/overview
func (h *StatisticsHandler) Overview(c *gin.Context) {
	data, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, data)
}

// Revenue GET /api/statistics/dashboard/revenue?year=
func (h *StatisticsHandler) Revenue(c *gin.Context) {
	data, err := h.service.RevenueByMonth(c.Request.Context(), response.QueryIntDefault(c, "year", 0))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, data)
}

// TopFoods GET /api/statistics/dashboard/top-foods?limit=
func (h *StatisticsHandler) TopFoods(c *gin.Context) {
	data, err := h.service.TopFoods(c.Request.Context(), response.QueryIntDefault(c, "limit", 5))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, data)
}

// TopDishes GET /api/statistics/top-dishes?limit=
func (h *StatisticsHandler) TopDishes(c *gin.Context) {
	data, err := h.service.TopFoods(c.Request.Context(), response.QueryIntDefault(c, "limit", 4))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, data)
}

// TopUsers GET /api/statistics/top-users?limit= và /dashboard/top-users-advanced
func (h *StatisticsHandler) TopUsers(c *gin.Context) {
	data, err := h.service.TopUsers(c.Request.Context(), response.QueryIntDefault(c, "limit", 5))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, data)
}

// RecentActivities GET /api/statistics/recent-activities?limit=
func (h *StatisticsHandler) RecentActivities(c *gin.Context) {
	data, err := h.service.RecentActivities(c.Request.Context(), response.QueryIntDefault(c, "limit", 10))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, data)
}

// OrderStatus GET /api/statistics/order-status
func (h *StatisticsHandler) OrderStatus(c *gin.Context) {
	data, err := h.service.OrderStatusSummary(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, data)
}

// Export GET /api/statistics/export?year=
func (h *StatisticsHandler) Export(c *gin.Context) {
	year := response.QueryIntDefault(c, "year", 0)
	f, err := h.service.ExportExcel(c.Request.Context(), year)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to write statistics workbook", err)
		response.InternalServerError(c, "Không thể xuất file thống kê")
		return
	}

	filename := "thong-ke.xlsx"
	if year > 0 {
		filename = fmt.Sprintf("thong-ke-%d.xlsx", year)
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
