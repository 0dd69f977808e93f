package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"foodee-backend/internal/domains/statistics/model"
	"foodee-backend/internal/domains/statistics/service"
)

type stubService struct {
	service.ServiceInterface
	year  int
	limit int
}

func (s *stubService) RevenueByMonth(_ context.Context, year int) ([]model.MonthlyRevenue, error) {
	s.year = year
	if year != 0 && year < 2000 {
		return nil, model.ErrInvalidYear
	}
	return []model.MonthlyRevenue{}, nil
}

func (s *stubService) TopFoods(_ context.Context, limit int) ([]model.TopFood, error) {
	s.limit = limit
	return []model.TopFood{}, nil
}

func (s *stubService) ExportExcel(_ context.Context, year int) (*excelize.File, error) {
	s.year = year
	f := excelize.NewFile()
	_ = f.SetCellValue("Sheet1", "A1", "ok")
	return f, nil
}

func setup() (*gin.Engine, *stubService) {
	gin.SetMode(gin.TestMode)
	svc := &stubService{}
	h := NewStatisticsHandler(svc)

	r := gin.New()
	g := r.Group("/api/statistics")
	g.GET("/dashboard/revenue", h.Revenue)
	g.GET("/dashboard/top-foods", h.TopFoods)
	g.GET("/top-dishes", h.TopDishes)
	g.GET("/export", h.Export)
	return r, svc
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRevenueYearParam(t *testing.T) {
	r, svc := setup()

	assert.Equal(t, http.StatusOK, get(r, "/api/statistics/dashboard/revenue?year=2024").Code)
	assert.Equal(t, 2024, svc.year)

	assert.Equal(t, http.StatusOK, get(r, "/api/statistics/dashboard/revenue").Code)
	assert.Equal(t, 0, svc.year)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/statistics/dashboard/revenue?year=1990").Code)
}

func TestTopLimitDefaults(t *testing.T) {
	r, svc := setup()

	get(r, "/api/statistics/dashboard/top-foods")
	assert.Equal(t, 5, svc.limit)

	get(r, "/api/statistics/top-dishes")
	assert.Equal(t, 4, svc.limit)

	get(r, "/api/statistics/top-dishes?limit=8")
	assert.Equal(t, 8, svc.limit)
}

func TestExportWritesWorkbook(t *testing.T) {
	r, svc := setup()

	w := get(r, "/api/statistics/export?year=2024")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2024, svc.year)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "thong-ke-2024.xlsx")
	// xlsx là file zip
	assert.Equal(t, "PK", w.Body.String()[:2])
}
