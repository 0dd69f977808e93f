package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"foodee-backend/internal/domains/statistics/model"
)

const (
	sheetOverview = "Tổng quan"
	sheetRevenue  = "Doanh thu theo tháng"
	sheetTopFoods = "Top món ăn"
)

// ExportExcel xuất tổng quan, doanh thu 12 tháng của year và top món ra file xlsx
func (s *Service) ExportExcel(ctx context.Context, year int) (*excelize.File, error) {
	year, err := s.resolveYear(year)
	if err != nil {
		return nil, err
	}

	overview, err := s.repo.Overview(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.RevenueByMonth(ctx, year)
	if err != nil {
		return nil, err
	}
	foods, err := s.repo.TopFoods(ctx, exportTopFoods)
	if err != nil {
		return nil, err
	}

	f, err := buildStatisticsFile(year, overview, revenue, foods)
	if err != nil {
		return nil, fmt.Errorf("failed to build excel file: %w", err)
	}
	return f, nil
}

func buildStatisticsFile(year int, overview *model.DashboardOverview, revenue []model.MonthlyRevenue, foods []model.TopFood) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetOverview); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetRevenue); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetTopFoods); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	// Tổng quan: 2 cột chỉ số / giá trị
	overviewRows := [][]interface{}{
		{"Chỉ số", "Giá trị"},
		{"Tổng món đang bán", overview.TotalProducts},
		{"Tổng người dùng", overview.TotalUsers},
		{"Tổng đơn hàng", overview.TotalOrders},
		{"Tổng lượt đặt bàn", overview.TotalBookings},
		{"Tổng doanh thu", overview.TotalRevenue.InexactFloat64()},
	}
	if err := writeRows(f, sheetOverview, overviewRows); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheetOverview, "A1", "B1", headerStyle)

	// Doanh thu: đủ 12 tháng, tháng không có doanh thu = 0
	byMonth := make(map[int]float64, len(revenue))
	for _, m := range revenue {
		byMonth[m.Month] = m.Revenue.InexactFloat64()
	}
	revenueRows := [][]interface{}{{fmt.Sprintf("Tháng (%d)", year), "Doanh thu"}}
	for month := 1; month <= 12; month++ {
		revenueRows = append(revenueRows, []interface{}{month, byMonth[month]})
	}
	if err := writeRows(f, sheetRevenue, revenueRows); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheetRevenue, "A1", "B1", headerStyle)

	foodRows := [][]interface{}{{"ID", "Tên món", "Loại", "Đơn giá", "Số lượng đã đặt"}}
	for _, food := range foods {
		foodRows = append(foodRows, []interface{}{
			food.ProductID, food.ProductName, food.ProductType, food.UnitPrice.InexactFloat64(), food.TotalOrdered,
		})
	}
	if err := writeRows(f, sheetTopFoods, foodRows); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheetTopFoods, "A1", "E1", headerStyle)

	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
