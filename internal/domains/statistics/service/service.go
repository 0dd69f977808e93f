package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	orderModel "foodee-backend/internal/domains/order/model"
	"foodee-backend/internal/domains/statistics/model"
	"foodee-backend/internal/domains/statistics/repository"
)

const (
	maxLimit = 100
	minYear  = 2000
	maxYear  = 2100

	exportTopFoods = 10
)

type ServiceInterface interface {
	Overview(ctx context.Context) (*model.DashboardOverview, error)
	Summary(ctx context.Context) (*model.QuickSummary, error)
	// RevenueByMonth: year = 0 thì lấy năm hiện tại
	RevenueByMonth(ctx context.Context, year int) ([]model.MonthlyRevenue, error)
	TopFoods(ctx context.Context, limit int) ([]model.TopFood, error)
	TopUsers(ctx context.Context, limit int) ([]model.TopUser, error)
	RecentActivities(ctx context.Context, limit int) ([]model.Activity, error)
	OrderStatusSummary(ctx context.Context) ([]model.OrderStatusCount, error)
	ExportExcel(ctx context.Context, year int) (*excelize.File, error)
}

type Service struct {
	repo repository.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewStatisticsService(repo repository.Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{repo: repo, loc: loc, now: time.Now}
}

func (s *Service) Overview(ctx context.Context) (*model.DashboardOverview, error) {
	return s.repo.Overview(ctx)
}

func (s *Service) Summary(ctx context.Context) (*model.QuickSummary, error) {
	return s.repo.Summary(ctx)
}

func (s *Service) RevenueByMonth(ctx context.Context, year int) ([]model.MonthlyRevenue, error) {
	year, err := s.resolveYear(year)
	if err != nil {
		return nil, err
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, s.loc)
	to := from.AddDate(1, 0, 0)
	_, offset := from.Zone()
	return s.repo.RevenueByMonth(ctx, from, to, offset)
}

func (s *Service) TopFoods(ctx context.Context, limit int) ([]model.TopFood, error) {
	return s.repo.TopFoods(ctx, clampLimit(limit))
}

func (s *Service) TopUsers(ctx context.Context, limit int) ([]model.TopUser, error) {
	users, err := s.repo.TopUsers(ctx, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Orders == "" {
			users[i].Orders = "Không có đơn hàng"
		}
		if users[i].Bookings == "" {
			users[i].Bookings = "Không có đặt bàn"
		}
	}
	return users, nil
}

// RecentActivities gộp đơn hàng và đặt bàn mới nhất, sắp xếp mới nhất trước
func (s *Service) RecentActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	limit = clampLimit(limit)

	orders, err := s.repo.RecentOrders(ctx, limit)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.RecentBookings(ctx, limit)
	if err != nil {
		return nil, err
	}

	activities := make([]model.Activity, 0, len(orders)+len(bookings))
	for _, o := range orders {
		msg := fmt.Sprintf("User %s đặt đơn hàng #%d vào %s", o.Username, o.OrderID, o.OrderDate.In(s.loc).Format("2006-01-02 15:04"))
		if o.Items != "" {
			msg = fmt.Sprintf("User %s đặt đơn hàng: %s vào %s", o.Username, o.Items, o.OrderDate.In(s.loc).Format("2006-01-02 15:04"))
		}
		activities = append(activities, model.Activity{
			Type:       model.ActivityOrder,
			RefID:      o.OrderID,
			Username:   o.Username,
			Message:    msg,
			OccurredAt: o.OrderDate,
		})
	}
	for _, b := range bookings {
		activities = append(activities, model.Activity{
			Type:     model.ActivityBooking,
			RefID:    b.BookingID,
			Username: b.Username,
			Message: fmt.Sprintf("User %s đặt bàn cho %d người vào %s %s",
				b.Username, b.NumberOfGuests, b.BookingDate.Format("2006-01-02"), b.BookingTime),
			OccurredAt: b.CreatedAt,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].OccurredAt.After(activities[j].OccurredAt)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

// OrderStatusSummary trả đủ mọi trạng thái, trạng thái không có đơn = 0
func (s *Service) OrderStatusSummary(ctx context.Context) ([]model.OrderStatusCount, error) {
	counts, err := s.repo.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, err
	}

	statuses := []orderModel.OrderStatus{
		orderModel.OrderStatusPending,
		orderModel.OrderStatusConfirmed,
		orderModel.OrderStatusShipping,
		orderModel.OrderStatusDelivered,
		orderModel.OrderStatusCancelRequested,
		orderModel.OrderStatusCancelled,
	}
	out := make([]model.OrderStatusCount, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, model.OrderStatusCount{Status: string(st), Count: counts[string(st)]})
	}
	return out, nil
}

func (s *Service) resolveYear(year int) (int, error) {
	if year == 0 {
		return s.now().In(s.loc).Year(), nil
	}
	if year < minYear || year > maxYear {
		return 0, model.ErrInvalidYear
	}
	return year, nil
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
