package model

import (
	"time"

	"github.com/shopspring/decimal"

	"foodee-backend/internal/shared"
)

// DashboardOverview - /dashboard/overview
// TotalProducts chỉ đếm món đang bán (AVAILABLE)
type DashboardOverview struct {
	TotalProducts int64           `json:"totalProducts"`
	TotalUsers    int64           `json:"totalUsers"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalBookings int64           `json:"totalBookings"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// QuickSummary - /summary
// TotalDishes là số món khác nhau từng xuất hiện trong đơn hàng
type QuickSummary struct {
	TotalDishes       int64           `json:"totalDishes"`
	TotalUsers        int64           `json:"totalUsers"`
	TotalBookings     int64           `json:"totalBookings"`
	TotalOrders       int64           `json:"totalOrders"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalProductTypes int64           `json:"totalProductTypes"`
}

type MonthlyRevenue struct {
	Month   int             `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

type TopFood struct {
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage"`
	ProductType  string          `json:"productType,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalOrdered int64           `json:"totalOrdered"`
}

type TopUser struct {
	Username      string          `json:"username"`
	FullName      string          `json:"fullName"`
	TotalSpending decimal.Decimal `json:"totalSpending"`
	OrderCount    int64           `json:"orderCount"`
	BookingCount  int64           `json:"bookingCount"`
	Orders        string          `json:"orders"`
	Bookings      string          `json:"bookings"`
}

// RecentOrder / RecentBooking - dữ liệu thô để service ghép thành Activity
type RecentOrder struct {
	OrderID   int64
	Username  string
	Items     string
	OrderDate time.Time
}

type RecentBooking struct {
	BookingID      int64
	Username       string
	NumberOfGuests int
	BookingDate    time.Time
	BookingTime    string
	CreatedAt      time.Time
}

const (
	ActivityOrder   = "ORDER"
	ActivityBooking = "BOOKING"
)

type Activity struct {
	Type       string    `json:"type"`
	RefID      int64     `json:"refId"`
	Username   string    `json:"username"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

type OrderStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

var ErrInvalidYear = shared.Validation("STA001", "Năm thống kê không hợp lệ")
