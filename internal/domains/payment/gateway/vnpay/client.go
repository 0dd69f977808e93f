package vnpay

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =====================================================
// VNPAY CLIENT
// =====================================================

type Client struct {
	config *Config
	now    func() time.Time
}

func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid VNPay config: %w", err)
	}
	if config.Location == nil {
		config.Location = vietnamLocation()
	}
	return &Client{config: config, now: time.Now}, nil
}

// WithClock dùng trong test để cố định vnp_CreateDate
func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

// CreatePaymentURL build URL redirect đã ký
func (c *Client) CreatePaymentURL(req PaymentRequest) (string, error) {
	if req.TxnRef == "" {
		return "", fmt.Errorf("txn_ref is required")
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return "", fmt.Errorf("amount must be positive")
	}

	clientIP := req.ClientIP
	if clientIP == "" || clientIP == "::1" {
		clientIP = "127.0.0.1"
	}

	now := c.now().In(c.config.Location)
	params := map[string]string{
		"vnp_Version":    c.config.Version,
		"vnp_Command":    c.config.Command,
		"vnp_TmnCode":    c.config.TmnCode,
		"vnp_Amount":     FormatAmount(req.Amount),
		"vnp_CurrCode":   c.config.CurrCode,
		"vnp_TxnRef":     req.TxnRef,
		"vnp_OrderInfo":  req.OrderInfo,
		"vnp_OrderType":  c.config.OrderType,
		"vnp_Locale":     c.config.Locale,
		"vnp_ReturnUrl":  c.config.ReturnURL,
		"vnp_IpAddr":     clientIP,
		"vnp_CreateDate": now.Format(dateLayout),
		"vnp_ExpireDate": now.Add(c.config.ExpireIn).Format(dateLayout),
	}

	return BuildPaymentURL(c.config.PayURL, params, c.config.HashSecret), nil
}

// VerifyCallback kiểm tra chữ ký của tham số VNPay gửi về
func (c *Client) VerifyCallback(params map[string]string) bool {
	return VerifySignature(params, c.config.HashSecret)
}

// FormatAmount: VNPay nhận số tiền x100, số nguyên
// 130000.5 VND -> "13000050"
func FormatAmount(amount decimal.Decimal) string {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).StringFixed(0)
}
