package vnpay

import (
	"fmt"
	"time"
)

// =====================================================
// VNPAY CONFIGURATION
// =====================================================

type Config struct {
	TmnCode    string // Merchant code (VNPay cấp)
	HashSecret string // Secret key cho HMAC-SHA512
	PayURL     string // https://sandbox.vnpayment.vn/paymentv2/vpcpay.html
	ReturnURL  string // Trang kết quả phía frontend
	Version    string
	Command    string
	CurrCode   string
	Locale     string
	OrderType  string
	ExpireIn   time.Duration
	Location   *time.Location // múi giờ của vnp_CreateDate / vnp_ExpireDate
}

// NewConfig tạo config với các giá trị cố định của VNPay 2.1.0
func NewConfig(tmnCode, hashSecret, payURL, returnURL string) *Config {
	return &Config{
		TmnCode:    tmnCode,
		HashSecret: hashSecret,
		PayURL:     payURL,
		ReturnURL:  returnURL,
		Version:    "2.1.0",
		Command:    "pay",
		CurrCode:   "VND",
		Locale:     "vn",
		OrderType:  "billpayment",
		ExpireIn:   15 * time.Minute,
		Location:   vietnamLocation(),
	}
}

func (c *Config) Validate() error {
	if c.TmnCode == "" {
		return fmt.Errorf("VNPay TmnCode is required")
	}
	if c.HashSecret == "" {
		return fmt.Errorf("VNPay HashSecret is required")
	}
	if c.PayURL == "" {
		return fmt.Errorf("VNPay PayURL is required")
	}
	if c.ReturnURL == "" {
		return fmt.Errorf("VNPay ReturnURL is required")
	}
	return nil
}

// vietnamLocation: Asia/Ho_Chi_Minh, fallback UTC+7 khi máy không có tzdata
func vietnamLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

// =====================================================
// VNPAY CONSTANTS
// =====================================================

const (
	dateLayout = "20060102150405"

	ResponseCodeSuccess             = "00"
	ResponseCodeSuspicious          = "07"
	ResponseCodeNotRegistered       = "09"
	ResponseCodeAuthFailed          = "10"
	ResponseCodeExpired             = "11"
	ResponseCodeCardLocked          = "12"
	ResponseCodeIncorrectOTP        = "13"
	ResponseCodeUserCancelled       = "24"
	ResponseCodeInsufficientBalance = "51"
	ResponseCodeLimitExceeded       = "65"
	ResponseCodeBankMaintenance     = "75"
	ResponseCodeTooManyPassword     = "79"

	TransactionStatusSuccess = "00"
)

var responseMessages = map[string]string{
	ResponseCodeSuccess:             "Giao dịch thành công",
	ResponseCodeSuspicious:          "Giao dịch bị nghi ngờ",
	ResponseCodeNotRegistered:       "Thẻ chưa đăng ký Internet Banking",
	ResponseCodeAuthFailed:          "Xác thực thông tin thẻ không đúng quá 3 lần",
	ResponseCodeExpired:             "Đã hết hạn chờ thanh toán",
	ResponseCodeCardLocked:          "Thẻ bị khóa",
	ResponseCodeIncorrectOTP:        "OTP không chính xác",
	ResponseCodeUserCancelled:       "Khách hàng hủy giao dịch",
	ResponseCodeInsufficientBalance: "Số dư tài khoản không đủ",
	ResponseCodeLimitExceeded:       "Vượt quá hạn mức giao dịch trong ngày",
	ResponseCodeBankMaintenance:     "Ngân hàng đang bảo trì",
	ResponseCodeTooManyPassword:     "Nhập sai mật khẩu thanh toán quá số lần quy định",
}

// ResponseMessage trả mô tả tiếng Việt của vnp_ResponseCode
func ResponseMessage(code string) string {
	if msg, ok := responseMessages[code]; ok {
		return msg
	}
	return "Lỗi không xác định"
}
