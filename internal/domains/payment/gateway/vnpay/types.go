package vnpay

import (
	"github.com/shopspring/decimal"
)

// PaymentRequest - dữ liệu cần để tạo URL thanh toán
type PaymentRequest struct {
	TxnRef    string          // id đơn hàng
	Amount    decimal.Decimal // tổng tiền VND
	OrderInfo string
	ClientIP  string
}

// CallbackResult - các trường của redirect / IPN mà hệ thống dùng
type CallbackResult struct {
	TxnRef            string
	ResponseCode      string
	TransactionStatus string
	TransactionNo     string
	BankCode          string
	Amount            string
	PayDate           string
}

func ParseCallback(params map[string]string) CallbackResult {
	return CallbackResult{
		TxnRef:            params["vnp_TxnRef"],
		ResponseCode:      params["vnp_ResponseCode"],
		TransactionStatus: params["vnp_TransactionStatus"],
		TransactionNo:     params["vnp_TransactionNo"],
		BankCode:          params["vnp_BankCode"],
		Amount:            params["vnp_Amount"],
		PayDate:           params["vnp_PayDate"],
	}
}

// IsSuccess: cả response code và transaction status đều "00"
func (r CallbackResult) IsSuccess() bool {
	return r.ResponseCode == ResponseCodeSuccess && r.TransactionStatus == TransactionStatusSuccess
}
