package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

const (
	ParamSecureHash     = "vnp_SecureHash"
	ParamSecureHashType = "vnp_SecureHashType"
	SecureHashType      = "HMACSHA512"
)

// Canonicalize build chuỗi ký và query string:
// sort theo key, bỏ value rỗng, encode key/value giống nhau (space = '+')
// Chuỗi này vừa là input HMAC vừa là query gửi sang VNPay
func Canonicalize(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == ParamSecureHash || k == ParamSecureHashType || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}

// Sign: HMAC-SHA512, hex chữ thường
func Sign(data, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// BuildPaymentURL ghép payURL + query đã ký
func BuildPaymentURL(payURL string, params map[string]string, secret string) string {
	query := Canonicalize(params)
	hash := Sign(query, secret)
	return payURL + "?" + query +
		"&" + ParamSecureHashType + "=" + SecureHashType +
		"&" + ParamSecureHash + "=" + hash
}

// VerifySignature so vnp_SecureHash với HMAC của các tham số còn lại
func VerifySignature(params map[string]string, secret string) bool {
	received := params[ParamSecureHash]
	if received == "" {
		return false
	}
	expected := Sign(Canonicalize(params), secret)
	return hmac.Equal([]byte(strings.ToLower(received)), []byte(expected))
}

// ExtractParams lấy các tham số vnp_* (giá trị đầu tiên) từ query/form
func ExtractParams(values url.Values) map[string]string {
	params := make(map[string]string)
	for k, vals := range values {
		if strings.HasPrefix(k, "vnp_") && len(vals) > 0 {
			params[k] = vals[0]
		}
	}
	return params
}
