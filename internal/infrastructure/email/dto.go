package email

// ResetPasswordData - nội dung email đặt lại mật khẩu
type ResetPasswordData struct {
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	ResetURL  string `json:"resetUrl"`
	ExpiresIn string `json:"expiresIn"`
}
