package email

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"foodee-backend/internal/config"
	"foodee-backend/pkg/logger"
)

type EmailService interface {
	SendResetPasswordEmail(ctx context.Context, data ResetPasswordData) error
}

type smtpEmailService struct {
	host        string
	addr        string
	from        string
	auth        smtp.Auth
	dialTimeout time.Duration
}

func NewSMTPEmailService(cfg config.EmailConfig) EmailService {
	s := &smtpEmailService{
		host:        cfg.SMTPHost,
		addr:        net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		from:        cfg.From,
		dialTimeout: cfg.DialTimeout,
	}
	// Mailhog/dev SMTP không cần auth
	if cfg.Username != "" {
		s.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}
	return s
}

func (s *smtpEmailService) SendResetPasswordEmail(ctx context.Context, data ResetPasswordData) error {
	subject := "Yêu cầu đặt lại mật khẩu - Foodee"
	body := buildResetPasswordBody(data)

	if err := s.send(ctx, data.Email, subject, body); err != nil {
		logger.ErrorWithFields("Failed to send reset password email", err, map[string]interface{}{
			"to":        data.Email,
			"smtp_addr": s.addr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func buildResetPasswordBody(data ResetPasswordData) string {
	name := data.FullName
	if name == "" {
		name = "bạn"
	}
	return fmt.Sprintf(`Xin chào %s,

Chúng tôi nhận được yêu cầu đặt lại mật khẩu cho tài khoản Foodee của bạn.
Vui lòng nhấn vào liên kết sau để đặt lại mật khẩu:
%s

Liên kết có hiệu lực trong %s.

Nếu bạn không yêu cầu, vui lòng bỏ qua email này.`, name, data.ResetURL, data.ExpiresIn)
}

// send mở kết nối với timeout rồi gửi qua smtp.Client
func (s *smtpEmailService) send(ctx context.Context, to, subject, body string) error {
	dialer := net.Dialer{Timeout: s.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if s.auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(s.auth); err != nil {
				return fmt.Errorf("smtp auth: %w", err)
			}
		}
	}

	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}

	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	return client.Quit()
}
