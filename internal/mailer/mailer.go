// Package mailer gửi email giao dịch qua SMTP.
// Gửi email luôn là best-effort: lỗi chỉ được log, không bao giờ
// làm fail thao tác gốc (xác nhận thanh toán, kích hoạt thuê bao).
package mailer

import (
	"fmt"

	"qr_dine/config"
	"qr_dine/internal/logger"
	"qr_dine/internal/utility"

	"gopkg.in/gomail.v2"
)

// Mailer gửi email qua SMTP với cấu hình từ server config.
type Mailer struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewMailer tạo Mailer từ cấu hình server.
// Trả về nil nếu SMTP chưa được cấu hình — caller kiểm tra nil trước khi gửi.
func NewMailer(c *config.Configuration) *Mailer {
	if c.SMTPHost == "" {
		return nil
	}
	return &Mailer{
		host:      c.SMTPHost,
		port:      c.SMTPPort,
		username:  c.SMTPUsername,
		password:  c.SMTPPassword,
		fromName:  c.SMTPFromName,
		fromEmail: c.SMTPFromEmail,
	}
}

// Send gửi một email HTML đồng bộ.
func (m *Mailer) Send(to string, subject string, htmlContent string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}

// SendAsync gửi email trong goroutine riêng, lỗi chỉ được log.
// An toàn khi gọi trên Mailer nil (SMTP chưa cấu hình thì bỏ qua).
func (m *Mailer) SendAsync(to string, subject string, htmlContent string) {
	if m == nil || to == "" {
		return
	}
	go utility.GoProtect(func() {
		if err := m.Send(to, subject, htmlContent); err != nil {
			logger.GetErrorLogger().WithError(err).WithField("to", to).Error("Mailer: Lỗi gửi email")
		}
	})
}
