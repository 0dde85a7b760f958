package global

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
	_ = Validate.RegisterValidation("order_status", validateOrderStatus)
	_ = Validate.RegisterValidation("stats_period", validateStatsPeriod)
}

// validateNoXSS kiểm tra chuỗi không chứa các pattern XSS phổ biến.
// Dùng cho các field text do khách hàng nhập (tên, ghi chú đơn hàng).
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateStrongPassword kiểm tra mật khẩu mạnh:
// tối thiểu 8 ký tự và thỏa ít nhất 3 trong 4 điều kiện
// (chữ hoa, chữ thường, chữ số, ký tự đặc biệt)
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	if len(value) < 8 {
		return false
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range value {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	conditions := 0
	if hasUpper {
		conditions++
	}
	if hasLower {
		conditions++
	}
	if hasNumber {
		conditions++
	}
	if hasSpecial {
		conditions++
	}

	return conditions >= 3
}

// validateOrderStatus kiểm tra giá trị trạng thái đơn hàng hợp lệ
func validateOrderStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "confirmed", "preparing", "ready", "completed", "cancelled":
		return true
	}
	return false
}

// validateStatsPeriod kiểm tra kỳ thống kê hợp lệ
func validateStatsPeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "today", "week", "month":
		return true
	}
	return false
}
