package utility

import (
	"qr_dine/internal/common"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định.
// Salt được bcrypt sinh và nhúng sẵn trong chuỗi hash.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu plaintext với hash đã lưu.
// Trả về ErrInvalidCredentials nếu không khớp.
func ComparePassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}
