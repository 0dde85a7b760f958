package utility

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"

	"qr_dine/internal/common"
)

// GenerateQRDataURL sinh ảnh QR code PNG cho nội dung cho trước
// và trả về dưới dạng data URL để nhúng thẳng vào frontend.
func GenerateQRDataURL(content string, size int) (string, error) {
	if content == "" {
		return "", common.ErrRequiredField
	}
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể sinh QR code", common.StatusInternalServerError, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
