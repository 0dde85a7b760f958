package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature tính chữ ký HMAC-SHA256 theo quy ước của Razorpay:
// payload là "{gatewayOrderId}|{gatewayPaymentId}", kết quả hex lowercase.
func Signature(keySecret string, gatewayOrderID string, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature so sánh chữ ký nhận được với chữ ký tính lại từ secret.
// Dùng hmac.Equal để so sánh constant-time.
func VerifySignature(keySecret string, gatewayOrderID string, gatewayPaymentID string, signature string) bool {
	if signature == "" {
		return false
	}
	expected := Signature(keySecret, gatewayOrderID, gatewayPaymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
