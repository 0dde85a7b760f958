// Package payment bao bọc cổng thanh toán Razorpay.
// Đơn hàng của khách dùng credentials riêng của từng nhà hàng,
// thuê bao dashboard dùng credentials của nền tảng.
package payment

import (
	"context"
	"fmt"
	"math"

	"qr_dine/internal/common"
	"qr_dine/internal/logger"

	razorpay "github.com/razorpay/razorpay-go"
)

// MinorUnits đổi số tiền từ đơn vị chính (rupee) sang đơn vị nhỏ nhất (paise),
// làm tròn để tránh sai số nhị phân của float (1.15 phải ra 115, không phải 114).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Credentials là cặp key của một tài khoản Razorpay.
type Credentials struct {
	KeyID     string
	KeySecret string
}

// Intent là kết quả tạo order trên cổng thanh toán,
// đủ thông tin để client mở checkout.
type Intent struct {
	GatewayOrderID string `json:"gatewayOrderId"`
	Amount         int64  `json:"amount"`   // Đơn vị nhỏ nhất (paise)
	Currency       string `json:"currency"` // Mặc định INR
	KeyID          string `json:"keyId"`    // Public key để client khởi tạo checkout
}

// Gateway trừu tượng hóa cổng thanh toán để service và test không phụ thuộc
// trực tiếp vào HTTP client của Razorpay.
type Gateway interface {
	// CreateIntent tạo một order trên cổng thanh toán.
	// amount tính theo đơn vị tiền tệ chính (rupee), được nhân 100 khi gửi đi.
	CreateIntent(ctx context.Context, creds Credentials, amount float64, currency string, receipt string, notes map[string]interface{}) (*Intent, error)

	// VerifySignature kiểm tra chữ ký thanh toán bằng secret tương ứng
	// với credentials đã tạo intent.
	VerifySignature(keySecret string, gatewayOrderID string, gatewayPaymentID string, signature string) bool
}

// RazorpayGateway là implementation thật dùng razorpay-go.
type RazorpayGateway struct{}

// NewRazorpayGateway tạo gateway Razorpay.
func NewRazorpayGateway() *RazorpayGateway {
	return &RazorpayGateway{}
}

// CreateIntent tạo order trên Razorpay. Client được tạo theo từng call
// vì mỗi nhà hàng có credentials riêng.
func (g *RazorpayGateway) CreateIntent(ctx context.Context, creds Credentials, amount float64, currency string, receipt string, notes map[string]interface{}) (*Intent, error) {
	if creds.KeyID == "" || creds.KeySecret == "" {
		return nil, common.NewError(common.ErrCodePaymentGateway, "Chưa cấu hình credentials thanh toán", common.StatusBadRequest, nil)
	}
	if currency == "" {
		currency = "INR"
	}

	client := razorpay.NewClient(creds.KeyID, creds.KeySecret)

	data := map[string]interface{}{
		"amount":   MinorUnits(amount), // Razorpay nhận đơn vị nhỏ nhất
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	resp, err := client.Order.Create(data, nil)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("Razorpay: Lỗi tạo order trên cổng thanh toán")
		return nil, fmt.Errorf("failed to create gateway order: %w", common.ErrPaymentGateway)
	}

	orderID, ok := resp["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("gateway response missing order id: %w", common.ErrPaymentGateway)
	}

	intent := &Intent{
		GatewayOrderID: orderID,
		Currency:       currency,
		KeyID:          creds.KeyID,
	}
	switch v := resp["amount"].(type) {
	case float64:
		intent.Amount = int64(v)
	case int64:
		intent.Amount = v
	default:
		intent.Amount = MinorUnits(amount)
	}

	return intent, nil
}

// VerifySignature kiểm tra chữ ký HMAC của Razorpay.
func (g *RazorpayGateway) VerifySignature(keySecret string, gatewayOrderID string, gatewayPaymentID string, signature string) bool {
	return VerifySignature(keySecret, gatewayOrderID, gatewayPaymentID, signature)
}
