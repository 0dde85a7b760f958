// Package models - Test serialize đơn hàng.
package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOrder_GatewaySignatureNotInJSON(t *testing.T) {
	o := Order{
		OrderNumber: "6000010001",
		PaymentDetails: PaymentDetails{
			GatewayOrderID:   "order_abc",
			GatewayPaymentID: "pay_xyz",
			GatewaySignature: "chu-ky-hmac-bi-mat",
			PaymentGateway:   "razorpay",
		},
	}

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal trả lỗi: %v", err)
	}
	s := string(data)
	if strings.Contains(s, "chu-ky-hmac-bi-mat") {
		t.Error("gatewaySignature bị serialize ra JSON response")
	}
	// Id giao dịch gateway được phép trả về để khách đối soát
	if !strings.Contains(s, "order_abc") || !strings.Contains(s, "pay_xyz") {
		t.Error("gatewayOrderId và gatewayPaymentId phải có trong JSON")
	}
}
