// Package payment - Test chữ ký HMAC-SHA256 theo quy ước Razorpay.
package payment

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestSignature_Deterministic(t *testing.T) {
	s1 := Signature("secret_abc", "order_123", "pay_456")
	s2 := Signature("secret_abc", "order_123", "pay_456")
	if s1 != s2 {
		t.Errorf("Signature không deterministic: %s != %s", s1, s2)
	}
	if _, err := hex.DecodeString(s1); err != nil {
		t.Errorf("Signature không phải hex hợp lệ: %s", s1)
	}
	if s1 != strings.ToLower(s1) {
		t.Errorf("Signature phải là hex lowercase: %s", s1)
	}
	// SHA-256 -> 32 bytes -> 64 ký tự hex
	if len(s1) != 64 {
		t.Errorf("Signature phải dài 64 ký tự hex, được %d", len(s1))
	}
}

func TestSignature_DependsOnAllInputs(t *testing.T) {
	base := Signature("secret_abc", "order_123", "pay_456")
	if Signature("secret_khac", "order_123", "pay_456") == base {
		t.Error("Signature không đổi khi đổi keySecret")
	}
	if Signature("secret_abc", "order_khac", "pay_456") == base {
		t.Error("Signature không đổi khi đổi gatewayOrderID")
	}
	if Signature("secret_abc", "order_123", "pay_khac") == base {
		t.Error("Signature không đổi khi đổi gatewayPaymentID")
	}
}

func TestVerifySignature_AcceptsValid(t *testing.T) {
	sig := Signature("secret_abc", "order_123", "pay_456")
	if !VerifySignature("secret_abc", "order_123", "pay_456", sig) {
		t.Error("VerifySignature từ chối chữ ký hợp lệ")
	}
}

func TestVerifySignature_RejectsInvalid(t *testing.T) {
	sig := Signature("secret_abc", "order_123", "pay_456")
	cases := []struct {
		name      string
		keySecret string
		orderID   string
		paymentID string
		signature string
	}{
		{"sai secret", "secret_khac", "order_123", "pay_456", sig},
		{"sai orderID", "secret_abc", "order_khac", "pay_456", sig},
		{"sai paymentID", "secret_abc", "order_123", "pay_khac", sig},
		{"chữ ký bịa", "secret_abc", "order_123", "pay_456", "deadbeef"},
		{"chữ ký rỗng", "secret_abc", "order_123", "pay_456", ""},
	}
	for _, tc := range cases {
		if VerifySignature(tc.keySecret, tc.orderID, tc.paymentID, tc.signature) {
			t.Errorf("VerifySignature chấp nhận chữ ký không hợp lệ (%s)", tc.name)
		}
	}
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	g := NewRazorpayGateway()
	sig := Signature("rzp_secret", "order_x", "pay_y")
	if !g.VerifySignature("rzp_secret", "order_x", "pay_y", sig) {
		t.Error("Gateway từ chối chữ ký hợp lệ")
	}
	if g.VerifySignature("rzp_secret", "order_x", "pay_y", sig+"00") {
		t.Error("Gateway chấp nhận chữ ký bị sửa")
	}
}

func TestMinorUnits_RoundsHalfUp(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{1.15, 115}, // 1.15*100 = 114.99999... trong float64, phải làm tròn
		{0.29, 29},
		{99.99, 9999},
		{100, 10000},
		{0, 0},
		{12.34, 1234},
	}
	for _, tc := range cases {
		if got := MinorUnits(tc.amount); got != tc.want {
			t.Errorf("MinorUnits(%v) = %d, muốn %d", tc.amount, got, tc.want)
		}
	}
}
