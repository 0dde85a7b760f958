// Package models - Test credentials Razorpay không bị lộ qua JSON.
package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestRestaurant_KeySecretNotInJSON(t *testing.T) {
	r := Restaurant{
		Name: "Quán Phở Hà Nội",
		Razorpay: RazorpayConfig{
			KeyID:       "rzp_test_abc",
			KeySecret:   "bi-mat-tuyet-doi",
			IsConnected: true,
		},
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal trả lỗi: %v", err)
	}
	s := string(data)
	if strings.Contains(s, "bi-mat-tuyet-doi") {
		t.Error("keySecret bị serialize ra JSON response")
	}
	if strings.Contains(s, "keySecret") {
		t.Error("Field keySecret không được xuất hiện trong JSON")
	}
	// KeyID là public key, được phép trả về cho frontend
	if !strings.Contains(s, "rzp_test_abc") {
		t.Error("keyId phải có trong JSON để frontend mở checkout")
	}
}

func TestRazorpayConfig_KeySecretStoredInBson(t *testing.T) {
	// Secret vẫn phải được lưu xuống database để tạo intent và verify chữ ký
	f, ok := reflect.TypeOf(RazorpayConfig{}).FieldByName("KeySecret")
	if !ok {
		t.Fatal("RazorpayConfig thiếu field KeySecret")
	}
	bsonTag := f.Tag.Get("bson")
	if !strings.HasPrefix(bsonTag, "keySecret") {
		t.Errorf("bson tag của KeySecret = %q, muốn keySecret", bsonTag)
	}
	if f.Tag.Get("json") != "-" {
		t.Errorf("json tag của KeySecret = %q, phải là - để không lộ secret", f.Tag.Get("json"))
	}
}
