// Package models - Test thông tin nhạy cảm của user không bị lộ qua JSON.
package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUser_SensitiveFieldsNotInJSON(t *testing.T) {
	u := User{
		Name:     "Nguyễn Văn A",
		Email:    "a@example.com",
		Password: "$2a$10$hash-bcrypt",
		Tokens: []Token{
			{Hwid: "device-1", JwtToken: "jwt-bi-mat"},
		},
		IsBlock:   true,
		BlockNote: "ghi chú nội bộ",
	}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal trả lỗi: %v", err)
	}
	s := string(data)

	for _, secret := range []string{"$2a$10$hash-bcrypt", "jwt-bi-mat", "ghi chú nội bộ"} {
		if strings.Contains(s, secret) {
			t.Errorf("JSON response lộ dữ liệu nhạy cảm: %q", secret)
		}
	}
	if !strings.Contains(s, "a@example.com") {
		t.Error("Email phải có trong JSON response")
	}
}
