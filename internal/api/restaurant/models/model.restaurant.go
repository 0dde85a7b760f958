// Package models - model nhà hàng (Restaurant) thuộc domain restaurant.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RazorpayConfig chứa thông tin kết nối cổng thanh toán của riêng nhà hàng.
// Mỗi nhà hàng thu tiền đơn hàng bằng tài khoản gateway của chính mình,
// không qua tài khoản của nền tảng. KeySecret không bao giờ serialize ra JSON.
type RazorpayConfig struct {
	KeyID       string `json:"keyId,omitempty" bson:"keyId,omitempty"`
	KeySecret   string `json:"-" bson:"keySecret,omitempty"`
	IsConnected bool   `json:"isConnected" bson:"isConnected"`
}

// Restaurant định nghĩa mô hình nhà hàng.
// QRCode là data URL ảnh PNG mã hóa link menu công khai {FrontendURL}/menu/{id}.
// Categories là danh sách category theo thứ tự hiển thị trên menu.
// Mỗi chủ (OwnerID) chỉ có một nhà hàng, được kiểm tra trước khi tạo.
type Restaurant struct {
	ID         primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID    primitive.ObjectID   `json:"ownerId" bson:"ownerId" index:"single"`
	Name       string               `json:"name" bson:"name"`
	Address    string               `json:"address,omitempty" bson:"address,omitempty"`
	Phone      string               `json:"phone,omitempty" bson:"phone,omitempty"`
	QRCode     string               `json:"qrCode,omitempty" bson:"qrCode,omitempty"`
	Razorpay   RazorpayConfig       `json:"razorpay" bson:"razorpay"`
	Categories []primitive.ObjectID `json:"categories" bson:"categories"`
	CreatedAt  int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64                `json:"updatedAt" bson:"updatedAt"`
}
