// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng (chủ nhà hàng đăng nhập dashboard).
// Token chứa token xác thực mới nhất của người dùng.
// Tokens chứa danh sách các token, mỗi thiết bị khác nhau sẽ có một token riêng để xác thực (bằng hwid).
// Password là bcrypt hash, không bao giờ serialize ra JSON.
type User struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password       string             `json:"-" bson:"password,omitempty"`
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Token          string             `json:"token" bson:"token"`
	Tokens         []Token            `json:"-" bson:"tokens"`
	SubscriptionID primitive.ObjectID `json:"subscriptionId,omitempty" bson:"subscriptionId,omitempty"`
	IsBlock        bool               `json:"-" bson:"isBlock"`
	BlockNote      string             `json:"-" bson:"blockNote"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
