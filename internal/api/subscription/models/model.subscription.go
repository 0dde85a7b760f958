// Package models - model thuê bao (Subscription) thuộc domain subscription.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái thuê bao.
const (
	SubscriptionStatusPending   = "pending"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

// Trạng thái thanh toán thuê bao.
const (
	SubscriptionPaymentPending   = "pending"
	SubscriptionPaymentCompleted = "completed"
	SubscriptionPaymentFailed    = "failed"
	SubscriptionPaymentRefunded  = "refunded"
)

// SubscriptionPayment chứa thông tin đối soát với cổng thanh toán nền tảng.
type SubscriptionPayment struct {
	GatewayOrderID   string  `json:"gatewayOrderId,omitempty" bson:"gatewayOrderId,omitempty"`
	GatewayPaymentID string  `json:"gatewayPaymentId,omitempty" bson:"gatewayPaymentId,omitempty"`
	GatewaySignature string  `json:"-" bson:"gatewaySignature,omitempty"`
	Amount           float64 `json:"amount" bson:"amount"`
	Currency         string  `json:"currency" bson:"currency"`
}

// Subscription định nghĩa mô hình thuê bao dashboard của chủ nhà hàng.
// Thông tin gói (tên, giá, thời hạn, tính năng, hạn mức) là snapshot từ
// catalog tại thời điểm tạo, không tham chiếu live.
// RestaurantID có thể rỗng: người dùng có thể mua gói trước khi tạo nhà hàng
// rồi liên kết sau.
type Subscription struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId" index:"single"`
	RestaurantID    primitive.ObjectID `json:"restaurantId,omitempty" bson:"restaurantId,omitempty" index:"single"`
	PlanKey         string             `json:"planKey" bson:"planKey"`
	PlanName        string             `json:"planName" bson:"planName"`
	Price           float64            `json:"price" bson:"price"`
	DurationDays    int                `json:"durationDays" bson:"durationDays"`
	Features        []string           `json:"features" bson:"features"`
	MaxMenuItems    int                `json:"maxMenuItems" bson:"maxMenuItems"`
	MaxOrdersPerDay int                `json:"maxOrdersPerDay" bson:"maxOrdersPerDay"`
	Status          string             `json:"status" bson:"status"`
	PaymentStatus   string             `json:"paymentStatus" bson:"paymentStatus"`
	StartDate       int64              `json:"startDate" bson:"startDate"`
	EndDate         int64              `json:"endDate" bson:"endDate"`
	Payment         SubscriptionPayment `json:"payment" bson:"payment"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsActive kiểm tra thuê bao đang hiệu lực tại thời điểm now.
// Thuần đọc: hết hạn không bao giờ tự động đổi Status trong database.
func (s *Subscription) IsActive(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && s.EndDate > now.UnixMilli()
}

// IsExpiringSoon kiểm tra thuê bao còn hiệu lực nhưng sắp hết hạn trong vòng days ngày.
func (s *Subscription) IsExpiringSoon(now time.Time, days int) bool {
	if !s.IsActive(now) {
		return false
	}
	deadline := now.AddDate(0, 0, days).UnixMilli()
	return s.EndDate <= deadline
}
