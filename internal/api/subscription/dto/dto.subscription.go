// Package subscriptiondto - cấu trúc đầu vào/đầu ra của domain subscription.
package subscriptiondto

import (
	models "qr_dine/internal/api/subscription/models"
	"qr_dine/internal/payment"
)

// SubscriptionCreateInput đầu vào tạo đơn thanh toán thuê bao.
// RestaurantID là tùy chọn: có thể mua gói trước rồi liên kết nhà hàng sau.
type SubscriptionCreateInput struct {
	PlanKey      string `json:"planKey" validate:"required"`
	RestaurantID string `json:"restaurantId"`
}

// SubscriptionCreateResult đầu ra tạo thuê bao: thuê bao pending, intent
// trên cổng thanh toán nền tảng và public key của nền tảng.
type SubscriptionCreateResult struct {
	Subscription models.Subscription `json:"subscription"`
	PaymentOrder *payment.Intent     `json:"paymentOrder"`
	PaymentKey   string              `json:"paymentKey"`
}

// SubscriptionVerifyPaymentInput đầu vào xác minh thanh toán thuê bao.
type SubscriptionVerifyPaymentInput struct {
	SubscriptionID    string `json:"subscriptionId" validate:"required"`
	RazorpayOrderID   string `json:"razorpayOrderId" validate:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" validate:"required"`
	RazorpaySignature string `json:"razorpaySignature" validate:"required"`
}

// SubscriptionLinkRestaurantInput đầu vào liên kết thuê bao với nhà hàng.
type SubscriptionLinkRestaurantInput struct {
	SubscriptionID string `json:"subscriptionId" validate:"required"`
	RestaurantID   string `json:"restaurantId" validate:"required"`
}
