// Package models - model đơn hàng (Order) thuộc domain order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đơn hàng.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Trạng thái thanh toán của đơn hàng.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// PaymentMethodRazorpay là phương thức thanh toán duy nhất được chấp nhận,
// được gán cố định khi tạo đơn bất kể client gửi gì.
const PaymentMethodRazorpay = "razorpay"

// CustomerInfo là snapshot thông tin khách tại thời điểm đặt đơn.
type CustomerInfo struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
}

// OrderItem là snapshot một dòng món trong đơn.
// Name và Price được copy từ MenuItem tại thời điểm tạo đơn,
// đổi giá menu sau đó không ảnh hưởng đến đơn đã tạo.
type OrderItem struct {
	MenuItemID          primitive.ObjectID `json:"menuItemId" bson:"menuItemId"`
	Name                string             `json:"name" bson:"name"`
	Price               float64            `json:"price" bson:"price"`
	Quantity            int                `json:"quantity" bson:"quantity"`
	SpecialInstructions string             `json:"specialInstructions,omitempty" bson:"specialInstructions,omitempty"`
}

// PaymentDetails là sub-record thanh toán của đơn.
type PaymentDetails struct {
	GatewayOrderID   string  `json:"gatewayOrderId,omitempty" bson:"gatewayOrderId,omitempty"`
	GatewayPaymentID string  `json:"gatewayPaymentId,omitempty" bson:"gatewayPaymentId,omitempty"`
	GatewaySignature string  `json:"-" bson:"gatewaySignature,omitempty"`
	PaidAmount       float64 `json:"paidAmount,omitempty" bson:"paidAmount,omitempty"`
	PaidAt           int64   `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	TransactionID    string  `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	PaymentGateway   string  `json:"paymentGateway,omitempty" bson:"paymentGateway,omitempty"`
}

// Order định nghĩa mô hình đơn hàng.
// OrderNumber là mã ngắn dễ đọc, unique toàn hệ thống.
// QueueNumber là số thứ tự trong ngày của nhà hàng, cấp phát atomic
// qua collection order_counters.
type Order struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RestaurantID   primitive.ObjectID `json:"restaurantId" bson:"restaurantId" index:"single"`
	OrderNumber    string             `json:"orderNumber" bson:"orderNumber" index:"unique"`
	QueueNumber    int64              `json:"queueNumber" bson:"queueNumber"`
	Customer       CustomerInfo       `json:"customer" bson:"customer"`
	Items          []OrderItem        `json:"items" bson:"items"`
	TotalAmount    float64            `json:"totalAmount" bson:"totalAmount"`
	Status         string             `json:"status" bson:"status"`
	PaymentStatus  string             `json:"paymentStatus" bson:"paymentStatus"`
	PaymentMethod  string             `json:"paymentMethod" bson:"paymentMethod"`
	PaymentDetails PaymentDetails     `json:"paymentDetails" bson:"paymentDetails"`
	TableNumber    string             `json:"tableNumber,omitempty" bson:"tableNumber,omitempty"`
	EstimatedTime  int                `json:"estimatedTime,omitempty" bson:"estimatedTime,omitempty"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
