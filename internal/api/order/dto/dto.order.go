// Package orderdto - cấu trúc đầu vào/đầu ra của domain order.
package orderdto

import (
	models "qr_dine/internal/api/order/models"
	"qr_dine/internal/payment"
)

// OrderCustomerInput thông tin khách đặt đơn.
type OrderCustomerInput struct {
	Name  string `json:"name" validate:"required,no_xss"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// OrderItemInput một dòng món trong yêu cầu tạo đơn.
type OrderItemInput struct {
	MenuItemID          string `json:"menuItemId" validate:"required"`
	Quantity            int    `json:"quantity" validate:"required,min=1"`
	SpecialInstructions string `json:"specialInstructions"`
}

// OrderCreateInput đầu vào tạo đơn hàng.
// PaymentMethod client gửi gì cũng bị ghi đè thành razorpay.
type OrderCreateInput struct {
	RestaurantID  string             `json:"restaurantId" validate:"required"`
	Customer      OrderCustomerInput `json:"customer" validate:"required"`
	Items         []OrderItemInput   `json:"items" validate:"required,min=1,dive"`
	TableNumber   string             `json:"tableNumber"`
	Notes         string             `json:"notes"`
	PaymentMethod string             `json:"paymentMethod"`
}

// OrderCreateResult đầu ra tạo đơn: đơn hàng, intent trên cổng thanh toán
// và public key của nhà hàng để client mở checkout. Secret không bao giờ trả về.
type OrderCreateResult struct {
	Order           models.Order    `json:"order"`
	PaymentOrder    *payment.Intent `json:"paymentOrder"`
	PaymentKey      string          `json:"paymentKey"`
	RequiresPayment bool            `json:"requiresPayment"`
}

// OrderVerifyPaymentInput đầu vào xác minh thanh toán đơn hàng.
type OrderVerifyPaymentInput struct {
	OrderID           string `json:"orderId" validate:"required"`
	RazorpayOrderID   string `json:"razorpayOrderId" validate:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" validate:"required"`
	RazorpaySignature string `json:"razorpaySignature" validate:"required"`
}

// OrderStatusUpdateInput đầu vào chuyển trạng thái đơn hàng.
type OrderStatusUpdateInput struct {
	Status        string `json:"status" validate:"required,order_status"`
	EstimatedTime *int   `json:"estimatedTime" validate:"omitempty,min=0"`
}

// OrderStatusStat thống kê theo một trạng thái.
type OrderStatusStat struct {
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// OrderStatsResult kết quả thống kê đơn hàng theo kỳ.
type OrderStatsResult struct {
	Period      string                     `json:"period"`
	TotalOrders int64                      `json:"totalOrders"`
	Revenue     float64                    `json:"revenue"`
	ByStatus    map[string]OrderStatusStat `json:"byStatus"`
}
