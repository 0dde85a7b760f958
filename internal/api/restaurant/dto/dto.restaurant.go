// Package restaurantdto - cấu trúc đầu vào của domain restaurant.
package restaurantdto

// RestaurantCreateInput đầu vào tạo nhà hàng.
type RestaurantCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// RestaurantUpdateInput đầu vào cập nhật thông tin nhà hàng.
type RestaurantUpdateInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// RazorpayConnectInput đầu vào kết nối tài khoản Razorpay riêng của nhà hàng.
type RazorpayConnectInput struct {
	KeyID     string `json:"keyId" validate:"required"`
	KeySecret string `json:"keySecret" validate:"required"`
}
