// Package orderdto - Test validate đầu vào tạo đơn hàng.
package orderdto

import (
	"testing"

	"qr_dine/internal/global"
)

func validOrderCreateInput() OrderCreateInput {
	return OrderCreateInput{
		RestaurantID: "507f1f77bcf86cd799439011",
		Customer: OrderCustomerInput{
			Name:  "Nguyễn Văn A",
			Phone: "0901234567",
			Email: "a@example.com",
		},
		Items: []OrderItemInput{
			{MenuItemID: "507f1f77bcf86cd799439012", Quantity: 2},
		},
		TableNumber: "5",
	}
}

func TestOrderCreateInput_Validate(t *testing.T) {
	global.InitValidator()

	if err := global.Validate.Struct(validOrderCreateInput()); err != nil {
		t.Fatalf("Đầu vào hợp lệ bị từ chối: %v", err)
	}

	// Tên và số điện thoại khách là bắt buộc trong snapshot đơn hàng
	noPhone := validOrderCreateInput()
	noPhone.Customer.Phone = ""
	if err := global.Validate.Struct(noPhone); err == nil {
		t.Error("Thiếu số điện thoại khách mà vẫn qua validate")
	}

	noName := validOrderCreateInput()
	noName.Customer.Name = ""
	if err := global.Validate.Struct(noName); err == nil {
		t.Error("Thiếu tên khách mà vẫn qua validate")
	}

	// Email có thể bỏ trống nhưng nếu có phải đúng định dạng
	noEmail := validOrderCreateInput()
	noEmail.Customer.Email = ""
	if err := global.Validate.Struct(noEmail); err != nil {
		t.Errorf("Email trống phải được chấp nhận: %v", err)
	}
	badEmail := validOrderCreateInput()
	badEmail.Customer.Email = "khong-phai-email"
	if err := global.Validate.Struct(badEmail); err == nil {
		t.Error("Email sai định dạng mà vẫn qua validate")
	}

	noItems := validOrderCreateInput()
	noItems.Items = nil
	if err := global.Validate.Struct(noItems); err == nil {
		t.Error("Đơn không có món mà vẫn qua validate")
	}

	zeroQty := validOrderCreateInput()
	zeroQty.Items[0].Quantity = 0
	if err := global.Validate.Struct(zeroQty); err == nil {
		t.Error("Số lượng 0 mà vẫn qua validate")
	}
}
