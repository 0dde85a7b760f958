package ordersvc

import (
	"fmt"

	models "qr_dine/internal/api/order/models"
	"qr_dine/internal/common"
)

// allowedTransitions là whitelist chuyển trạng thái đơn hàng.
// Mọi cặp (from, to) không có trong bảng đều bị từ chối.
// completed và cancelled là trạng thái kết thúc.
var allowedTransitions = map[string][]string{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed: {models.OrderStatusPreparing, models.OrderStatusCancelled},
	models.OrderStatusPreparing: {models.OrderStatusReady, models.OrderStatusCancelled},
	models.OrderStatusReady:     {models.OrderStatusCompleted},
	models.OrderStatusCompleted: {},
	models.OrderStatusCancelled: {},
}

// CanTransition kiểm tra một bước chuyển trạng thái có hợp lệ không.
func CanTransition(from string, to string) bool {
	targets, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// ValidateTransition trả lỗi InvalidTransition nêu rõ trạng thái nguồn
// và đích nếu bước chuyển không nằm trong whitelist.
func ValidateTransition(from string, to string) error {
	if CanTransition(from, to) {
		return nil
	}
	return common.NewError(
		common.ErrCodeBusinessState,
		fmt.Sprintf("Không thể chuyển trạng thái đơn từ '%s' sang '%s'", from, to),
		common.StatusBadRequest,
		nil,
	)
}
