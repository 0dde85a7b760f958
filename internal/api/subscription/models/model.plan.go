// Package models - catalog gói thuê bao cố định.
package models

// Plan là một gói thuê bao trong catalog cố định.
// Các giá trị này được snapshot vào Subscription lúc tạo.
type Plan struct {
	Key             string   `json:"key"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	DurationDays    int      `json:"durationDays"`
	Features        []string `json:"features"`
	MaxMenuItems    int      `json:"maxMenuItems"`
	MaxOrdersPerDay int      `json:"maxOrdersPerDay"`
}

// planCatalog là catalog gói cố định trong bộ nhớ, không đọc từ database.
var planCatalog = []Plan{
	{
		Key:          "basic",
		Name:         "Basic",
		Price:        499,
		DurationDays: 30,
		Features: []string{
			"Menu QR code",
			"Nhận đơn online",
			"Thanh toán online",
		},
		MaxMenuItems:    50,
		MaxOrdersPerDay: 100,
	},
	{
		Key:          "premium",
		Name:         "Premium",
		Price:        999,
		DurationDays: 30,
		Features: []string{
			"Tất cả tính năng Basic",
			"Thống kê doanh thu",
			"Thông báo realtime",
			"Email xác nhận thanh toán",
		},
		MaxMenuItems:    200,
		MaxOrdersPerDay: 500,
	},
	{
		Key:          "enterprise",
		Name:         "Enterprise",
		Price:        2499,
		DurationDays: 30,
		Features: []string{
			"Tất cả tính năng Premium",
			"Không giới hạn món",
			"Không giới hạn đơn",
			"Hỗ trợ ưu tiên",
		},
		MaxMenuItems:    -1,
		MaxOrdersPerDay: -1,
	},
}

// Plans trả về toàn bộ catalog gói theo thứ tự cố định.
func Plans() []Plan {
	return planCatalog
}

// GetPlan tra gói theo key; trả về false nếu key không tồn tại.
func GetPlan(key string) (Plan, bool) {
	for _, p := range planCatalog {
		if p.Key == key {
			return p, true
		}
	}
	return Plan{}, false
}
