// Package ordersvc - Test máy trạng thái đơn hàng.
package ordersvc

import (
	"testing"

	models "qr_dine/internal/api/order/models"
)

func TestCanTransition_AllowedPaths(t *testing.T) {
	allowed := []struct{ from, to string }{
		{models.OrderStatusPending, models.OrderStatusConfirmed},
		{models.OrderStatusPending, models.OrderStatusCancelled},
		{models.OrderStatusConfirmed, models.OrderStatusPreparing},
		{models.OrderStatusConfirmed, models.OrderStatusCancelled},
		{models.OrderStatusPreparing, models.OrderStatusReady},
		{models.OrderStatusPreparing, models.OrderStatusCancelled},
		{models.OrderStatusReady, models.OrderStatusCompleted},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("CanTransition(%q, %q) phải được phép", tc.from, tc.to)
		}
	}
}

func TestCanTransition_RejectsEverythingElse(t *testing.T) {
	statuses := []string{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	}
	allowed := map[string]map[string]bool{
		models.OrderStatusPending:   {models.OrderStatusConfirmed: true, models.OrderStatusCancelled: true},
		models.OrderStatusConfirmed: {models.OrderStatusPreparing: true, models.OrderStatusCancelled: true},
		models.OrderStatusPreparing: {models.OrderStatusReady: true, models.OrderStatusCancelled: true},
		models.OrderStatusReady:     {models.OrderStatusCompleted: true},
	}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[from][to]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%q, %q) = %v, muốn %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	terminals := []string{models.OrderStatusCompleted, models.OrderStatusCancelled}
	targets := []string{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	}
	for _, from := range terminals {
		for _, to := range targets {
			if CanTransition(from, to) {
				t.Errorf("Trạng thái kết thúc %q không được chuyển sang %q", from, to)
			}
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	if CanTransition("shipped", models.OrderStatusCompleted) {
		t.Error("Trạng thái không tồn tại không được phép chuyển")
	}
	if CanTransition(models.OrderStatusPending, "shipped") {
		t.Error("Không được chuyển sang trạng thái không tồn tại")
	}
}

func TestValidateTransition_ErrorOnInvalid(t *testing.T) {
	if err := ValidateTransition(models.OrderStatusPending, models.OrderStatusConfirmed); err != nil {
		t.Errorf("ValidateTransition hợp lệ trả về lỗi: %v", err)
	}
	if err := ValidateTransition(models.OrderStatusCompleted, models.OrderStatusPending); err == nil {
		t.Error("ValidateTransition phải trả lỗi khi chuyển từ trạng thái kết thúc")
	}
}
