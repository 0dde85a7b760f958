// Package models - Test catalog gói và predicate hiệu lực thuê bao.
package models

import (
	"testing"
	"time"
)

func TestGetPlan_KnownKeys(t *testing.T) {
	for _, key := range []string{"basic", "premium", "enterprise"} {
		plan, ok := GetPlan(key)
		if !ok {
			t.Errorf("GetPlan(%q) không tìm thấy gói", key)
			continue
		}
		if plan.Key != key {
			t.Errorf("GetPlan(%q) trả về gói có key %q", key, plan.Key)
		}
		if plan.Price <= 0 {
			t.Errorf("Gói %q có giá không hợp lệ: %v", key, plan.Price)
		}
		if plan.DurationDays <= 0 {
			t.Errorf("Gói %q có thời hạn không hợp lệ: %d", key, plan.DurationDays)
		}
	}
}

func TestGetPlan_UnknownKey(t *testing.T) {
	if _, ok := GetPlan("free"); ok {
		t.Error("GetPlan phải trả về false với key không tồn tại")
	}
	if _, ok := GetPlan(""); ok {
		t.Error("GetPlan phải trả về false với key rỗng")
	}
}

func TestPlans_OrderAndCaps(t *testing.T) {
	plans := Plans()
	if len(plans) != 3 {
		t.Fatalf("Catalog phải có 3 gói, có %d", len(plans))
	}
	if plans[0].Key != "basic" || plans[1].Key != "premium" || plans[2].Key != "enterprise" {
		t.Errorf("Catalog sai thứ tự: %s, %s, %s", plans[0].Key, plans[1].Key, plans[2].Key)
	}
	// Enterprise không giới hạn
	if plans[2].MaxMenuItems != -1 || plans[2].MaxOrdersPerDay != -1 {
		t.Errorf("Gói enterprise phải không giới hạn (-1), được %d/%d", plans[2].MaxMenuItems, plans[2].MaxOrdersPerDay)
	}
}

func TestSubscription_IsActive(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		status  string
		endDate int64
		want    bool
	}{
		{"active còn hạn", SubscriptionStatusActive, now.AddDate(0, 0, 10).UnixMilli(), true},
		{"active hết hạn", SubscriptionStatusActive, now.AddDate(0, 0, -1).UnixMilli(), false},
		{"pending còn hạn", SubscriptionStatusPending, now.AddDate(0, 0, 10).UnixMilli(), false},
		{"cancelled còn hạn", SubscriptionStatusCancelled, now.AddDate(0, 0, 10).UnixMilli(), false},
		{"expired", SubscriptionStatusExpired, now.AddDate(0, 0, -10).UnixMilli(), false},
	}
	for _, tc := range cases {
		s := &Subscription{Status: tc.status, EndDate: tc.endDate}
		if got := s.IsActive(now); got != tc.want {
			t.Errorf("IsActive (%s) = %v, muốn %v", tc.name, got, tc.want)
		}
	}
}

func TestSubscription_IsActive_PureRead(t *testing.T) {
	// Hết hạn không được tự động đổi Status
	now := time.Now()
	s := &Subscription{Status: SubscriptionStatusActive, EndDate: now.AddDate(0, 0, -1).UnixMilli()}
	s.IsActive(now)
	if s.Status != SubscriptionStatusActive {
		t.Error("IsActive không được thay đổi Status của thuê bao")
	}
}

func TestSubscription_IsExpiringSoon(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	active := func(end time.Time) *Subscription {
		return &Subscription{Status: SubscriptionStatusActive, EndDate: end.UnixMilli()}
	}
	if !active(now.AddDate(0, 0, 3)).IsExpiringSoon(now, 7) {
		t.Error("Còn 3 ngày với ngưỡng 7 ngày phải là sắp hết hạn")
	}
	if active(now.AddDate(0, 0, 20)).IsExpiringSoon(now, 7) {
		t.Error("Còn 20 ngày với ngưỡng 7 ngày không phải sắp hết hạn")
	}
	// Đã hết hạn thì không còn "sắp hết hạn"
	if active(now.AddDate(0, 0, -1)).IsExpiringSoon(now, 7) {
		t.Error("Thuê bao đã hết hạn không được coi là sắp hết hạn")
	}
	// Không active thì không sắp hết hạn
	s := &Subscription{Status: SubscriptionStatusCancelled, EndDate: now.AddDate(0, 0, 3).UnixMilli()}
	if s.IsExpiringSoon(now, 7) {
		t.Error("Thuê bao đã hủy không được coi là sắp hết hạn")
	}
}
