// Package ordersvc - Test các hàm thuần của service đơn hàng.
package ordersvc

import (
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildOrderNumber_Shape(t *testing.T) {
	// 10 chữ số: 6 từ timestamp + 4 từ số thứ tự
	got := BuildOrderNumber(1735689600123, 0)
	if len(got) != 10 {
		t.Fatalf("BuildOrderNumber phải dài 10 ký tự, được %q (%d)", got, len(got))
	}
	for _, r := range got {
		if r < '0' || r > '9' {
			t.Fatalf("BuildOrderNumber chứa ký tự không phải số: %q", got)
		}
	}
	if !strings.HasSuffix(got, "0001") {
		t.Errorf("docCount=0 phải cho hậu tố 0001, được %q", got)
	}
}

func TestBuildOrderNumber_SequencePart(t *testing.T) {
	if got := BuildOrderNumber(1735689600123, 41); !strings.HasSuffix(got, "0042") {
		t.Errorf("docCount=41 phải cho hậu tố 0042, được %q", got)
	}
	// Hai đơn cùng thời điểm nhưng khác docCount phải khác mã
	a := BuildOrderNumber(1735689600123, 1)
	b := BuildOrderNumber(1735689600123, 2)
	if a == b {
		t.Errorf("Hai đơn cùng millisecond phải có mã khác nhau: %q == %q", a, b)
	}
}

func TestQueueCounterKey_Format(t *testing.T) {
	id, _ := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	day := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	got := QueueCounterKey(id, day)
	want := "order_queue:507f1f77bcf86cd799439011:20260831"
	if got != want {
		t.Errorf("QueueCounterKey = %q, muốn %q", got, want)
	}
}

func TestQueueCounterKey_ResetsPerDay(t *testing.T) {
	id := primitive.NewObjectID()
	d1 := time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)
	d2 := time.Date(2026, 9, 1, 0, 0, 1, 0, time.Local)
	if QueueCounterKey(id, d1) == QueueCounterKey(id, d2) {
		t.Error("Key bộ đếm phải khác nhau giữa hai ngày")
	}
	if QueueCounterKey(id, d1) != QueueCounterKey(id, d1.Add(-time.Hour)) {
		t.Error("Key bộ đếm phải giống nhau trong cùng một ngày")
	}
}

func TestStatsWindowStart_Today(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 45, 30, 0, time.Local)
	got, err := StatsWindowStart("today", now)
	if err != nil {
		t.Fatalf("StatsWindowStart(today) trả lỗi: %v", err)
	}
	want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local).UnixMilli()
	if got != want {
		t.Errorf("StatsWindowStart(today) = %d, muốn đầu ngày %d", got, want)
	}
}

func TestStatsWindowStart_WeekAndMonth(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	week, err := StatsWindowStart("week", now)
	if err != nil {
		t.Fatalf("StatsWindowStart(week) trả lỗi: %v", err)
	}
	if want := now.AddDate(0, 0, -7).UnixMilli(); week != want {
		t.Errorf("StatsWindowStart(week) = %d, muốn %d", week, want)
	}
	month, err := StatsWindowStart("month", now)
	if err != nil {
		t.Fatalf("StatsWindowStart(month) trả lỗi: %v", err)
	}
	if want := now.AddDate(0, -1, 0).UnixMilli(); month != want {
		t.Errorf("StatsWindowStart(month) = %d, muốn %d", month, want)
	}
}

func TestStatsWindowStart_InvalidPeriod(t *testing.T) {
	if _, err := StatsWindowStart("year", time.Now()); err == nil {
		t.Error("StatsWindowStart phải trả lỗi với kỳ không hỗ trợ")
	}
	if _, err := StatsWindowStart("", time.Now()); err == nil {
		t.Error("StatsWindowStart phải trả lỗi với kỳ rỗng")
	}
}
