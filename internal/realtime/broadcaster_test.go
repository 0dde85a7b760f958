// Package realtime - Test phát sự kiện tới subscriber.
package realtime

import (
	"sync"
	"testing"
	"time"
)

func TestRestaurantChannel(t *testing.T) {
	got := RestaurantChannel("507f1f77bcf86cd799439011")
	want := "restaurant-507f1f77bcf86cd799439011"
	if got != want {
		t.Errorf("RestaurantChannel = %q, muốn %q", got, want)
	}
}

func TestHubBroadcaster_DeliversToSubscribers(t *testing.T) {
	b := NewHubBroadcaster()
	var mu sync.Mutex
	var received []Event
	done := make(chan struct{}, 2)

	for i := 0; i < 2; i++ {
		b.Subscribe(func(e Event) {
			mu.Lock()
			received = append(received, e)
			mu.Unlock()
			done <- struct{}{}
		})
	}

	b.Publish(RestaurantChannel("abc"), EventNewOrder, map[string]string{"orderId": "x"})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Subscriber không nhận được sự kiện sau 1 giây")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 2 {
		t.Fatalf("Phải có 2 subscriber nhận sự kiện, có %d", len(received))
	}
	for _, e := range received {
		if e.Channel != "restaurant-abc" || e.Name != EventNewOrder {
			t.Errorf("Sự kiện sai nội dung: channel=%q name=%q", e.Channel, e.Name)
		}
	}
}

func TestHubBroadcaster_SubscriberPanicIsIsolated(t *testing.T) {
	b := NewHubBroadcaster()
	done := make(chan struct{}, 1)

	b.Subscribe(func(e Event) {
		panic("subscriber hỏng")
	})
	b.Subscribe(func(e Event) {
		done <- struct{}{}
	})

	b.Publish("restaurant-x", EventOrderUpdated, nil)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Subscriber lành không nhận được sự kiện khi subscriber khác panic")
	}
}

func TestNopBroadcaster_Publish(t *testing.T) {
	// Không panic, không block
	var b Broadcaster = NopBroadcaster{}
	b.Publish("restaurant-x", EventPaymentReceived, nil)
}
