// Package realtime cung cấp cơ chế phát sự kiện thời gian thực tới dashboard
// của nhà hàng và trang theo dõi đơn của khách. Các service phát sự kiện
// fire-and-forget: lỗi phát sự kiện không bao giờ làm fail thao tác gốc.
package realtime

import (
	"fmt"
	"sync"
)

// Các loại sự kiện phát trên channel của nhà hàng.
const (
	EventNewOrder        = "new-order"
	EventOrderUpdated    = "order-updated"
	EventPaymentReceived = "payment-received"
)

// Event mô tả một sự kiện realtime trên một channel.
type Event struct {
	Channel string
	Name    string
	Payload interface{}
}

// Broadcaster phát sự kiện tới các subscriber của một channel.
// Publish không block và không trả lỗi về caller — delivery là best-effort.
type Broadcaster interface {
	Publish(channel string, event string, payload interface{})
}

// Subscriber nhận sự kiện từ broadcaster.
type Subscriber func(e Event)

// RestaurantChannel trả về tên channel của một nhà hàng.
// Dashboard và trang theo dõi đơn của khách cùng subscribe channel này.
func RestaurantChannel(restaurantID string) string {
	return fmt.Sprintf("restaurant-%s", restaurantID)
}

// HubBroadcaster là implementation in-process của Broadcaster.
// Mỗi subscriber chạy trong goroutine riêng, panic được recover
// để một subscriber lỗi không ảnh hưởng các subscriber khác.
type HubBroadcaster struct {
	subscribers []Subscriber
	mu          sync.RWMutex
}

// NewHubBroadcaster tạo một HubBroadcaster rỗng.
func NewHubBroadcaster() *HubBroadcaster {
	return &HubBroadcaster{}
}

// Subscribe đăng ký một subscriber nhận tất cả sự kiện.
// Subscriber tự lọc theo e.Channel nếu chỉ quan tâm một channel.
func (b *HubBroadcaster) Subscribe(s Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, s)
}

// Publish phát sự kiện tới tất cả subscribers.
func (b *HubBroadcaster) Publish(channel string, event string, payload interface{}) {
	b.mu.RLock()
	list := make([]Subscriber, len(b.subscribers))
	copy(list, b.subscribers)
	b.mu.RUnlock()

	e := Event{Channel: channel, Name: event, Payload: payload}
	for _, s := range list {
		go func(fn Subscriber) {
			defer func() {
				if r := recover(); r != nil {
					// Không làm sập app vì một subscriber panic
					_ = r
				}
			}()
			fn(e)
		}(s)
	}
}

// NopBroadcaster là Broadcaster không làm gì, dùng trong test
// hoặc khi realtime chưa được cấu hình.
type NopBroadcaster struct{}

// Publish bỏ qua mọi sự kiện.
func (NopBroadcaster) Publish(channel string, event string, payload interface{}) {}
