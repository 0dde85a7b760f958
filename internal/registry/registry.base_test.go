// Package registry - Test registry generic.
package registry

import (
	"sync"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("orders", "collection-orders")
	if err != nil {
		t.Fatalf("Register trả lỗi: %v", err)
	}
	if !isNew {
		t.Error("Register lần đầu phải trả về isNew = true")
	}

	got, exists := r.Get("orders")
	if !exists {
		t.Fatal("Get không tìm thấy item đã đăng ký")
	}
	if got != "collection-orders" {
		t.Errorf("Get = %q, muốn collection-orders", got)
	}

	if _, exists := r.Get("khong-ton-tai"); exists {
		t.Error("Get phải trả về false với tên chưa đăng ký")
	}
}

func TestRegistry_RegisterTwice(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	isNew, err := r.Register("a", 2)
	if err != nil {
		t.Fatalf("Register lần hai trả lỗi: %v", err)
	}
	if isNew {
		t.Error("Register tên đã có phải trả về isNew = false")
	}
	// Item cũ bị ghi đè
	got, _ := r.Get("a")
	if got != 2 {
		t.Errorf("Register tên đã có phải ghi đè item cũ, Get = %d", got)
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	created := 0
	creator := func() (string, error) {
		created++
		return "value", nil
	}

	v, err := r.GetOrCreate("x", creator)
	if err != nil {
		t.Fatalf("GetOrCreate trả lỗi: %v", err)
	}
	if v != "value" {
		t.Errorf("GetOrCreate = %q, muốn value", v)
	}
	r.GetOrCreate("x", creator)
	if created != 1 {
		t.Errorf("Creator phải chỉ chạy một lần, chạy %d lần", created)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
			r.Get("shared")
		}(i)
	}
	wg.Wait()
	if _, exists := r.Get("shared"); !exists {
		t.Error("Item phải tồn tại sau khi các goroutine đăng ký")
	}
}
